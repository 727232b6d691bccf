package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/model/customerr"
)

type sqlitePath string

func (p sqlitePath) Path() string {
	return string(p)
}

func backends() map[string]func(t *testing.T) Storage {
	return map[string]func(t *testing.T) Storage{
		"memory": func(t *testing.T) Storage {
			return NewInMemStorage()
		},
		"sqlite": func(t *testing.T) Storage {
			s, err := NewSQLiteStorage(sqlitePath(filepath.Join(t.TempDir(), "test.db")))
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
	}
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func mustCategory(t *testing.T, s Storage, name string, typ category.Type) category.Category {
	c, err := s.CreateCategory(context.Background(), category.Category{Name: name, Type: typ})
	require.NoError(t, err)
	return c
}

func mustTransaction(t *testing.T, s Storage, c category.Category, amount float64, day string) transaction.Transaction {
	tx, err := s.CreateTransaction(context.Background(), transaction.Transaction{
		Amount:     amount,
		Date:       date(day),
		Type:       c.Type,
		CategoryID: c.ID,
	})
	require.NoError(t, err)
	return tx
}

func Test_OnUserLifecycle_ShouldCreateFindAndUpdate(t *testing.T) {
	for name, newStore := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)

			_, err := s.GetUser(ctx)
			var nf *customerr.NotFoundError
			assert.True(t, errors.As(err, &nf))

			created, err := s.CreateUser(ctx, "hash-1")
			require.NoError(t, err)

			got, err := s.GetUser(ctx)
			require.NoError(t, err)
			assert.Equal(t, created.ID, got.ID)
			assert.Equal(t, "hash-1", got.PinHash)

			require.NoError(t, s.UpdateUserPin(ctx, got.ID, "hash-2"))
			got, err = s.GetUser(ctx)
			require.NoError(t, err)
			assert.Equal(t, "hash-2", got.PinHash)
		})
	}
}

func Test_OnListCategories_ShouldKeepCreationOrder(t *testing.T) {
	for name, newStore := range backends() {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)
			food := mustCategory(t, s, "Food", category.Expense)
			salary := mustCategory(t, s, "Salary", category.Income)

			cats, err := s.ListCategories(context.Background())
			require.NoError(t, err)
			assert.Equal(t, []category.Category{food, salary}, cats)
		})
	}
}

func Test_OnListTransactions_ShouldSortByDateThenIDDescending(t *testing.T) {
	for name, newStore := range backends() {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)
			food := mustCategory(t, s, "Food", category.Expense)

			first := mustTransaction(t, s, food, 10, "2025-01-10")
			second := mustTransaction(t, s, food, 20, "2025-01-12")
			third := mustTransaction(t, s, food, 30, "2025-01-10")

			txs, err := s.ListTransactions(context.Background(), transaction.Filter{})
			require.NoError(t, err)
			require.Len(t, txs, 3)
			assert.Equal(t, second.ID, txs[0].ID)
			assert.Equal(t, third.ID, txs[1].ID)
			assert.Equal(t, first.ID, txs[2].ID)
			assert.Equal(t, "Food", txs[0].CategoryName)
			assert.Equal(t, date("2025-01-12"), txs[0].Date)
			assert.Equal(t, category.Expense, txs[0].Type)
		})
	}
}

func Test_OnListTransactions_ShouldApplyInclusiveFilters(t *testing.T) {
	for name, newStore := range backends() {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)
			food := mustCategory(t, s, "Food", category.Expense)
			salary := mustCategory(t, s, "Salary", category.Income)

			mustTransaction(t, s, food, 10, "2025-01-01")
			mustTransaction(t, s, salary, 100, "2025-01-05")
			mustTransaction(t, s, food, 20, "2025-01-10")
			mustTransaction(t, s, food, 30, "2025-01-11")

			start, end := date("2025-01-05"), date("2025-01-10")
			txs, err := s.ListTransactions(context.Background(), transaction.Filter{StartDate: &start, EndDate: &end})
			require.NoError(t, err)
			assert.Len(t, txs, 2)

			expense := category.Expense
			txs, err = s.ListTransactions(context.Background(), transaction.Filter{StartDate: &start, Type: &expense})
			require.NoError(t, err)
			require.Len(t, txs, 2)
			for _, tx := range txs {
				assert.Equal(t, category.Expense, tx.Type)
			}
		})
	}
}

func Test_OnDeleteTransaction_ShouldReportMissingID(t *testing.T) {
	for name, newStore := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			food := mustCategory(t, s, "Food", category.Expense)
			tx := mustTransaction(t, s, food, 10, "2025-01-01")

			require.NoError(t, s.DeleteTransaction(ctx, tx.ID))

			err := s.DeleteTransaction(ctx, tx.ID)
			var nf *customerr.NotFoundError
			assert.True(t, errors.As(err, &nf))
		})
	}
}

func Test_OnDeleteCategory_ShouldBlockWhenReferenced(t *testing.T) {
	for name, newStore := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			food := mustCategory(t, s, "Food", category.Expense)
			tx := mustTransaction(t, s, food, 10, "2025-01-01")

			err := s.DeleteCategory(ctx, food.ID)
			var conflict *customerr.ConflictError
			assert.True(t, errors.As(err, &conflict))

			_, err = s.GetCategory(ctx, food.ID)
			require.NoError(t, err)

			require.NoError(t, s.DeleteTransaction(ctx, tx.ID))
			require.NoError(t, s.DeleteCategory(ctx, food.ID))

			err = s.DeleteCategory(ctx, food.ID)
			var nf *customerr.NotFoundError
			assert.True(t, errors.As(err, &nf))
		})
	}
}

func Test_OnCreateTransaction_ShouldRequireDate(t *testing.T) {
	for name, newStore := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			food := mustCategory(t, s, "Food", category.Expense)

			_, err := s.CreateTransaction(ctx, transaction.Transaction{
				Amount: 10, Type: category.Expense, CategoryID: food.ID,
			})
			var ve *customerr.ValidationError
			assert.True(t, errors.As(err, &ve), "got %v", err)

			txs, err := s.ListTransactions(ctx, transaction.Filter{})
			require.NoError(t, err)
			assert.Empty(t, txs)
		})
	}
}
