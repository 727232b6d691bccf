package categories

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/model/calendar"
	"max.ks1230/finance-tracker/internal/model/categories/mock"
	"max.ks1230/finance-tracker/internal/model/customerr"
	"max.ks1230/finance-tracker/internal/model/storage"
)

var now = time.Date(2025, time.January, 25, 14, 30, 0, 0, time.UTC)

func Test_OnCreate_ShouldTrimNameAndPublish(t *testing.T) {
	m := minimock.NewController(t)
	events := mock.NewEventPublisherMock(m)
	events.PublishMock.Inspect(func(_ context.Context, event transaction.ChangeEvent) {
		assert.Equal(m, transaction.KindCategoryCreated, event.Kind)
	}).Return(nil)
	svc := NewService(storage.NewInMemStorage(), events, calendar.Fixed(now))

	c, err := svc.Create(context.Background(), "  Books ", "expense")
	require.NoError(t, err)
	assert.Equal(t, "Books", c.Name)
	assert.Equal(t, category.Expense, c.Type)
	assert.NotZero(t, c.ID)
	assert.Equal(t, uint64(1), events.PublishAfterCounter())

	cats, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []category.Category{c}, cats)
}

func Test_OnCreate_ShouldStampEventWithClock(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	store := mock.NewCategoryStorageMock(m)
	store.CreateCategoryMock.
		Expect(ctx, category.Category{Name: "Books", Type: category.Expense}).
		Return(category.Category{ID: 7, Name: "Books", Type: category.Expense}, nil)
	events := mock.NewEventPublisherMock(m)
	events.PublishMock.Expect(ctx, transaction.ChangeEvent{
		Kind:       transaction.KindCategoryCreated,
		EntityID:   7,
		OccurredAt: now,
	}).Return(nil)

	_, err := NewService(store, events, calendar.Fixed(now)).Create(ctx, "Books", "expense")
	require.NoError(t, err)
}

func Test_OnCreate_ShouldRejectInvalidCategory(t *testing.T) {
	m := minimock.NewController(t)
	events := mock.NewEventPublisherMock(m)
	svc := NewService(storage.NewInMemStorage(), events, calendar.Fixed(now))

	for _, tt := range []struct{ name, typ string }{
		{"", "income"},
		{"   ", "expense"},
		{"Gifts", "gift"},
		{"Gifts", ""},
	} {
		_, err := svc.Create(context.Background(), tt.name, tt.typ)
		var ve *customerr.ValidationError
		assert.True(t, errors.As(err, &ve), "%q/%q", tt.name, tt.typ)
	}
	assert.Zero(t, events.PublishBeforeCounter())
}

func Test_OnDelete_ShouldBlockCategoryInUse(t *testing.T) {
	ctx := context.Background()
	store := storage.NewInMemStorage()

	m := minimock.NewController(t)
	var kinds []string
	events := mock.NewEventPublisherMock(m)
	events.PublishMock.Inspect(func(_ context.Context, event transaction.ChangeEvent) {
		kinds = append(kinds, event.Kind)
	}).Return(nil)
	svc := NewService(store, events, calendar.Fixed(now))

	food, err := svc.Create(ctx, "Food", "expense")
	require.NoError(t, err)
	tx, err := store.CreateTransaction(ctx, transaction.Transaction{
		Amount: 1, Date: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), Type: category.Expense, CategoryID: food.ID,
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, food.ID)
	var conflict *customerr.ConflictError
	assert.True(t, errors.As(err, &conflict))

	require.NoError(t, store.DeleteTransaction(ctx, tx.ID))
	require.NoError(t, svc.Delete(ctx, food.ID))
	assert.Equal(t, []string{transaction.KindCategoryCreated, transaction.KindCategoryDeleted}, kinds)
}

func Test_OnDelete_ShouldReportMissingCategory(t *testing.T) {
	m := minimock.NewController(t)
	svc := NewService(storage.NewInMemStorage(), mock.NewEventPublisherMock(m), calendar.Fixed(now))

	err := svc.Delete(context.Background(), 99)
	var nf *customerr.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func Test_OnList_ShouldWrapStorageError(t *testing.T) {
	m := minimock.NewController(t)
	store := mock.NewCategoryStorageMock(m)
	store.ListCategoriesMock.Return(nil, errors.New("db down"))

	_, err := NewService(store, mock.NewEventPublisherMock(m), calendar.Fixed(now)).List(context.Background())
	assert.ErrorContains(t, err, "list categories: db down")
}
