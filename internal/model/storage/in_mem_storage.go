package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/entity/user"
	"max.ks1230/finance-tracker/internal/model/customerr"
)

// InMemStorage is a process-local store with the same contract as SQLStorage.
type InMemStorage struct {
	mu           sync.RWMutex
	users        []user.Record
	categories   map[int64]category.Category
	transactions map[int64]transaction.Transaction
	lastID       int64
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		categories:   make(map[int64]category.Category),
		transactions: make(map[int64]transaction.Transaction),
	}
}

func (s *InMemStorage) nextID() int64 {
	s.lastID++
	return s.lastID
}

func (s *InMemStorage) Close() error {
	return nil
}

func (s *InMemStorage) GetUser(_ context.Context) (user.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.users) == 0 {
		return user.Record{}, &customerr.NotFoundError{Err: "user not found"}
	}
	return s.users[0], nil
}

func (s *InMemStorage) CreateUser(_ context.Context, pinHash string) (user.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := user.Record{ID: s.nextID(), PinHash: pinHash}
	s.users = append(s.users, rec)
	return rec, nil
}

func (s *InMemStorage) UpdateUserPin(_ context.Context, id int64, pinHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].PinHash = pinHash
			return nil
		}
	}
	return &customerr.NotFoundError{Err: "user not found"}
}

func (s *InMemStorage) ListCategories(_ context.Context) ([]category.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cats := make([]category.Category, 0, len(s.categories))
	for _, c := range s.categories {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		return cats[i].ID < cats[j].ID
	})
	return cats, nil
}

func (s *InMemStorage) GetCategory(_ context.Context, id int64) (category.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return category.Category{}, &customerr.NotFoundError{Err: "Category not found"}
	}
	return c, nil
}

func (s *InMemStorage) CreateCategory(_ context.Context, c category.Category) (category.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextID()
	s.categories[c.ID] = c
	return c, nil
}

func (s *InMemStorage) DeleteCategory(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return &customerr.NotFoundError{Err: "Category not found"}
	}
	refs := 0
	for _, t := range s.transactions {
		if t.CategoryID == id {
			refs++
		}
	}
	if refs > 0 {
		return &customerr.ConflictError{
			Err: fmt.Sprintf("Category is used by %d transaction(s)", refs),
		}
	}
	delete(s.categories, id)
	return nil
}

func (s *InMemStorage) ListTransactions(_ context.Context, filter transaction.Filter) ([]transaction.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txs := make([]transaction.Transaction, 0)
	for _, t := range s.transactions {
		if !filter.Match(t) {
			continue
		}
		if c, ok := s.categories[t.CategoryID]; ok {
			t.CategoryName = c.Name
		}
		txs = append(txs, t)
	}
	sort.Slice(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date) {
			return txs[i].Date.After(txs[j].Date)
		}
		return txs[i].ID > txs[j].ID
	})
	return txs, nil
}

func (s *InMemStorage) CreateTransaction(_ context.Context, t transaction.Transaction) (transaction.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[t.CategoryID]; !ok {
		return transaction.Transaction{}, &customerr.ValidationError{Err: "Category not found"}
	}
	if t.Date.IsZero() {
		return transaction.Transaction{}, errMissingDate
	}
	t.ID = s.nextID()
	s.transactions[t.ID] = t
	return t, nil
}

func (s *InMemStorage) DeleteTransaction(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transactions[id]; !ok {
		return &customerr.NotFoundError{Err: "Transaction not found"}
	}
	delete(s.transactions, id)
	return nil
}
