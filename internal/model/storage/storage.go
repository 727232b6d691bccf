package storage

import (
	"context"

	"github.com/pkg/errors"

	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/entity/user"
	"max.ks1230/finance-tracker/internal/model/customerr"
)

var errMissingDate = &customerr.ValidationError{Err: "Date is required"}

// Storage is everything the services need from a backend.
type Storage interface {
	GetUser(ctx context.Context) (user.Record, error)
	CreateUser(ctx context.Context, pinHash string) (user.Record, error)
	UpdateUserPin(ctx context.Context, id int64, pinHash string) error

	ListCategories(ctx context.Context) ([]category.Category, error)
	GetCategory(ctx context.Context, id int64) (category.Category, error)
	CreateCategory(ctx context.Context, c category.Category) (category.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListTransactions(ctx context.Context, filter transaction.Filter) ([]transaction.Transaction, error)
	CreateTransaction(ctx context.Context, t transaction.Transaction) (transaction.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error

	Close() error
}

// New opens the backend chosen by driver.
func New(driver string, pg postgresConfig, lite sqliteConfig) (Storage, error) {
	var (
		s   *SQLStorage
		err error
	)
	switch driver {
	case "postgres":
		s, err = NewPostgresStorage(pg)
	case "sqlite":
		s, err = NewSQLiteStorage(lite)
	case "memory":
		return NewInMemStorage(), nil
	default:
		return nil, errors.Errorf("unknown storage driver %s", driver)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
