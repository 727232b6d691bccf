package bootstrap

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/entity/user"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/auth"
	"max.ks1230/finance-tracker/internal/model/customerr"
)

type store interface {
	GetUser(ctx context.Context) (user.Record, error)
	CreateUser(ctx context.Context, pinHash string) (user.Record, error)
	ListCategories(ctx context.Context) ([]category.Category, error)
	CreateCategory(ctx context.Context, c category.Category) (category.Category, error)
}

type config interface {
	DefaultPin() string
}

// Run seeds the user and the default categories if they are missing.
// Calling it on every start is safe.
func Run(ctx context.Context, config config, s store) error {
	if err := ensureUser(ctx, s, config.DefaultPin()); err != nil {
		return errors.Wrap(err, "bootstrap")
	}
	if err := ensureCategories(ctx, s); err != nil {
		return errors.Wrap(err, "bootstrap")
	}
	return nil
}

func ensureUser(ctx context.Context, s store, pin string) error {
	_, err := s.GetUser(ctx)
	if err == nil {
		return nil
	}
	var nf *customerr.NotFoundError
	if !errors.As(err, &nf) {
		return err
	}

	if !auth.ValidPin(pin) {
		return errors.New("default pin must be 4 digits")
	}
	hash, err := auth.HashPin(pin)
	if err != nil {
		return err
	}
	rec, err := s.CreateUser(ctx, hash)
	if err != nil {
		return err
	}
	logger.Info("created default user", zap.Int64("userID", rec.ID))
	return nil
}

func ensureCategories(ctx context.Context, s store) error {
	existing, err := s.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, c := range category.Defaults() {
		if _, err = s.CreateCategory(ctx, c); err != nil {
			return err
		}
	}
	logger.Info("created default categories", zap.Int("count", len(category.Defaults())))
	return nil
}
