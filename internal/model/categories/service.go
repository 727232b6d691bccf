package categories

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/customerr"
)

type categoryStorage interface {
	ListCategories(ctx context.Context) ([]category.Category, error)
	CreateCategory(ctx context.Context, c category.Category) (category.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type eventPublisher interface {
	Publish(ctx context.Context, event transaction.ChangeEvent) error
}

type clock interface {
	Now() time.Time
}

type Service struct {
	storage categoryStorage
	events  eventPublisher
	clock   clock
}

func NewService(storage categoryStorage, events eventPublisher, clock clock) *Service {
	return &Service{storage: storage, events: events, clock: clock}
}

func (s *Service) List(ctx context.Context) ([]category.Category, error) {
	cats, err := s.storage.ListCategories(ctx)
	return cats, errors.Wrap(err, "list categories")
}

func (s *Service) Create(ctx context.Context, name, typ string) (category.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return category.Category{}, &customerr.ValidationError{Err: "Category name is required"}
	}
	t, ok := category.ParseType(typ)
	if !ok {
		return category.Category{}, &customerr.ValidationError{Err: "Category type must be income or expense"}
	}

	c, err := s.storage.CreateCategory(ctx, category.Category{Name: name, Type: t})
	if err != nil {
		return category.Category{}, errors.Wrap(err, "create category")
	}
	s.publish(ctx, transaction.KindCategoryCreated, c.ID)
	return c, nil
}

// Delete fails with ConflictError while any transaction uses the category.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.storage.DeleteCategory(ctx, id); err != nil {
		return errors.Wrap(err, "delete category")
	}
	s.publish(ctx, transaction.KindCategoryDeleted, id)
	return nil
}

func (s *Service) publish(ctx context.Context, kind string, id int64) {
	err := s.events.Publish(ctx, transaction.ChangeEvent{Kind: kind, EntityID: id, OccurredAt: s.clock.Now().UTC()})
	if err != nil {
		logger.Error("failed to publish change event", zap.String("kind", kind), zap.Error(err))
	}
}
