package transactions

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/calendar"
	"max.ks1230/finance-tracker/internal/model/customerr"
)

type transactionStorage interface {
	GetCategory(ctx context.Context, id int64) (category.Category, error)
	ListTransactions(ctx context.Context, filter transaction.Filter) ([]transaction.Transaction, error)
	CreateTransaction(ctx context.Context, t transaction.Transaction) (transaction.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
}

type eventPublisher interface {
	Publish(ctx context.Context, event transaction.ChangeEvent) error
}

type cacheInvalidator interface {
	InvalidateDashboards() error
}

type clock interface {
	Now() time.Time
}

type Service struct {
	storage transactionStorage
	events  eventPublisher
	cache   cacheInvalidator
	clock   clock
}

func NewService(storage transactionStorage, events eventPublisher, cache cacheInvalidator, clock clock) *Service {
	return &Service{
		storage: storage,
		events:  events,
		cache:   cache,
		clock:   clock,
	}
}

// Input carries raw request values; Create validates and converts them.
type Input struct {
	Amount      string
	Date        string
	Description string
	Type        string
	CategoryID  string
}

// ListInput carries raw query values. Empty fields are not applied.
type ListInput struct {
	StartDate string
	EndDate   string
	Type      string
}

func invalid(msg string) error {
	return &customerr.ValidationError{Err: msg}
}

func (s *Service) List(ctx context.Context, in ListInput) ([]transaction.Transaction, error) {
	filter, err := parseFilter(in)
	if err != nil {
		return nil, err
	}
	txs, err := s.storage.ListTransactions(ctx, filter)
	return txs, errors.Wrap(err, "list transactions")
}

func parseFilter(in ListInput) (transaction.Filter, error) {
	var filter transaction.Filter
	if in.StartDate != "" {
		d, err := calendar.ParseDate(in.StartDate)
		if err != nil {
			return filter, invalid("Invalid start_date, expected YYYY-MM-DD")
		}
		filter.StartDate = &d
	}
	if in.EndDate != "" {
		d, err := calendar.ParseDate(in.EndDate)
		if err != nil {
			return filter, invalid("Invalid end_date, expected YYYY-MM-DD")
		}
		filter.EndDate = &d
	}
	if in.Type != "" {
		t, ok := category.ParseType(in.Type)
		if !ok {
			return filter, invalid("Invalid type, expected income or expense")
		}
		filter.Type = &t
	}
	return filter, nil
}

func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, invalid("Amount must be a number")
	}
	if amount <= 0 {
		return 0, invalid("Amount must be positive")
	}
	return amount, nil
}

func (s *Service) Create(ctx context.Context, in Input) (transaction.Transaction, error) {
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return transaction.Transaction{}, err
	}
	date, err := calendar.ParseDate(strings.TrimSpace(in.Date))
	if err != nil {
		return transaction.Transaction{}, invalid("Invalid date, expected YYYY-MM-DD")
	}
	typ, ok := category.ParseType(in.Type)
	if !ok {
		return transaction.Transaction{}, invalid("Type must be income or expense")
	}
	cat, err := s.resolveCategory(ctx, in.CategoryID)
	if err != nil {
		return transaction.Transaction{}, err
	}
	if cat.Type != typ {
		return transaction.Transaction{}, invalid("Type does not match the category type")
	}

	t, err := s.storage.CreateTransaction(ctx, transaction.Transaction{
		Amount:      amount,
		Date:        date,
		Description: strings.TrimSpace(in.Description),
		Type:        typ,
		CategoryID:  cat.ID,
	})
	if err != nil {
		return transaction.Transaction{}, errors.Wrap(err, "create transaction")
	}
	t.CategoryName = cat.Name

	s.changed(ctx, transaction.KindTransactionCreated, t.ID)
	return t, nil
}

func (s *Service) resolveCategory(ctx context.Context, raw string) (category.Category, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return category.Category{}, invalid("category_id is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return category.Category{}, invalid("category_id must be an integer")
	}
	cat, err := s.storage.GetCategory(ctx, id)
	if err != nil {
		var nf *customerr.NotFoundError
		if errors.As(err, &nf) {
			return category.Category{}, invalid("Category not found")
		}
		return category.Category{}, errors.Wrap(err, "resolve category")
	}
	return cat, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.storage.DeleteTransaction(ctx, id); err != nil {
		return errors.Wrap(err, "delete transaction")
	}
	s.changed(ctx, transaction.KindTransactionDeleted, id)
	return nil
}

// changed retires the cached dashboards and announces the change. Both are
// best effort; the write itself already succeeded.
func (s *Service) changed(ctx context.Context, kind string, id int64) {
	if err := s.cache.InvalidateDashboards(); err != nil {
		logger.Error("failed to invalidate dashboards", zap.Error(err))
	}
	err := s.events.Publish(ctx, transaction.ChangeEvent{Kind: kind, EntityID: id, OccurredAt: s.clock.Now().UTC()})
	if err != nil {
		logger.Error("failed to publish change event", zap.String("kind", kind), zap.Error(err))
	}
}
