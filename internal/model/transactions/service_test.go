package transactions

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/model/calendar"
	"max.ks1230/finance-tracker/internal/model/customerr"
	"max.ks1230/finance-tracker/internal/model/storage"
	"max.ks1230/finance-tracker/internal/model/transactions/mock"
)

var today = time.Date(2025, time.January, 25, 0, 0, 0, 0, time.UTC)

type fixture struct {
	svc       *Service
	store     *storage.InMemStorage
	events    *mock.EventPublisherMock
	cache     *mock.CacheInvalidatorMock
	published []transaction.ChangeEvent
	food      category.Category
	salary    category.Category
}

func newFixture(t *testing.T) *fixture {
	ctx := context.Background()
	store := storage.NewInMemStorage()
	food, err := store.CreateCategory(ctx, category.Category{Name: "Food", Type: category.Expense})
	require.NoError(t, err)
	salary, err := store.CreateCategory(ctx, category.Category{Name: "Salary", Type: category.Income})
	require.NoError(t, err)

	m := minimock.NewController(t)
	f := &fixture{
		store:  store,
		events: mock.NewEventPublisherMock(m),
		cache:  mock.NewCacheInvalidatorMock(m),
		food:   food,
		salary: salary,
	}
	f.events.PublishMock.Inspect(func(_ context.Context, event transaction.ChangeEvent) {
		f.published = append(f.published, event)
	})
	f.svc = NewService(store, f.events, f.cache, calendar.Fixed(today))
	return f
}

func (f *fixture) expectChanges() {
	f.cache.InvalidateDashboardsMock.Return(nil)
	f.events.PublishMock.Return(nil)
}

func (f *fixture) publishedKinds() []string {
	kinds := make([]string, 0, len(f.published))
	for _, e := range f.published {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func Test_OnCreate_ShouldStoreValidTransaction(t *testing.T) {
	f := newFixture(t)
	f.expectChanges()

	created, err := f.svc.Create(context.Background(), Input{
		Amount:      "12.50",
		Date:        "2025-01-20",
		Description: " lunch ",
		Type:        "expense",
		CategoryID:  idString(f.food.ID),
	})
	require.NoError(t, err)

	assert.Equal(t, 12.5, created.Amount)
	assert.Equal(t, time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC), created.Date)
	assert.Equal(t, "lunch", created.Description)
	assert.Equal(t, "Food", created.CategoryName)
	assert.Equal(t, uint64(1), f.cache.InvalidateDashboardsAfterCounter())
	assert.Equal(t, []transaction.ChangeEvent{{
		Kind:       transaction.KindTransactionCreated,
		EntityID:   created.ID,
		OccurredAt: today,
	}}, f.published)

	txs, err := f.svc.List(context.Background(), ListInput{})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, created.ID, txs[0].ID)
}

func Test_OnCreate_ShouldRejectInvalidInput(t *testing.T) {
	f := newFixture(t)
	valid := Input{Amount: "10", Date: "2025-01-20", Type: "expense", CategoryID: idString(f.food.ID)}

	tests := []struct {
		name   string
		modify func(in *Input)
	}{
		{name: "non-numeric amount", modify: func(in *Input) { in.Amount = "ten" }},
		{name: "empty amount", modify: func(in *Input) { in.Amount = "" }},
		{name: "zero amount", modify: func(in *Input) { in.Amount = "0" }},
		{name: "negative amount", modify: func(in *Input) { in.Amount = "-5" }},
		{name: "nan amount", modify: func(in *Input) { in.Amount = "NaN" }},
		{name: "infinite amount", modify: func(in *Input) { in.Amount = "Inf" }},
		{name: "missing date", modify: func(in *Input) { in.Date = "" }},
		{name: "bad date", modify: func(in *Input) { in.Date = "20/01/2025" }},
		{name: "impossible date", modify: func(in *Input) { in.Date = "2025-02-30" }},
		{name: "unknown type", modify: func(in *Input) { in.Type = "transfer" }},
		{name: "missing category", modify: func(in *Input) { in.CategoryID = "" }},
		{name: "non-numeric category", modify: func(in *Input) { in.CategoryID = "food" }},
		{name: "unknown category", modify: func(in *Input) { in.CategoryID = "999" }},
		{name: "type mismatch", modify: func(in *Input) { in.Type = "income" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.modify(&in)

			_, err := f.svc.Create(context.Background(), in)
			var ve *customerr.ValidationError
			assert.True(t, errors.As(err, &ve), "got %v", err)
		})
	}

	txs, err := f.store.ListTransactions(context.Background(), transaction.Filter{})
	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.Empty(t, f.published)
	assert.Zero(t, f.cache.InvalidateDashboardsBeforeCounter())
}

func Test_OnList_ShouldValidateFilters(t *testing.T) {
	f := newFixture(t)

	for _, in := range []ListInput{
		{StartDate: "yesterday"},
		{EndDate: "2025-13-01"},
		{Type: "both"},
	} {
		_, err := f.svc.List(context.Background(), in)
		var ve *customerr.ValidationError
		assert.True(t, errors.As(err, &ve), "input %+v", in)
	}
}

func Test_OnList_ShouldFilterByDateAndType(t *testing.T) {
	f := newFixture(t)
	f.expectChanges()

	ctx := context.Background()
	for _, in := range []Input{
		{Amount: "1", Date: "2025-01-01", Type: "expense", CategoryID: idString(f.food.ID)},
		{Amount: "2", Date: "2025-01-10", Type: "income", CategoryID: idString(f.salary.ID)},
		{Amount: "3", Date: "2025-01-20", Type: "expense", CategoryID: idString(f.food.ID)},
	} {
		_, err := f.svc.Create(ctx, in)
		require.NoError(t, err)
	}

	txs, err := f.svc.List(ctx, ListInput{StartDate: "2025-01-10", EndDate: "2025-01-20", Type: "expense"})
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, 3.0, txs[0].Amount)
}

func Test_OnDelete_ShouldReportMissingTransaction(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Delete(context.Background(), 404)
	var nf *customerr.NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Empty(t, f.published)
}

func Test_OnDelete_ShouldInvalidateAndPublish(t *testing.T) {
	f := newFixture(t)
	f.expectChanges()
	created, err := f.svc.Create(context.Background(), Input{
		Amount: "5", Date: "2025-01-20", Type: "income", CategoryID: idString(f.salary.ID),
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), created.ID))

	assert.Equal(t, uint64(2), f.cache.InvalidateDashboardsAfterCounter())
	assert.Equal(t, []string{transaction.KindTransactionCreated, transaction.KindTransactionDeleted}, f.publishedKinds())
	assert.Equal(t, created.ID, f.published[1].EntityID)
}

func Test_OnCreate_ShouldSucceedWhenSideEffectsFail(t *testing.T) {
	f := newFixture(t)
	f.cache.InvalidateDashboardsMock.Return(errors.New("memcache down"))
	f.events.PublishMock.Return(errors.New("kafka down"))

	_, err := f.svc.Create(context.Background(), Input{
		Amount: "5", Date: "2025-01-20", Type: "income", CategoryID: idString(f.salary.ID),
	})
	assert.NoError(t, err)
}
