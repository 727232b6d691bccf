package reports

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/model/reports/mock"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func tx(id int64, typ category.Type, d string, amount float64, cat string) transaction.Transaction {
	return transaction.Transaction{ID: id, Type: typ, Date: day(d), Amount: amount, CategoryName: cat}
}

func startsAt(t minimock.Tester, s string) func(context.Context, transaction.Filter) {
	return func(_ context.Context, f transaction.Filter) {
		if assert.NotNil(t, f.StartDate) {
			assert.True(t, f.StartDate.Equal(day(s)), "start %s", f.StartDate)
		}
		assert.Nil(t, f.EndDate)
		assert.Nil(t, f.Type)
	}
}

func generate(t *testing.T, period Period, today string, txs []transaction.Transaction) Dashboard {
	m := minimock.NewController(t)
	storage := mock.NewTransactionStorageMock(m)
	storage.ListTransactionsMock.Return(txs, nil)

	d, err := NewGenerator(storage, mock.NewDashboardCacheMock(m)).Generate(context.Background(), period, day(today))
	require.NoError(t, err)
	return d
}

func Test_OnGenerate_ShouldProduceFixedBucketCounts(t *testing.T) {
	todays := []string{"2025-01-25", "2024-02-29", "2024-03-01", "2023-12-31", "2025-06-02"}
	want := map[Period]int{Daily: 31, Weekly: 13, Monthly: 13}

	for _, today := range todays {
		for period, count := range want {
			d := generate(t, period, today, nil)
			assert.Len(t, d.LineChart.Labels, count, "%s %s", period, today)
			assert.Len(t, d.LineChart.Income, count)
			assert.Len(t, d.LineChart.Expense, count)
		}
	}
}

func Test_OnGenerate_ShouldBucketMonthlyScenario(t *testing.T) {
	m := minimock.NewController(t)
	storage := mock.NewTransactionStorageMock(m)
	storage.ListTransactionsMock.
		Inspect(startsAt(m, "2024-01-01")).
		Return([]transaction.Transaction{
			tx(2, category.Expense, "2025-01-20", 40, "Food"),
			tx(1, category.Income, "2025-01-15", 100, "Salary"),
		}, nil)

	d, err := NewGenerator(storage, mock.NewDashboardCacheMock(m)).Generate(context.Background(), Monthly, day("2025-01-25"))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), storage.ListTransactionsAfterCounter())

	assert.Equal(t, Summary{Income: 100, Expenses: 40, Balance: 60}, d.Summary)
	assert.Equal(t, "Jan 24", d.LineChart.Labels[0])
	last := len(d.LineChart.Labels) - 1
	assert.Equal(t, "Jan 25", d.LineChart.Labels[last])
	assert.Equal(t, 100.0, d.LineChart.Income[last])
	assert.Equal(t, 40.0, d.LineChart.Expense[last])
	assert.Equal(t, BarChart{Labels: []string{"Food"}, Data: []float64{40}}, d.BarChart)
}

func Test_OnGenerate_ShouldRollMonthsOverLeapFebruary(t *testing.T) {
	d := generate(t, Monthly, "2024-03-15", []transaction.Transaction{
		tx(1, category.Expense, "2024-02-29", 25, "Food"),
		tx(2, category.Expense, "2024-03-01", 5, "Food"),
	})

	labels := d.LineChart.Labels
	require.Len(t, labels, 13)
	assert.Equal(t, "Mar 23", labels[0])
	assert.Equal(t, "Feb 24", labels[11])
	assert.Equal(t, "Mar 24", labels[12])
	assert.Equal(t, 25.0, d.LineChart.Expense[11])
	assert.Equal(t, 5.0, d.LineChart.Expense[12])
}

func Test_OnGenerate_ShouldLabelWeeksFromMonday(t *testing.T) {
	m := minimock.NewController(t)
	storage := mock.NewTransactionStorageMock(m)
	storage.ListTransactionsMock.
		Inspect(startsAt(m, "2024-10-28")).
		Return([]transaction.Transaction{
			tx(1, category.Income, "2025-01-26", 10, "Salary"),
			tx(2, category.Income, "2025-01-20", 5, "Salary"),
			tx(3, category.Expense, "2024-10-28", 7, "Rent"),
		}, nil)

	// 2025-01-25 is a Saturday; 2025-01-26 is the Sunday of the same week.
	d, err := NewGenerator(storage, mock.NewDashboardCacheMock(m)).Generate(context.Background(), Weekly, day("2025-01-25"))
	require.NoError(t, err)

	labels := d.LineChart.Labels
	require.Len(t, labels, 13)
	assert.Equal(t, "28/10/24 - 03/11/24", labels[0])
	assert.Equal(t, "20/01/25 - 26/01/25", labels[12])
	assert.Equal(t, 15.0, d.LineChart.Income[12])
	assert.Equal(t, 7.0, d.LineChart.Expense[0])
}

func Test_OnGenerate_ShouldLabelDays(t *testing.T) {
	m := minimock.NewController(t)
	storage := mock.NewTransactionStorageMock(m)
	storage.ListTransactionsMock.
		Inspect(startsAt(m, "2024-12-26")).
		Return([]transaction.Transaction{}, nil)

	d, err := NewGenerator(storage, mock.NewDashboardCacheMock(m)).Generate(context.Background(), Daily, day("2025-01-25"))
	require.NoError(t, err)

	labels := d.LineChart.Labels
	require.Len(t, labels, 31)
	assert.Equal(t, "26/12/24", labels[0])
	assert.Equal(t, "25/01/25", labels[30])
}

func Test_OnGenerate_ShouldReturnZeroesForEmptyLedger(t *testing.T) {
	d := generate(t, Daily, "2025-01-25", nil)

	assert.Equal(t, Summary{}, d.Summary)
	assert.Empty(t, d.BarChart.Labels)
	assert.NotNil(t, d.BarChart.Labels)
	for i := range d.LineChart.Labels {
		assert.Zero(t, d.LineChart.Income[i])
		assert.Zero(t, d.LineChart.Expense[i])
	}
}

func Test_OnGenerate_ShouldCountFutureDatedOnlyInSummary(t *testing.T) {
	d := generate(t, Monthly, "2025-01-25", []transaction.Transaction{
		tx(2, category.Expense, "2025-03-01", 30, "Rent"),
		tx(1, category.Expense, "2025-01-10", 20, "Food"),
	})

	assert.Equal(t, 50.0, d.Summary.Expenses)
	assert.Equal(t, -50.0, d.Summary.Balance)

	var bucketed float64
	for _, v := range d.LineChart.Expense {
		bucketed += v
	}
	assert.Equal(t, 20.0, bucketed)
	assert.LessOrEqual(t, bucketed, d.Summary.Expenses)
	assert.Equal(t, []string{"Rent", "Food"}, d.BarChart.Labels)
}

func Test_OnGenerate_ShouldKeepBalanceIdentity(t *testing.T) {
	d := generate(t, Daily, "2025-01-25", []transaction.Transaction{
		tx(4, category.Income, "2025-01-25", 0.1, "Salary"),
		tx(3, category.Expense, "2025-01-24", 0.2, "Food"),
		tx(2, category.Income, "2025-01-20", 1234.56, "Freelance"),
		tx(1, category.Expense, "2025-01-01", 99.99, "Rent"),
	})

	assert.Equal(t, d.Summary.Income-d.Summary.Expenses, d.Summary.Balance)

	var income float64
	for _, v := range d.LineChart.Income {
		income += v
	}
	assert.InDelta(t, d.Summary.Income, income, 1e-9)
}

func Test_OnGenerate_ShouldGroupExpensesInFirstSeenOrder(t *testing.T) {
	d := generate(t, Monthly, "2025-01-25", []transaction.Transaction{
		tx(5, category.Expense, "2025-01-20", 10, "Transport"),
		tx(4, category.Income, "2025-01-19", 500, "Salary"),
		tx(3, category.Expense, "2025-01-18", 15, "Food"),
		tx(2, category.Expense, "2025-01-17", 5, "Transport"),
		tx(1, category.Expense, "2025-01-16", 1, "Rent"),
	})

	assert.Equal(t, BarChart{
		Labels: []string{"Transport", "Food", "Rent"},
		Data:   []float64{15, 15, 1},
	}, d.BarChart)
}

func Test_OnGenerate_ShouldSkipBucketsForOtherPeriod(t *testing.T) {
	m := minimock.NewController(t)
	storage := mock.NewTransactionStorageMock(m)
	storage.ListTransactionsMock.
		Inspect(startsAt(m, "2024-01-26")).
		Return([]transaction.Transaction{
			tx(1, category.Income, "2024-06-01", 70, "Salary"),
		}, nil)

	d, err := NewGenerator(storage, mock.NewDashboardCacheMock(m)).Generate(context.Background(), ParsePeriod("yearly"), day("2025-01-25"))
	require.NoError(t, err)

	assert.Equal(t, 70.0, d.Summary.Income)
	assert.Equal(t, LineChart{Labels: []string{}, Income: []float64{}, Expense: []float64{}}, d.LineChart)

	raw, err := json.Marshal(d.LineChart)
	require.NoError(t, err)
	assert.JSONEq(t, `{"labels":[],"income":[],"expense":[]}`, string(raw))
}

func Test_OnParsePeriod_ShouldDefaultToMonthly(t *testing.T) {
	assert.Equal(t, Monthly, ParsePeriod(""))
	assert.Equal(t, Daily, ParsePeriod("daily"))
	assert.Equal(t, Weekly, ParsePeriod("weekly"))
	assert.Equal(t, Monthly, ParsePeriod("monthly"))
	assert.Equal(t, Other, ParsePeriod("DAILY"))
}

func Test_OnDashboard_ShouldServeFromCache(t *testing.T) {
	today := day("2025-01-25")
	cached := Dashboard{Summary: Summary{Income: 1, Expenses: 2, Balance: -1}}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	m := minimock.NewController(t)
	storage := mock.NewTransactionStorageMock(m)
	cache := mock.NewDashboardCacheMock(m)
	cache.GenerationMock.Return(4, nil)
	cache.GetDashboardMock.Expect(4, "monthly", today).Return(payload, true, nil)

	d, err := NewGenerator(storage, cache).Dashboard(context.Background(), Monthly, today)
	require.NoError(t, err)
	assert.Equal(t, cached.Summary, d.Summary)
	assert.Zero(t, storage.ListTransactionsBeforeCounter())
}

func Test_OnDashboard_ShouldGenerateAndCacheOnMiss(t *testing.T) {
	today := day("2025-01-25")

	m := minimock.NewController(t)
	storage := mock.NewTransactionStorageMock(m)
	storage.ListTransactionsMock.
		Return([]transaction.Transaction{tx(1, category.Income, "2025-01-15", 100, "Salary")}, nil)
	cache := mock.NewDashboardCacheMock(m)
	cache.GenerationMock.Return(4, nil)
	cache.GetDashboardMock.Expect(4, "daily", today).Return(nil, false, nil)
	cache.CacheDashboardMock.Inspect(func(generation uint64, period string, d time.Time, payload []byte) {
		assert.Equal(m, uint64(4), generation)
		assert.Equal(m, "daily", period)
		assert.Equal(m, today, d)
		assert.Contains(m, string(payload), `"income":100`)
	}).Return(nil)

	d, err := NewGenerator(storage, cache).Dashboard(context.Background(), Daily, today)
	require.NoError(t, err)
	assert.Equal(t, 100.0, d.Summary.Income)
	assert.Equal(t, uint64(1), cache.CacheDashboardAfterCounter())
}

func Test_OnDashboard_ShouldCacheUnderGenerationReadBeforeLedger(t *testing.T) {
	today := day("2025-01-25")

	m := minimock.NewController(t)
	cache := mock.NewDashboardCacheMock(m)
	storage := mock.NewTransactionStorageMock(m)

	gen := uint64(10)
	cache.GenerationMock.Set(func() (uint64, error) {
		return gen, nil
	})
	cache.GetDashboardMock.Return(nil, false, nil)
	storage.ListTransactionsMock.
		Inspect(func(context.Context, transaction.Filter) {
			assert.Equal(m, uint64(1), cache.GenerationAfterCounter())
			// a change lands while the ledger is being read
			gen++
		}).
		Return([]transaction.Transaction{}, nil)
	cache.CacheDashboardMock.Inspect(func(generation uint64, _ string, _ time.Time, _ []byte) {
		assert.Equal(m, uint64(10), generation)
	}).Return(nil)

	_, err := NewGenerator(storage, cache).Dashboard(context.Background(), Monthly, today)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), cache.GenerationAfterCounter())
}

func Test_OnDashboard_ShouldGenerateWhenGenerationUnavailable(t *testing.T) {
	m := minimock.NewController(t)
	storage := mock.NewTransactionStorageMock(m)
	storage.ListTransactionsMock.Return([]transaction.Transaction{tx(1, category.Expense, "2025-01-20", 9, "Food")}, nil)
	cache := mock.NewDashboardCacheMock(m)
	cache.GenerationMock.Return(0, errors.New("memcached down"))

	d, err := NewGenerator(storage, cache).Dashboard(context.Background(), Monthly, day("2025-01-25"))
	require.NoError(t, err)
	assert.Equal(t, 9.0, d.Summary.Expenses)
	assert.Zero(t, cache.CacheDashboardBeforeCounter())
}
