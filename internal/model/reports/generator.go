package reports

import (
	"context"
	"encoding/json"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/entity/category"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/calendar"
)

type Summary struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// BarChart holds expense totals per category name.
type BarChart struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

type LineChart struct {
	Labels  []string  `json:"labels"`
	Income  []float64 `json:"income"`
	Expense []float64 `json:"expense"`
}

type Dashboard struct {
	Summary   Summary   `json:"summary"`
	BarChart  BarChart  `json:"bar_chart"`
	LineChart LineChart `json:"line_chart"`
}

type transactionStorage interface {
	ListTransactions(ctx context.Context, filter transaction.Filter) ([]transaction.Transaction, error)
}

type dashboardCache interface {
	Generation() (uint64, error)
	GetDashboard(generation uint64, period string, day time.Time) ([]byte, bool, error)
	CacheDashboard(generation uint64, period string, day time.Time, payload []byte) error
}

type Generator struct {
	storage transactionStorage
	cache   dashboardCache
}

func NewGenerator(storage transactionStorage, cache dashboardCache) *Generator {
	return &Generator{
		storage: storage,
		cache:   cache,
	}
}

// Dashboard returns the cached dashboard for today if there is one and
// builds and caches it otherwise. The cache generation is read before the
// ledger, so a change that lands during the rebuild leaves the result under
// a retired generation.
func (g *Generator) Dashboard(ctx context.Context, period Period, today time.Time) (Dashboard, error) {
	gen, err := g.cache.Generation()
	if err != nil {
		logger.Warn("dashboard cache unavailable", zap.Error(err))
		return g.Generate(ctx, period, today)
	}

	payload, ok, err := g.cache.GetDashboard(gen, string(period), today)
	if err != nil {
		logger.Warn("dashboard cache lookup failed", zap.Error(err))
	}
	if ok {
		var d Dashboard
		if err = json.Unmarshal(payload, &d); err == nil {
			return d, nil
		}
		logger.Warn("broken dashboard in cache", zap.Error(err))
	}
	return g.fill(ctx, gen, period, today)
}

// Refresh builds the dashboard and overwrites any cached copy.
func (g *Generator) Refresh(ctx context.Context, period Period, today time.Time) (Dashboard, error) {
	gen, err := g.cache.Generation()
	if err != nil {
		return Dashboard{}, errors.Wrap(err, "cache generation")
	}
	return g.fill(ctx, gen, period, today)
}

func (g *Generator) fill(ctx context.Context, gen uint64, period Period, today time.Time) (Dashboard, error) {
	d, err := g.Generate(ctx, period, today)
	if err != nil {
		return Dashboard{}, err
	}
	payload, err := json.Marshal(d)
	if err != nil {
		return Dashboard{}, errors.Wrap(err, "marshal dashboard")
	}
	if err = g.cache.CacheDashboard(gen, string(period), today, payload); err != nil {
		logger.Warn("failed to cache dashboard", zap.String("period", string(period)), zap.Error(err))
	}
	return d, nil
}

// Generate buckets every transaction dated on or after the window start.
// There is no upper bound: future-dated rows count towards the summary and
// the category breakdown but fall outside every bucket.
func (g *Generator) Generate(ctx context.Context, period Period, today time.Time) (Dashboard, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "generateDashboard")
	defer span.Finish()
	span.SetTag("period", string(period))

	today = calendar.Day(today)
	start := period.windowStart(today)

	txs, err := g.storage.ListTransactions(ctx, transaction.Filter{StartDate: &start})
	if err != nil {
		ext.Error.Set(span, true)
		return Dashboard{}, errors.Wrap(err, "generate dashboard")
	}

	d := aggregate(period, start, today, txs)
	logger.Debug("dashboard generated",
		zap.String("period", string(period)),
		zap.Time("start", start),
		zap.Int("transactions", len(txs)),
		zap.Int("buckets", len(d.LineChart.Labels)))
	return d, nil
}

func aggregate(period Period, start, today time.Time, txs []transaction.Transaction) Dashboard {
	var (
		summary  Summary
		expenses = newCategoryTotals()
		series   *buckets
	)
	if period.bucketed() {
		series = newBuckets(period, start, today)
	}

	for _, t := range txs {
		switch t.Type {
		case category.Income:
			summary.Income += t.Amount
		case category.Expense:
			summary.Expenses += t.Amount
			expenses.add(t.CategoryName, t.Amount)
		}
		if series != nil {
			series.add(period.bucketKey(calendar.Day(t.Date)), t.Type, t.Amount)
		}
	}
	summary.Balance = summary.Income - summary.Expenses

	d := Dashboard{
		Summary:  summary,
		BarChart: expenses.chart(),
		LineChart: LineChart{
			Labels:  []string{},
			Income:  []float64{},
			Expense: []float64{},
		},
	}
	if series != nil {
		d.LineChart = series.lineChart()
	}
	return d
}

// categoryTotals keeps category names in the order they were first seen.
type categoryTotals struct {
	names  []string
	totals map[string]float64
}

func newCategoryTotals() *categoryTotals {
	return &categoryTotals{totals: make(map[string]float64)}
}

func (c *categoryTotals) add(name string, amount float64) {
	if _, ok := c.totals[name]; !ok {
		c.names = append(c.names, name)
	}
	c.totals[name] += amount
}

func (c *categoryTotals) chart() BarChart {
	chart := BarChart{
		Labels: make([]string, 0, len(c.names)),
		Data:   make([]float64, 0, len(c.names)),
	}
	for _, name := range c.names {
		chart.Labels = append(chart.Labels, name)
		chart.Data = append(chart.Data, c.totals[name])
	}
	return chart
}
