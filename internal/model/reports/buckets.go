package reports

import (
	"time"

	"max.ks1230/finance-tracker/internal/entity/category"
)

type bucket struct {
	label   string
	income  float64
	expense float64
}

// buckets is an insertion-ordered map from bucket start to totals. Starts
// are generated in ascending order, so iteration order is chronological.
type buckets struct {
	order []time.Time
	byKey map[time.Time]*bucket
}

func newBuckets(p Period, start, today time.Time) *buckets {
	b := &buckets{byKey: make(map[time.Time]*bucket)}
	for cur := p.bucketKey(start); !cur.After(today); cur = p.next(cur) {
		b.order = append(b.order, cur)
		b.byKey[cur] = &bucket{label: p.label(cur)}
	}
	return b
}

// add reports false when key is outside the window.
func (b *buckets) add(key time.Time, typ category.Type, amount float64) bool {
	acc, ok := b.byKey[key]
	if !ok {
		return false
	}
	switch typ {
	case category.Income:
		acc.income += amount
	case category.Expense:
		acc.expense += amount
	}
	return true
}

func (b *buckets) lineChart() LineChart {
	chart := LineChart{
		Labels:  make([]string, 0, len(b.order)),
		Income:  make([]float64, 0, len(b.order)),
		Expense: make([]float64, 0, len(b.order)),
	}
	for _, key := range b.order {
		acc := b.byKey[key]
		chart.Labels = append(chart.Labels, acc.label)
		chart.Income = append(chart.Income, acc.income)
		chart.Expense = append(chart.Expense, acc.expense)
	}
	return chart
}
