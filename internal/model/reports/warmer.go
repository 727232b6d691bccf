package reports

import (
	"context"
	"time"

	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/logger"
)

type clock interface {
	Today() time.Time
}

// Warmer rebuilds today's cached dashboards whenever a change event arrives.
type Warmer struct {
	generator *Generator
	clock     clock
}

func NewWarmer(generator *Generator, clock clock) *Warmer {
	return &Warmer{generator: generator, clock: clock}
}

func (w *Warmer) HandleChange(ctx context.Context, event transaction.ChangeEvent) error {
	today := w.clock.Today()
	for _, p := range CachedPeriods() {
		if _, err := w.generator.Refresh(ctx, Period(p), today); err != nil {
			return err
		}
	}
	logger.Info("dashboards refreshed", zap.String("cause", event.Kind), zap.Time("day", today))
	return nil
}
