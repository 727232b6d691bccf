package reports

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"

	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/logger"
)

// KindScheduled marks refreshes triggered by the timer rather than a change.
const KindScheduled = "dashboard.scheduled"

type schedulerConfig interface {
	WarmInterval() time.Duration
}

type changeHandler interface {
	HandleChange(ctx context.Context, event transaction.ChangeEvent) error
}

// Scheduler periodically rebuilds cached dashboards so that a new day
// starts with warm entries even when nothing was edited.
type Scheduler struct {
	handler  changeHandler
	interval time.Duration
	now      func() time.Time
}

func NewScheduler(handler changeHandler, config schedulerConfig) *Scheduler {
	return &Scheduler{
		handler:  handler,
		interval: config.WarmInterval(),
		now:      time.Now,
	}
}

func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	firstTick := make(chan struct{}, 1)
	firstTick <- struct{}{}

	logger.Info("Start warming dashboards", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop warming dashboards")
			return
		// fake first tick to warm immediately
		case <-firstTick:
			s.warmOnce(ctx)
		case <-ticker.C:
			s.warmOnce(ctx)
		}
	}
}

func (s *Scheduler) warmOnce(ctx context.Context) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "warmDashboards")
	defer span.Finish()

	err := s.handler.HandleChange(ctx, transaction.ChangeEvent{Kind: KindScheduled, OccurredAt: s.now()})
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("failed to warm dashboards", zap.Error(err))
	}
}
