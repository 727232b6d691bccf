package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"max.ks1230/finance-tracker/internal/clients/cache"
	"max.ks1230/finance-tracker/internal/clients/kafka"
	"max.ks1230/finance-tracker/internal/config"
	"max.ks1230/finance-tracker/internal/entity/transaction"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/auth"
	"max.ks1230/finance-tracker/internal/model/bootstrap"
	"max.ks1230/finance-tracker/internal/model/calendar"
	"max.ks1230/finance-tracker/internal/model/categories"
	"max.ks1230/finance-tracker/internal/model/reports"
	"max.ks1230/finance-tracker/internal/model/storage"
	"max.ks1230/finance-tracker/internal/model/transactions"
	"max.ks1230/finance-tracker/internal/server"
	"max.ks1230/finance-tracker/internal/tracing"
)

type dashboardCache interface {
	Generation() (uint64, error)
	CacheDashboard(generation uint64, period string, day time.Time, payload []byte) error
	GetDashboard(generation uint64, period string, day time.Time) ([]byte, bool, error)
	InvalidateDashboards() error
}

type eventPublisher interface {
	Publish(ctx context.Context, event transaction.ChangeEvent) error
}

func main() {
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	logger.Info("Tracker init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	loc, err := conf.App().Location()
	if err != nil {
		logger.Fatal("failed to load timezone", zap.Error(err))
	}
	clock := calendar.NewClock(loc)

	tracer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer func() {
		if err := tracer.Close(); err != nil {
			logger.Error("failed to close tracer", zap.Error(err))
		}
	}()

	db, err := storage.New(conf.Storage().Driver(), conf.Postgres(), conf.SQLite())
	if err != nil {
		logger.Fatal("failed to init storage", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close storage", zap.Error(err))
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err = bootstrap.Run(ctx, conf.App(), db); err != nil {
		logger.Fatal("failed to bootstrap storage", zap.Error(err))
	}

	gate, err := auth.New(conf.Auth(), db)
	if err != nil {
		logger.Fatal("failed to init auth", zap.Error(err))
	}

	var dashboards dashboardCache = cache.Noop{}
	if len(conf.Memcached().Hosts()) > 0 {
		if dashboards, err = cache.NewMemcache(conf.Memcached()); err != nil {
			logger.Fatal("failed to init memcache", zap.Error(err))
		}
	}

	var events eventPublisher = kafka.NoopPublisher{}
	if len(conf.Kafka().Brokers()) > 0 {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer", zap.Error(err))
		}
		defer producer.Close()
		events = producer
	}

	gin.SetMode(conf.HTTP().GinMode())
	api := server.New(conf.Auth(), server.Services{
		Auth:         gate,
		Categories:   categories.NewService(db, events, clock),
		Transactions: transactions.NewService(db, events, dashboards, clock),
		Dashboard:    reports.NewGenerator(db, dashboards),
		Clock:        clock,
	})

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())

	logger.Info("Tracker init - end")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Serve(gctx, &http.Server{Addr: conf.HTTP().Addr(), Handler: api.Handler()})
	})
	g.Go(func() error {
		return server.Serve(gctx, &http.Server{Addr: conf.HTTP().MetricsListenAddr(), Handler: metricsMux})
	})

	if err = g.Wait(); err != nil {
		logger.Error("tracker stopped with error", zap.Error(err))
	}
}
