package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"max.ks1230/finance-tracker/internal/clients/cache"
	"max.ks1230/finance-tracker/internal/clients/kafka"
	"max.ks1230/finance-tracker/internal/config"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/calendar"
	"max.ks1230/finance-tracker/internal/model/reports"
	"max.ks1230/finance-tracker/internal/model/storage"
	"max.ks1230/finance-tracker/internal/tracing"
)

func main() {
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	logger.Info("Reporter init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	if len(conf.Kafka().Brokers()) == 0 || len(conf.Memcached().Hosts()) == 0 {
		logger.Fatal("reporter needs both kafka brokers and memcached hosts configured")
	}

	loc, err := conf.App().Location()
	if err != nil {
		logger.Fatal("failed to load timezone", zap.Error(err))
	}

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

	dashboards, err := cache.NewMemcache(conf.Memcached())
	if err != nil {
		logger.Fatal("failed to init memcache", zap.Error(err))
	}

	warmer := reports.NewWarmer(reports.NewGenerator(db, dashboards), calendar.NewClock(loc))

	consumer, err := kafka.NewConsumer(conf.Kafka(), warmer)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}
	defer consumer.Close()

	logger.Info("Reporter init - end")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		reports.NewScheduler(warmer, conf.Memcached()).Run(gctx)
		return nil
	})
	g.Go(func() error {
		return consumer.StartConsuming(gctx)
	})

	if err = g.Wait(); err != nil {
		logger.Error("reporter stopped with error", zap.Error(err))
	}
}
