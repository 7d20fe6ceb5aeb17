package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/family-web/internal/config"
	"github.com/s21platform/family-web/internal/databus"
	"github.com/s21platform/family-web/internal/databus/member"
	"github.com/s21platform/family-web/internal/metrics"
	"github.com/s21platform/family-web/internal/repository/redis"
)

const memberVersionConsumerGroupID = "family-web-member-version"

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	redisRepo := redis.New(cfg)
	defer redisRepo.Close()

	m := metrics.New(cfg.Service.Name + "-member-worker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = context.WithValue(ctx, config.KeyMetrics, m)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	reader := databus.NewReader(cfg, memberVersionConsumerGroupID)
	defer reader.Close()

	consumer := databus.NewConsumer(reader, cfg.Kafka.MemberTopic, logger, m)
	memberHandler := member.New(redisRepo)

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: mux,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return consumer.Run(gctx, memberHandler.Handler)
	})

	g.Go(func() error {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return metricsServer.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("worker error: %v", err))
	}
}
