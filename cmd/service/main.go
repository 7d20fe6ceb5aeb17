package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/family-web/internal/client/familyapi"
	"github.com/s21platform/family-web/internal/client/socket"
	"github.com/s21platform/family-web/internal/config"
	api "github.com/s21platform/family-web/internal/generated"
	"github.com/s21platform/family-web/internal/infra"
	"github.com/s21platform/family-web/internal/metrics"
	"github.com/s21platform/family-web/internal/pkg/jwt"
	"github.com/s21platform/family-web/internal/pkg/validator"
	db "github.com/s21platform/family-web/internal/repository/postgres"
	"github.com/s21platform/family-web/internal/repository/redis"
	"github.com/s21platform/family-web/internal/rest"
	"github.com/s21platform/family-web/internal/service"
	"github.com/s21platform/family-web/internal/tree"
)

const sessionSweepInterval = time.Hour

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	redisRepo := redis.New(cfg)
	defer redisRepo.Close()

	familyClient := familyapi.New(cfg)
	defer familyClient.Close()

	projector := tree.NewProjector(cfg.Tree.CacheTTL, cfg.Tree.CacheCapacity)
	defer projector.Close()

	m := metrics.New(cfg.Service.Name)
	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Session.Secret, cfg.Session.TTL)

	familyService := service.New(familyClient, vldtr, logger,
		service.WithProjection(redisRepo, projector),
		service.WithMetrics(m),
		service.WithSignInTimeout(cfg.FamilyAPI.SignInTimeout),
		service.WithMaxDepth(cfg.Tree.MaxDepth),
	)

	healthServer := health.NewServer()
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(cfg.Service.Name, healthpb.HealthCheckResponse_SERVING)

	handler := rest.New(familyService, dbRepo, jwtGenerator, vldtr, socket.NewDialer(cfg, logger), m, cfg.Session)
	router := chi.NewRouter()

	router.Use(m.Middleware)
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(infra.SessionHTTP(dbRepo, jwtGenerator, cfg.Session.CookieName))

	router.Handle("/metrics", m.Handler())
	api.HandlerFromMux(handler, router)
	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	mux := cmux.New(listener)

	grpcListener := mux.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpListener := mux.Match(cmux.HTTP1Fast())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) && !errors.Is(err, cmux.ErrListenerClosed) {
			return fmt.Errorf("gRPC server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, cmux.ErrListenerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := mux.Serve(); err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		sweepSessions(gctx, dbRepo, logger)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		healthServer.Shutdown()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
		grpcServer.GracefulStop()
		mux.Close()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}

func sweepSessions(ctx context.Context, repo *db.Repository, logger logger_lib.LoggerInterface) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed, err := repo.DeleteExpiredSessions(ctx, now)
			if err != nil {
				logger.Error(fmt.Sprintf("failed to sweep sessions: %v", err))
				continue
			}
			if removed > 0 {
				logger.Info(fmt.Sprintf("removed %d expired sessions", removed))
			}
		}
	}
}
