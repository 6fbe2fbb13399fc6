package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/mentor-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/mentor-scheduler/internal/db"
	"github.com/BruksfildServices01/mentor-scheduler/internal/logger"
	"github.com/BruksfildServices01/mentor-scheduler/internal/middleware"
	"github.com/BruksfildServices01/mentor-scheduler/internal/routes"
	"github.com/BruksfildServices01/mentor-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()

	log := logger.Init(cfg.Env)
	defer func() { _ = log.Sync() }()

	if !timezone.SetDefault(cfg.Timezone) {
		log.Warn("invalid APP_TIMEZONE, keeping default",
			zap.String("timezone", cfg.Timezone),
			zap.String("default", timezone.Name()),
		)
	}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.Env,
		}); err != nil {
			log.Warn("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db := dbpkg.NewDB(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	shutdown := routes.RegisterRoutes(ctx, r, db, cfg)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	shutdown()
}
