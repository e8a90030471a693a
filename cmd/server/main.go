package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpAdapter "github.com/iho/revsync/internal/adapter/http"
	"github.com/iho/revsync/internal/adapter/http/handler"
	"github.com/iho/revsync/internal/adapter/http/middleware"
	"github.com/iho/revsync/internal/app"
	"github.com/iho/revsync/internal/infrastructure/auth"
	"github.com/iho/revsync/internal/infrastructure/config"
	"github.com/iho/revsync/internal/infrastructure/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Process: "server"})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log, prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize")
	}
	defer a.Close()

	rateLimiter := middleware.NewRateLimiter(cfg.APIRateLimit, cfg.APIRateBurst)
	go rateLimiter.RunCleanup(ctx, time.Minute)

	server := newServer(cfg, buildRouter(a, cfg, rateLimiter, promhttp.Handler()))

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Str("storage", cfg.StorageDriver).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

func buildRouter(a *app.App, cfg *config.Config, rateLimiter *middleware.RateLimiter, metricsHandler http.Handler) http.Handler {
	routerCfg := httpAdapter.RouterConfig{
		SyncHandler:        handler.NewSyncHandler(a.Sync),
		DiagnosticsHandler: handler.NewDiagnosticsHandler(a.Diagnostics),
		AccountHandler:     handler.NewAccountHandler(a.AccountUC),
		WebhookHandler:     handler.NewWebhookHandler(a.Webhooks),
		HealthHandler:      handler.NewHealthHandler(a.Checkers...),
		MetricsHandler:     metricsHandler,
		IdempotencyStore:   a.Idempotency,
		IdempotencyTTL:     cfg.IdempotencyTTL,
		RateLimiter:        rateLimiter,
		CronSecret:         cfg.CronSecret,
		WebhookSecret:      cfg.WebhookSecret,
		AllowedOrigins:     cfg.CORSAllowedOrigins,
		Logger:             a.Logger,
	}
	if cfg.AuthEnabled {
		routerCfg.TokenVerifier = auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	}
	if cfg.CronSecret == "" {
		a.Logger.Warn().Msg("CRON_SECRET is empty; sync triggers are unauthenticated")
	}
	if cfg.WebhookSecret == "" {
		a.Logger.Warn().Msg("WEBHOOK_SECRET is empty; webhook signatures are not checked")
	}

	return httpAdapter.NewRouter(routerCfg)
}

func newServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      h,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
}
