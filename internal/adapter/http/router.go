package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/iho/revsync/internal/adapter/http/handler"
	"github.com/iho/revsync/internal/adapter/http/middleware"
	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	SyncHandler        *handler.SyncHandler
	DiagnosticsHandler *handler.DiagnosticsHandler
	AccountHandler     *handler.AccountHandler
	WebhookHandler     *handler.WebhookHandler
	HealthHandler      *handler.HealthHandler
	MetricsHandler     http.Handler
	IdempotencyStore   usecase.IdempotencyStore
	IdempotencyTTL     time.Duration
	RateLimiter        *middleware.RateLimiter
	// TokenVerifier enables operator JWT auth on the dashboard routes when set.
	TokenVerifier  middleware.TokenVerifier
	CronSecret     string
	WebhookSecret  string
	AllowedOrigins []string
	Logger         zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Metrics)
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.IdempotencyKeyHeader},
			ExposedHeaders:   []string{"X-Request-Id", "X-Idempotency-Replay"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	requireRole := func(min domain.Role) func(http.Handler) http.Handler {
		if cfg.TokenVerifier == nil {
			return func(next http.Handler) http.Handler { return next }
		}
		return middleware.RequireRole(min)
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Scheduler triggers
		r.Group(func(r chi.Router) {
			r.Use(middleware.CronSecret(cfg.CronSecret))
			if cfg.IdempotencyStore != nil {
				r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL, cfg.Logger).Wrap)
			}
			r.Post("/sync/{cadence}", cfg.SyncHandler.Trigger)
			r.Get("/sync/runs/latest", cfg.SyncHandler.Latest)
		})

		// Platform push
		r.With(middleware.WebhookSignature(cfg.WebhookSecret)).
			Post("/webhooks/ledger", cfg.WebhookHandler.Ledger)

		// Operator dashboard
		r.Group(func(r chi.Router) {
			if cfg.TokenVerifier != nil {
				r.Use(middleware.AuthMiddleware(cfg.TokenVerifier))
			}

			r.With(requireRole(domain.RoleViewer)).Get("/diagnostics", cfg.DiagnosticsHandler.Search)

			r.Route("/accounts/{id}", func(r chi.Router) {
				r.With(requireRole(domain.RoleViewer)).Get("/", cfg.AccountHandler.Get)
				r.With(requireRole(domain.RoleViewer)).Get("/diagnostics", cfg.DiagnosticsHandler.Diagnose)
				r.With(requireRole(domain.RoleViewer)).Get("/events", cfg.AccountHandler.ListEvents)
				r.With(requireRole(domain.RoleAdmin)).Post("/repair", cfg.DiagnosticsHandler.Repair)
				r.With(requireRole(domain.RoleAdmin)).Post("/reactivate", cfg.AccountHandler.Reactivate)
			})
		})
	})

	return r
}
