package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/revsync/internal/adapter/http/middleware"
	"github.com/iho/revsync/internal/app"
	"github.com/iho/revsync/internal/infrastructure/config"
)

func loadMemoryConfig(t *testing.T, env map[string]string) *config.Config {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", config.StorageDriverMemory)
	for k, v := range env {
		t.Setenv(k, v)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

func newTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	a, err := app.New(context.Background(), cfg, zerolog.Nop(), reg)
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	t.Cleanup(a.Close)
	return buildRouter(a, cfg, middleware.NewRateLimiter(1000, 1000), promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
}

func TestBuildRouter_ServesHealthAndMetrics(t *testing.T) {
	router := newTestRouter(t, loadMemoryConfig(t, nil))

	for _, path := range []string{"/health", "/ready", "/metrics"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected %s to return 200, got %d", path, rec.Code)
		}
	}
}

func TestBuildRouter_TriggersSyncWithCronSecret(t *testing.T) {
	router := newTestRouter(t, loadMemoryConfig(t, map[string]string{"CRON_SECRET": "tick"}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/sync/heartbeat", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without secret, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/heartbeat", nil)
	req.Header.Set(middleware.CronSecretHeader, "tick")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestBuildRouter_AuthEnabledProtectsOperatorRoutes(t *testing.T) {
	router := newTestRouter(t, loadMemoryConfig(t, map[string]string{
		"AUTH_ENABLED": "true",
		"JWT_SECRET":   "secret",
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/A/diagnostics", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestNewServer(t *testing.T) {
	cfg := loadMemoryConfig(t, map[string]string{"HTTP_PORT": "9191", "HTTP_READ_TIMEOUT": "7s"})

	srv := newServer(cfg, http.NotFoundHandler())
	if srv.Addr != ":9191" {
		t.Fatalf("expected :9191, got %s", srv.Addr)
	}
	if srv.ReadTimeout != 7*time.Second {
		t.Fatalf("expected 7s read timeout, got %s", srv.ReadTimeout)
	}
}
