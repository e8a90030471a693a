package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/revsync/internal/adapter/http/handler"
	apimiddleware "github.com/iho/revsync/internal/adapter/http/middleware"
	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/infrastructure/auth"
	"github.com/iho/revsync/internal/usecase"
)

// serve runs one request through h, letting setup add headers first.
func serve(h http.Handler, method, target, body string, setup ...func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for _, fn := range setup {
		fn(req)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func fromAddr(addr string) func(*http.Request) {
	return func(r *http.Request) { r.RemoteAddr = addr }
}

func TestNewRouter_ProbesAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	for _, path := range []string{"/health", "/ready", "/metrics"} {
		if rec := serve(router, http.MethodGet, path, ""); rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	}
}

func TestNewRouter_RateLimitsAPIClients(t *testing.T) {
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = apimiddleware.NewRateLimiter(1, 1)
	}))

	if rec := serve(router, http.MethodGet, "/api/v1/accounts/A", "", fromAddr("1.2.3.4:1234")); rec.Code != http.StatusOK {
		t.Fatalf("first request = %d, want 200", rec.Code)
	}
	if rec := serve(router, http.MethodGet, "/api/v1/accounts/A", "", fromAddr("1.2.3.4:1234")); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request = %d, want 429", rec.Code)
	}
	if rec := serve(router, http.MethodGet, "/health", "", fromAddr("1.2.3.4:1234")); rec.Code != http.StatusOK {
		t.Fatalf("probe = %d, want 200 regardless of budget", rec.Code)
	}
}

func TestNewRouter_ManualSyncUsesIdempotencyStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	rec := serve(router, http.MethodPost, "/api/v1/sync/manual", `{"account_ids":["A"]}`, func(r *http.Request) {
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("manual sync = %d, want 200", rec.Code)
	}
	if !store.checkCalled {
		t.Fatal("idempotency store was not consulted")
	}
}

func TestNewRouter_CronSecretGuardsSyncRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.CronSecret = "tick"
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/heartbeat", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without secret, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/sync/heartbeat", nil)
	req.Header.Set("Authorization", "Bearer tick")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with secret, got %d", rec.Code)
	}
}

func TestNewRouter_WebhookRequiresSignature(t *testing.T) {
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.WebhookSecret = "hook"
	}))
	body := `{"platform_user_id":"p-1","occurred_at":"2024-03-01T12:30:00Z","category":"tip","gross":"1.00","net":"1.00"}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/ledger", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without signature, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/ledger", strings.NewReader(body))
	req.Header.Set(apimiddleware.SignatureHeader, apimiddleware.Sign("hook", []byte(body)))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 with signature, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewRouter_OperatorAuth(t *testing.T) {
	manager := auth.NewJWTManager("jwt-secret", time.Hour)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.TokenVerifier = manager
	}))

	viewer, err := manager.Generate(&domain.Operator{ID: "v", Role: domain.RoleViewer})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	admin, err := manager.Generate(&domain.Operator{ID: "a", Email: "admin@example.com", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{name: "anonymous read", method: http.MethodGet, path: "/api/v1/accounts/A/diagnostics", wantStatus: http.StatusUnauthorized},
		{name: "viewer read", method: http.MethodGet, path: "/api/v1/accounts/A/diagnostics", token: viewer, wantStatus: http.StatusOK},
		{name: "viewer account", method: http.MethodGet, path: "/api/v1/accounts/A", token: viewer, wantStatus: http.StatusOK},
		{name: "viewer repair", method: http.MethodPost, path: "/api/v1/accounts/A/repair", token: viewer, wantStatus: http.StatusForbidden},
		{name: "admin repair", method: http.MethodPost, path: "/api/v1/accounts/A/repair", token: admin, wantStatus: http.StatusOK},
		{name: "admin reactivate", method: http.MethodPost, path: "/api/v1/accounts/A/reactivate", token: admin, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.AllowedOrigins = []string{"https://dashboard.example.com"}
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/diagnostics?name=luna", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://dashboard.example.com" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"GET /metrics",
		"POST /api/v1/sync/{cadence}",
		"GET /api/v1/sync/runs/latest",
		"POST /api/v1/webhooks/ledger",
		"GET /api/v1/diagnostics",
		"GET /api/v1/accounts/{id}/diagnostics",
		"GET /api/v1/accounts/{id}/events",
		"POST /api/v1/accounts/{id}/repair",
		"POST /api/v1/accounts/{id}/reactivate",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		SyncHandler:        handler.NewSyncHandler(stubSyncService{}),
		DiagnosticsHandler: handler.NewDiagnosticsHandler(stubDiagnosticsService{}),
		AccountHandler:     handler.NewAccountHandler(stubAccountService{}),
		WebhookHandler:     handler.NewWebhookHandler(stubWebhookService{}),
		HealthHandler:      handler.NewHealthHandler(),
		MetricsHandler:     promhttp.Handler(),
		Logger:             zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubSyncService struct{}

func (stubSyncService) Run(ctx context.Context, opts usecase.RunOptions) (*domain.SyncRunResult, error) {
	return &domain.SyncRunResult{RunID: "run", Cadence: opts.Cadence}, nil
}

func (stubSyncService) LatestRun(ctx context.Context, cadence domain.Cadence) (*domain.SyncRunResult, error) {
	return nil, domain.ErrRunNotFound
}

type stubDiagnosticsService struct{}

func (stubDiagnosticsService) Diagnose(ctx context.Context, id string, includeUpstream bool) (*domain.Diagnosis, error) {
	return &domain.Diagnosis{AccountID: id}, nil
}

func (stubDiagnosticsService) DiagnoseByName(ctx context.Context, term string, includeUpstream bool) ([]*domain.Diagnosis, error) {
	return nil, nil
}

func (stubDiagnosticsService) Repair(ctx context.Context, id, actor string) (*domain.ReconcileResult, error) {
	return &domain.ReconcileResult{AccountID: id, Mode: domain.ReconcileForce}, nil
}

type stubAccountService struct{}

func (stubAccountService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return &domain.Account{ID: id}, nil
}

func (stubAccountService) ListEvents(ctx context.Context, input usecase.ListEventsInput) ([]*domain.LedgerEvent, error) {
	return []*domain.LedgerEvent{}, nil
}

func (stubAccountService) Reactivate(ctx context.Context, id string) (*domain.Account, error) {
	return &domain.Account{ID: id, Status: domain.AccountStatusActive}, nil
}

type stubWebhookService struct{}

func (stubWebhookService) Ingest(ctx context.Context, input usecase.WebhookEventInput) (*usecase.WebhookResult, error) {
	return &usecase.WebhookResult{AccountID: "A", EventID: "evt", Outcome: domain.UpsertInserted}, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
