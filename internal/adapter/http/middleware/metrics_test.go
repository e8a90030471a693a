package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_LabelsByRoute(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/api/v1/accounts/{id}/diagnostics", func(w http.ResponseWriter, r *http.Request) {})
	r.Post("/api/v1/sync/{cadence}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	tests := []struct {
		method string
		path   string
		route  string
		status string
	}{
		{http.MethodGet, "/api/v1/accounts/A1/diagnostics", "/api/v1/accounts/{id}/diagnostics", "200"},
		{http.MethodPost, "/api/v1/sync/heartbeat", "/api/v1/sync/{cadence}", "409"},
		{http.MethodGet, "/api/v1/accounts/A1/unknown", "/api/v1/accounts/:id/unknown", "404"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			httpRequestsTotal.Reset()
			httpRequestsInFlight.Set(0)

			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(tt.method, tt.path, nil))

			counter := httpRequestsTotal.WithLabelValues(tt.method, tt.route, tt.status)
			assert.Equal(t, 1.0, testutil.ToFloat64(counter))
			assert.Equal(t, 0.0, testutil.ToFloat64(httpRequestsInFlight))
		})
	}
}

func TestMetrics_WithoutRouterUsesNormalizedPath(t *testing.T) {
	httpRequestsTotal.Reset()

	Metrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/accounts/A1/events", nil))

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/accounts/:id/events", "418")
	assert.Equal(t, 1.0, testutil.ToFloat64(counter))
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/api/v1/accounts/A1":             "/api/v1/accounts/:id",
		"/api/v1/accounts/A1/events":      "/api/v1/accounts/:id/events",
		"/api/v1/accounts/A1/diagnostics": "/api/v1/accounts/:id/diagnostics",
		"/api/v1/accounts/":               "/api/v1/accounts/",
		"/api/v1/accounts//x":             "/api/v1/accounts//x",
		"/api/v1/sync/heartbeat":          "/api/v1/sync/heartbeat",
		"/health":                         "/health",
	}

	for in, want := range cases {
		assert.Equal(t, want, normalizePath(in), in)
	}
}
