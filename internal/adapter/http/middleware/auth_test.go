package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/infrastructure/auth"
)

func TestAuthMiddleware(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Hour)
	token, err := manager.Generate(&domain.Operator{ID: "op-1", Email: "ops@example.com", Role: domain.RoleOperator})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + token, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *domain.Operator
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = GetOperatorFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/diagnostics", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			AuthMiddleware(manager)(next).ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}
			if tt.wantStatus == http.StatusOK && (got == nil || got.ID != "op-1" || got.Role != domain.RoleOperator) {
				t.Fatalf("expected operator in context, got %+v", got)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	manager := auth.NewJWTManager("test-secret", time.Hour)

	tests := []struct {
		name       string
		role       domain.Role
		min        domain.Role
		wantStatus int
	}{
		{name: "admin may repair", role: domain.RoleAdmin, min: domain.RoleAdmin, wantStatus: http.StatusOK},
		{name: "operator may not repair", role: domain.RoleOperator, min: domain.RoleAdmin, wantStatus: http.StatusForbidden},
		{name: "viewer may read", role: domain.RoleViewer, min: domain.RoleViewer, wantStatus: http.StatusOK},
		{name: "viewer may not trigger", role: domain.RoleViewer, min: domain.RoleOperator, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := manager.Generate(&domain.Operator{ID: "op", Role: tt.role})
			if err != nil {
				t.Fatalf("generate: %v", err)
			}

			handler := AuthMiddleware(manager)(RequireRole(tt.min)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))
			req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/A/repair", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}
		})
	}
}

func TestRequireRole_NoOperator(t *testing.T) {
	rr := httptest.NewRecorder()
	RequireRole(domain.RoleViewer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}
