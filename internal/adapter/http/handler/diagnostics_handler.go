package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/revsync/internal/adapter/http/dto"
	"github.com/iho/revsync/internal/adapter/http/middleware"
	"github.com/iho/revsync/internal/domain"
)

// DiagnosticsService defines the behavior needed by DiagnosticsHandler.
type DiagnosticsService interface {
	Diagnose(ctx context.Context, accountID string, includeUpstream bool) (*domain.Diagnosis, error)
	DiagnoseByName(ctx context.Context, term string, includeUpstream bool) ([]*domain.Diagnosis, error)
	Repair(ctx context.Context, accountID, actor string) (*domain.ReconcileResult, error)
}

// DiagnosticsHandler serves read-only diagnostics and the explicit repair.
type DiagnosticsHandler struct {
	diagnosticsUC DiagnosticsService
}

// NewDiagnosticsHandler creates a new DiagnosticsHandler.
func NewDiagnosticsHandler(diagnosticsUC DiagnosticsService) *DiagnosticsHandler {
	return &DiagnosticsHandler{diagnosticsUC: diagnosticsUC}
}

// Diagnose reports one account's cached versus ledger totals.
func (h *DiagnosticsHandler) Diagnose(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	d, err := h.diagnosticsUC.Diagnose(r.Context(), id, parseBoolQuery(r, "include_upstream"))
	if err != nil {
		writeDomainError(w, "failed to diagnose account", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DiagnosisFromDomain(d))
}

// Search diagnoses every account whose name matches the name query.
func (h *DiagnosticsHandler) Search(w http.ResponseWriter, r *http.Request) {
	diagnoses, err := h.diagnosticsUC.DiagnoseByName(r.Context(), r.URL.Query().Get("name"), parseBoolQuery(r, "include_upstream"))
	if err != nil {
		writeDomainError(w, "failed to diagnose accounts", err)
		return
	}

	resp := make([]*dto.DiagnosisResponse, len(diagnoses))
	for i, d := range diagnoses {
		resp[i] = dto.DiagnosisFromDomain(d)
	}
	writeJSON(w, http.StatusOK, map[string]any{"diagnoses": resp})
}

// Repair force-reconciles an account, lowering its cached total if needed.
func (h *DiagnosticsHandler) Repair(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	actor := "api"
	if op, ok := middleware.GetOperatorFromContext(r.Context()); ok {
		actor = op.Email
		if actor == "" {
			actor = op.ID
		}
	}

	result, err := h.diagnosticsUC.Repair(r.Context(), id, actor)
	if err != nil {
		writeDomainError(w, "failed to repair account", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconcileFromDomain(result))
}
