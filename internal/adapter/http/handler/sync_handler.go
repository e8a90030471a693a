package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/revsync/internal/adapter/http/dto"
	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/usecase"
)

// SyncService defines the behavior needed by SyncHandler.
type SyncService interface {
	Run(ctx context.Context, opts usecase.RunOptions) (*domain.SyncRunResult, error)
	LatestRun(ctx context.Context, cadence domain.Cadence) (*domain.SyncRunResult, error)
}

// SyncHandler serves the scheduler-facing run triggers.
type SyncHandler struct {
	syncUC SyncService
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(syncUC SyncService) *SyncHandler {
	return &SyncHandler{syncUC: syncUC}
}

// Trigger runs one sync of the cadence in the path and returns its summary.
// Per-account failures are part of a 200 response.
func (h *SyncHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	cadence, err := domain.ParseCadence(chi.URLParam(r, "cadence"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cadence", err.Error())
		return
	}

	var req dto.SyncRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	run, err := h.syncUC.Run(r.Context(), req.ToRunOptions(cadence))
	if err != nil {
		writeDomainError(w, "sync run failed", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.RunFromDomain(run))
}

// Latest returns the stored summary of the most recent run of a cadence.
func (h *SyncHandler) Latest(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("cadence")
	if raw == "" {
		raw = string(domain.CadenceHeartbeat)
	}
	cadence, err := domain.ParseCadence(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cadence", err.Error())
		return
	}

	run, err := h.syncUC.LatestRun(r.Context(), cadence)
	if err != nil {
		writeDomainError(w, "no run summary", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.RunFromDomain(run))
}
