package handler

import (
	"context"
	"net/http"

	"github.com/iho/revsync/internal/adapter/http/dto"
	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/usecase"
)

// WebhookService defines the behavior needed by WebhookHandler.
type WebhookService interface {
	Ingest(ctx context.Context, input usecase.WebhookEventInput) (*usecase.WebhookResult, error)
}

// WebhookHandler accepts platform-pushed ledger events.
type WebhookHandler struct {
	webhookUC WebhookService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhookUC WebhookService) *WebhookHandler {
	return &WebhookHandler{webhookUC: webhookUC}
}

// Ledger ingests one event. A redelivery answers 200, a new event 201.
func (h *WebhookHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	var req dto.WebhookEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	result, err := h.webhookUC.Ingest(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to ingest event", err)
		return
	}

	status := http.StatusOK
	if result.Outcome == domain.UpsertInserted {
		status = http.StatusCreated
	}
	writeJSON(w, status, dto.WebhookFromUseCase(result))
}
