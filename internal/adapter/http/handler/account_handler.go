package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/revsync/internal/adapter/http/dto"
	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/usecase"
)

const defaultEventsLimit = 50

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	ListEvents(ctx context.Context, input usecase.ListEventsInput) ([]*domain.LedgerEvent, error)
	Reactivate(ctx context.Context, id string) (*domain.Account, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	accountUC AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// Get returns an account with its cached revenue summary.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	account, err := h.accountUC.GetAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "failed to get account", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// ListEvents pages through an account's ledger, newest first.
func (h *AccountHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	input := usecase.ListEventsInput{
		AccountID: chi.URLParam(r, "id"),
		Limit:     parseIntQuery(r, "limit", defaultEventsLimit),
		Offset:    parseIntQuery(r, "offset", 0),
	}

	events, err := h.accountUC.ListEvents(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to list events", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListEventsResponse{
		Events: dto.EventsFromDomain(events),
		Limit:  input.Limit,
		Offset: input.Offset,
	})
}

// Reactivate returns a failed account to scheduled syncs.
func (h *AccountHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	account, err := h.accountUC.Reactivate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "failed to reactivate account", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}
