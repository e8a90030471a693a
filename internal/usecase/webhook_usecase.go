package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/revsync/internal/domain"
)

// WebhookUseCase ingests single real-time events pushed by the platform. It
// shares the ledger writer with scheduled syncs, so an event seen here and
// later in a batch fetch is stored once.
type WebhookUseCase struct {
	accountRepo AccountRepository
	writer      *IngestionUseCase
	reconciler  *ReconciliationUseCase
	logger      zerolog.Logger
}

// NewWebhookUseCase creates a new WebhookUseCase.
func NewWebhookUseCase(accountRepo AccountRepository, writer *IngestionUseCase, reconciler *ReconciliationUseCase, logger zerolog.Logger) *WebhookUseCase {
	return &WebhookUseCase{
		accountRepo: accountRepo,
		writer:      writer,
		reconciler:  reconciler,
		logger:      logger,
	}
}

// WebhookEventInput is a platform-pushed ledger event. Amounts are minor units.
type WebhookEventInput struct {
	PlatformUserID string
	OccurredAt     time.Time
	Category       string
	GrossAmount    int64
	NetAmount      int64
	CounterpartyID string
	UpstreamRef    string
	Description    string
}

// WebhookResult reports what an ingested webhook did.
type WebhookResult struct {
	AccountID      string
	EventID        string
	Outcome        domain.UpsertOutcome
	Reconciliation *domain.ReconcileResult
}

// Ingest writes the event and reconciles the owning account in normal mode.
func (uc *WebhookUseCase) Ingest(ctx context.Context, input WebhookEventInput) (*WebhookResult, error) {
	account, err := uc.accountRepo.GetByPlatformUserID(ctx, input.PlatformUserID)
	if err != nil {
		return nil, err
	}

	event := &domain.LedgerEvent{
		AccountID:      account.ID,
		OccurredAt:     input.OccurredAt,
		SourceKind:     domain.ParseSourceKind(input.Category),
		CounterpartyID: input.CounterpartyID,
		GrossAmount:    input.GrossAmount,
		NetAmount:      input.NetAmount,
		Description:    input.Description,
	}
	if input.UpstreamRef != "" {
		ref := input.UpstreamRef
		event.UpstreamRef = &ref
	}

	written := uc.writer.Write(ctx, []*domain.LedgerEvent{event})
	if len(written.Failures) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrWriteFailure, written.Failures[0].Err)
	}

	result := &WebhookResult{
		AccountID: account.ID,
		EventID:   event.ID,
		Outcome:   domain.UpsertUnchanged,
	}
	switch {
	case written.Inserted > 0:
		result.Outcome = domain.UpsertInserted
	case written.Updated > 0:
		result.Outcome = domain.UpsertUpdated
	}

	if result.Outcome != domain.UpsertUnchanged {
		rec, err := uc.reconciler.Reconcile(ctx, account.ID, domain.ReconcileNormal)
		if err != nil {
			uc.logger.Error().Err(err).Str("account_id", account.ID).Msg("reconciliation after webhook failed")
		} else {
			result.Reconciliation = rec
		}
	}

	uc.logger.Info().
		Str("account_id", account.ID).
		Str("event_id", event.ID).
		Str("outcome", string(result.Outcome)).
		Msg("webhook event ingested")

	return result, nil
}
