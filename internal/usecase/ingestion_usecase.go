package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/revsync/internal/domain"
)

// IngestionUseCase is the idempotent ledger writer. Every producer (scheduled
// fetches, webhooks, manual backfills) stores events through it so that the
// content identifier is the only key ever used.
type IngestionUseCase struct {
	eventRepo LedgerEventRepository
	retrier   Retrier
	metrics   MetricsRecorder
	logger    zerolog.Logger
	now       func() time.Time
}

// NewIngestionUseCase creates a new IngestionUseCase.
func NewIngestionUseCase(eventRepo LedgerEventRepository, retrier Retrier, logger zerolog.Logger) *IngestionUseCase {
	return &IngestionUseCase{
		eventRepo: eventRepo,
		retrier:   retrier,
		metrics:   noopMetrics{},
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithMetrics sets the metrics recorder.
func (uc *IngestionUseCase) WithMetrics(m MetricsRecorder) *IngestionUseCase {
	if m != nil {
		uc.metrics = m
	}
	return uc
}

// EventFailure describes one event that could not be stored.
type EventFailure struct {
	Index   int
	EventID string
	Err     error
}

// WriteResult reports a batch write.
type WriteResult struct {
	Inserted  int
	Updated   int
	Unchanged int
	Failed    int
	Failures  []EventFailure
}

// Err returns a domain.ErrWriteFailure summary when any event failed.
func (r WriteResult) Err() error {
	if r.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d events: %v", domain.ErrWriteFailure, r.Failed, r.Total(), r.Failures[0].Err)
}

// Total is the number of events in the batch.
func (r WriteResult) Total() int {
	return r.Inserted + r.Updated + r.Unchanged + r.Failed
}

// Write upserts every event keyed on its content identifier. A failure on one
// event never aborts the batch; successes are kept and failures are reported.
// Writing the same batch twice leaves the ledger unchanged the second time.
func (uc *IngestionUseCase) Write(ctx context.Context, events []*domain.LedgerEvent) WriteResult {
	var result WriteResult

	for i, event := range events {
		outcome, err := uc.writeOne(ctx, event)
		if err != nil {
			result.Failed++
			result.Failures = append(result.Failures, EventFailure{Index: i, EventID: event.ID, Err: err})
			uc.logger.Warn().
				Err(err).
				Str("account_id", event.AccountID).
				Str("event_id", event.ID).
				Msg("ledger event write failed")
			continue
		}

		switch outcome {
		case domain.UpsertInserted:
			result.Inserted++
		case domain.UpsertUpdated:
			result.Updated++
		default:
			result.Unchanged++
		}
	}

	uc.metrics.ObserveWrite(string(domain.UpsertInserted), result.Inserted)
	uc.metrics.ObserveWrite(string(domain.UpsertUpdated), result.Updated)
	uc.metrics.ObserveWrite(string(domain.UpsertUnchanged), result.Unchanged)
	uc.metrics.ObserveWrite("failed", result.Failed)

	return result
}

func (uc *IngestionUseCase) writeOne(ctx context.Context, event *domain.LedgerEvent) (domain.UpsertOutcome, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	event.Normalize()
	if err := event.Validate(); err != nil {
		return "", err
	}

	now := uc.now()
	if event.IngestedAt.IsZero() {
		event.IngestedAt = now
	}
	event.UpdatedAt = now

	var outcome domain.UpsertOutcome
	err := uc.retrier.Retry(ctx, func() error {
		var err error
		outcome, err = uc.eventRepo.Upsert(ctx, event)
		return err
	})
	if err != nil {
		return "", err
	}

	return outcome, nil
}
