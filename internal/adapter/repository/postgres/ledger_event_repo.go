package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/infrastructure/postgres/generated"
	"github.com/iho/revsync/internal/usecase"
)

// LedgerEventRepository implements usecase.LedgerEventRepository.
type LedgerEventRepository struct {
	queries *generated.Queries
}

// NewLedgerEventRepository creates a new LedgerEventRepository.
func NewLedgerEventRepository(pool *pgxpool.Pool) *LedgerEventRepository {
	return newLedgerEventRepository(pool)
}

func newLedgerEventRepository(db generated.DBTX) *LedgerEventRepository {
	return &LedgerEventRepository{queries: generated.New(db)}
}

// Upsert inserts the event or refreshes its reference and description.
// The statement returns no row when the stored event already matches.
func (r *LedgerEventRepository) Upsert(ctx context.Context, event *domain.LedgerEvent) (domain.UpsertOutcome, error) {
	inserted, err := r.queries.UpsertLedgerEvent(ctx, generated.UpsertLedgerEventParams{
		ID:             event.ID,
		AccountID:      event.AccountID,
		OccurredAt:     timeToPgTimestamptz(event.OccurredAt),
		SourceKind:     string(event.SourceKind),
		CounterpartyID: event.CounterpartyID,
		GrossAmount:    event.GrossAmount,
		NetAmount:      event.NetAmount,
		UpstreamRef:    stringPtrToPgText(event.UpstreamRef),
		Description:    event.Description,
		IngestedAt:     timeToPgTimestamptz(event.IngestedAt),
		UpdatedAt:      timeToPgTimestamptz(event.UpdatedAt),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.UpsertUnchanged, nil
	}
	if err != nil {
		return "", err
	}

	if inserted {
		return domain.UpsertInserted, nil
	}
	return domain.UpsertUpdated, nil
}

// SumByAccount sums the basis amount over the account's events, inside tx when given.
func (r *LedgerEventRepository) SumByAccount(ctx context.Context, tx usecase.Transaction, accountID string, basis domain.RevenueBasis) (int64, error) {
	q := queriesFor(r.queries, tx)
	if basis == domain.RevenueBasisGross {
		return q.SumLedgerGross(ctx, accountID)
	}
	return q.SumLedgerNet(ctx, accountID)
}

// SumBySourceKind groups the account's basis total by source kind.
func (r *LedgerEventRepository) SumBySourceKind(ctx context.Context, accountID string, basis domain.RevenueBasis) ([]domain.SourceKindTotal, error) {
	rows, err := r.queries.SumLedgerBySourceKind(ctx, accountID)
	if err != nil {
		return nil, err
	}

	totals := make([]domain.SourceKindTotal, 0, len(rows))
	for _, row := range rows {
		total := row.NetTotal
		if basis == domain.RevenueBasisGross {
			total = row.GrossTotal
		}
		totals = append(totals, domain.SourceKindTotal{
			SourceKind: domain.SourceKind(row.SourceKind),
			Total:      total,
			EventCount: row.EventCount,
		})
	}

	return totals, nil
}

// CountByAccount counts the account's stored events.
func (r *LedgerEventRepository) CountByAccount(ctx context.Context, accountID string) (int64, error) {
	return r.queries.CountLedgerEvents(ctx, accountID)
}

// ListByAccount lists the account's events, newest first.
func (r *LedgerEventRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.LedgerEvent, error) {
	rows, err := r.queries.ListLedgerEventsByAccount(ctx, generated.ListLedgerEventsByAccountParams{
		AccountID: accountID,
		Limit:     int32(limit),
		Offset:    int32(offset),
	})
	if err != nil {
		return nil, err
	}

	events := make([]*domain.LedgerEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, rowToLedgerEvent(row))
	}

	return events, nil
}

func rowToLedgerEvent(row generated.LedgerEvent) *domain.LedgerEvent {
	return &domain.LedgerEvent{
		ID:             row.ID,
		AccountID:      row.AccountID,
		OccurredAt:     row.OccurredAt.Time.UTC(),
		SourceKind:     domain.SourceKind(row.SourceKind),
		CounterpartyID: row.CounterpartyID,
		GrossAmount:    row.GrossAmount,
		NetAmount:      row.NetAmount,
		UpstreamRef:    pgTextToPtr(row.UpstreamRef),
		Description:    row.Description,
		IngestedAt:     row.IngestedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
