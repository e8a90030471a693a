package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/infrastructure/postgres/generated"
)

// RollupRepository implements usecase.RollupRepository.
type RollupRepository struct {
	pool    dbPool
	queries *generated.Queries
	now     func() time.Time
}

// NewRollupRepository creates a new RollupRepository.
func NewRollupRepository(pool *pgxpool.Pool) *RollupRepository {
	return newRollupRepository(pool)
}

func newRollupRepository(pool dbPool) *RollupRepository {
	return &RollupRepository{
		pool:    pool,
		queries: generated.New(pool),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// RefreshFanTotals rebuilds the account's per-counterparty totals in one transaction.
func (r *RollupRepository) RefreshFanTotals(ctx context.Context, accountID string) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := r.queries.WithTx(tx)
	if err := q.DeleteFanTotals(ctx, accountID); err != nil {
		return 0, fmt.Errorf("clear fan totals: %w", err)
	}

	n, err := q.InsertFanTotals(ctx, generated.InsertFanTotalsParams{
		RefreshedAt: timeToPgTimestamptz(r.now()),
		AccountID:   accountID,
	})
	if err != nil {
		return 0, fmt.Errorf("insert fan totals: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return int(n), nil
}

// UpsertCampaignStats stores the latest campaign counts.
func (r *RollupRepository) UpsertCampaignStats(ctx context.Context, stats []domain.CampaignStat) error {
	if len(stats) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := r.queries.WithTx(tx)
	for _, s := range stats {
		updatedAt := s.UpdatedAt
		if updatedAt.IsZero() {
			updatedAt = r.now()
		}
		if err := q.UpsertCampaignLink(ctx, generated.UpsertCampaignLinkParams{
			AccountID:   s.AccountID,
			CampaignID:  s.CampaignID,
			Name:        s.Name,
			Clicks:      s.Clicks,
			Subscribers: s.Subscribers,
			UpdatedAt:   timeToPgTimestamptz(updatedAt),
		}); err != nil {
			return fmt.Errorf("upsert campaign %s: %w", s.CampaignID, err)
		}
	}

	return tx.Commit(ctx)
}

// TopFans lists the account's biggest spenders by net total.
func (r *RollupRepository) TopFans(ctx context.Context, accountID string, limit int) ([]domain.FanTotal, error) {
	rows, err := r.queries.TopFanTotals(ctx, generated.TopFanTotalsParams{
		AccountID: accountID,
		Limit:     int32(limit),
	})
	if err != nil {
		return nil, err
	}

	fans := make([]domain.FanTotal, 0, len(rows))
	for _, row := range rows {
		fans = append(fans, domain.FanTotal{
			AccountID:      row.AccountID,
			CounterpartyID: row.CounterpartyID,
			EventCount:     row.EventCount,
			GrossTotal:     row.GrossTotal,
			NetTotal:       row.NetTotal,
			LastEventAt:    row.LastEventAt.Time,
		})
	}

	return fans, nil
}
