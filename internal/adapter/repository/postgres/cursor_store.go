package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/infrastructure/postgres/generated"
)

// CursorStore implements usecase.CursorStore on the sync_cursors table.
// The lease is a conditional upsert, so two workers cannot both hold it.
type CursorStore struct {
	queries *generated.Queries
	now     func() time.Time
}

// NewCursorStore creates a new CursorStore.
func NewCursorStore(pool *pgxpool.Pool) *CursorStore {
	return newCursorStore(pool)
}

func newCursorStore(db generated.DBTX) *CursorStore {
	return &CursorStore{
		queries: generated.New(db),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Acquire takes the lease for owner, creating the cursor on first sync.
func (s *CursorStore) Acquire(ctx context.Context, accountID, owner string, staleAfter time.Duration) (*domain.SyncCursor, error) {
	now := s.now()
	row, err := s.queries.AcquireSyncLease(ctx, generated.AcquireSyncLeaseParams{
		AccountID:   accountID,
		Owner:       owner,
		Now:         timeToPgTimestamptz(now),
		StaleBefore: timeToPgTimestamptz(now.Add(-staleAfter)),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSyncInProgress
	}
	if err != nil {
		return nil, err
	}

	return rowToSyncCursor(row), nil
}

// Advance moves the watermark while owner holds the lease.
func (s *CursorStore) Advance(ctx context.Context, accountID, owner string, position domain.Cursor) error {
	n, err := s.queries.AdvanceSyncCursor(ctx, generated.AdvanceSyncCursorParams{
		LastSyncedAt: optionalPgTimestamptz(position.Since),
		PageToken:    position.PageToken,
		UpdatedAt:    timeToPgTimestamptz(s.now()),
		AccountID:    accountID,
		Owner:        owner,
	})
	return leaseAffected(n, err)
}

// Release clears the lease and records the outcome of the attempt.
func (s *CursorStore) Release(ctx context.Context, accountID, owner, lastError string) error {
	n, err := s.queries.ReleaseSyncLease(ctx, generated.ReleaseSyncLeaseParams{
		LastError: lastError,
		UpdatedAt: timeToPgTimestamptz(s.now()),
		AccountID: accountID,
		Owner:     owner,
	})
	return leaseAffected(n, err)
}

// Get returns the account's cursor.
func (s *CursorStore) Get(ctx context.Context, accountID string) (*domain.SyncCursor, error) {
	row, err := s.queries.GetSyncCursor(ctx, accountID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCursorNotFound
	}
	if err != nil {
		return nil, err
	}

	return rowToSyncCursor(row), nil
}

func leaseAffected(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrLeaseLost
	}
	return nil
}

func rowToSyncCursor(row generated.SyncCursor) *domain.SyncCursor {
	return &domain.SyncCursor{
		AccountID:       row.AccountID,
		LastSyncedAt:    pgTimestamptzToPtr(row.LastSyncedAt),
		PageToken:       row.PageToken,
		SyncInProgress:  row.SyncInProgress,
		LeaseOwner:      row.LeaseOwner,
		LeaseAcquiredAt: pgTimestamptzToPtr(row.LeaseAcquiredAt),
		LastError:       row.LastError,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}
