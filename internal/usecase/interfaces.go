package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/iho/revsync/internal/domain"
)

// LedgerEventRepository defines data access for ledger events.
type LedgerEventRepository interface {
	// Upsert stores the event keyed on its content identifier.
	Upsert(ctx context.Context, event *domain.LedgerEvent) (domain.UpsertOutcome, error)
	SumByAccount(ctx context.Context, tx Transaction, accountID string, basis domain.RevenueBasis) (int64, error)
	SumBySourceKind(ctx context.Context, accountID string, basis domain.RevenueBasis) ([]domain.SourceKindTotal, error)
	CountByAccount(ctx context.Context, accountID string) (int64, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.LedgerEvent, error)
}

// CursorStore defines the per-account watermark and lease.
type CursorStore interface {
	// Acquire takes the account's lease for owner, or fails with domain.ErrSyncInProgress
	// while another owner holds a lease younger than staleAfter.
	Acquire(ctx context.Context, accountID, owner string, staleAfter time.Duration) (*domain.SyncCursor, error)
	// Advance moves the watermark. It fails with domain.ErrLeaseLost if owner no longer holds the lease.
	Advance(ctx context.Context, accountID, owner string, position domain.Cursor) error
	Release(ctx context.Context, accountID, owner, lastError string) error
	Get(ctx context.Context, accountID string) (*domain.SyncCursor, error)
}

// AccountRepository defines data access for accounts and their revenue summary.
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Account, error)
	GetByPlatformUserID(ctx context.Context, platformUserID string) (*domain.Account, error)
	// ListSyncable returns active accounts, restricted to ids when ids is non-empty.
	ListSyncable(ctx context.Context, ids []string) ([]*domain.Account, error)
	SearchByName(ctx context.Context, term string, limit int) ([]*domain.Account, error)
	UpdateCachedTotal(ctx context.Context, tx Transaction, id string, total int64, updatedAt time.Time) error
	MarkFailed(ctx context.Context, id, reason string, at time.Time) error
	Reactivate(ctx context.Context, id string, at time.Time) error
}

// ReconciliationLogRepository defines data access for the reconciliation log.
type ReconciliationLogRepository interface {
	Create(ctx context.Context, tx Transaction, record *domain.ReconciliationRecord) error
	ListByAccount(ctx context.Context, accountID string, limit int) ([]*domain.ReconciliationRecord, error)
}

// RollupRepository defines data access for supplementary derived rollups.
type RollupRepository interface {
	// RefreshFanTotals recomputes per-counterparty aggregates from the ledger.
	RefreshFanTotals(ctx context.Context, accountID string) (int, error)
	UpsertCampaignStats(ctx context.Context, stats []domain.CampaignStat) error
	TopFans(ctx context.Context, accountID string, limit int) ([]domain.FanTotal, error)
}

// LedgerFetcher reads ledger pages and related figures from the external platform.
type LedgerFetcher interface {
	FetchPage(ctx context.Context, account *domain.Account, position domain.Cursor) (*domain.LedgerPage, error)
	FetchCampaigns(ctx context.Context, account *domain.Account) ([]domain.CampaignStat, error)
	FetchEarningsTotal(ctx context.Context, account *domain.Account, basis domain.RevenueBasis) (int64, error)
}

// TokenProvider supplies a valid bearer credential for an account.
type TokenProvider interface {
	Token(ctx context.Context, accountID string) (string, error)
}

// RunSummaryStore keeps the latest run summary per cadence.
type RunSummaryStore interface {
	Save(ctx context.Context, run *domain.SyncRunResult) error
	Latest(ctx context.Context, cadence domain.Cadence) (*domain.SyncRunResult, error)
}

// Retrier retries an operation with backoff on retryable storage errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// MetricsRecorder receives engine-level observations.
type MetricsRecorder interface {
	ObserveRun(cadence domain.Cadence, run *domain.SyncRunResult)
	ObserveAccount(cadence domain.Cadence, result *domain.AccountResult)
	ObserveWrite(outcome string, count int)
	ObserveReconcile(mode domain.ReconcileMode, result *domain.ReconcileResult)
}

type noopMetrics struct{}

func (noopMetrics) ObserveRun(domain.Cadence, *domain.SyncRunResult)               {}
func (noopMetrics) ObserveAccount(domain.Cadence, *domain.AccountResult)           {}
func (noopMetrics) ObserveWrite(string, int)                                       {}
func (noopMetrics) ObserveReconcile(domain.ReconcileMode, *domain.ReconcileResult) {}
