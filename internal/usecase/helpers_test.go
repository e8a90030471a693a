package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/revsync/internal/adapter/repository/memory"
	"github.com/iho/revsync/internal/domain"
	"github.com/iho/revsync/internal/usecase"
	"github.com/iho/revsync/internal/usecase/mocks"
)

var errDiskFull = errors.New("disk full")

// failingEvents fails upserts whose net amount is in failNet while armed.
type failingEvents struct {
	*memory.LedgerEventRepository

	mu      sync.Mutex
	failNet map[int64]bool
}

func newFailingEvents(events *memory.LedgerEventRepository) *failingEvents {
	return &failingEvents{LedgerEventRepository: events, failNet: make(map[int64]bool)}
}

func (f *failingEvents) arm(net int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNet[net] = true
}

func (f *failingEvents) disarm() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNet = make(map[int64]bool)
}

func (f *failingEvents) Upsert(ctx context.Context, event *domain.LedgerEvent) (domain.UpsertOutcome, error) {
	f.mu.Lock()
	fail := f.failNet[event.NetAmount]
	f.mu.Unlock()
	if fail {
		return "", errDiskFull
	}
	return f.LedgerEventRepository.Upsert(ctx, event)
}

type fixture struct {
	accounts *memory.AccountRepository
	events   *memory.LedgerEventRepository
	failing  *failingEvents
	cursors  *memory.CursorStore
	logs     *memory.ReconciliationLogRepository
	rollups  *memory.RollupRepository
	runs     *memory.RunSummaryStore
	fetcher  *mocks.FakeLedgerFetcher

	writer      *usecase.IngestionUseCase
	reconciler  *usecase.ReconciliationUseCase
	sync        *usecase.SyncUseCase
	diagnostics *usecase.DiagnosticsUseCase
	webhooks    *usecase.WebhookUseCase
}

func newFixture(t *testing.T, cfg usecase.SyncConfig) *fixture {
	t.Helper()

	logger := zerolog.Nop()
	f := &fixture{
		accounts: memory.NewAccountRepository(),
		events:   memory.NewLedgerEventRepository(),
		cursors:  memory.NewCursorStore(),
		logs:     memory.NewReconciliationLogRepository(),
		runs:     memory.NewRunSummaryStore(),
		fetcher:  mocks.NewFakeLedgerFetcher(),
	}
	f.failing = newFailingEvents(f.events)
	f.rollups = memory.NewRollupRepository(f.events)

	f.writer = usecase.NewIngestionUseCase(f.failing, mocks.NewFakeRetrier(), logger)
	f.reconciler = usecase.NewReconciliationUseCase(
		memory.NewTxManager(), f.accounts, f.failing, f.logs,
		mocks.NewSequentialIDGenerator("rec"), domain.RevenueBasisNet, logger,
	)
	f.sync = usecase.NewSyncUseCase(
		f.accounts, f.cursors, f.fetcher, f.writer, f.reconciler, f.rollups, f.runs,
		mocks.NewSequentialIDGenerator("run"), cfg, logger,
	)
	f.diagnostics = usecase.NewDiagnosticsUseCase(f.accounts, f.failing, f.cursors, f.logs, f.fetcher, f.reconciler, logger)
	f.webhooks = usecase.NewWebhookUseCase(f.accounts, f.writer, f.reconciler, logger)
	return f
}

func (f *fixture) cachedTotal(t *testing.T, accountID string) int64 {
	t.Helper()
	a, err := f.accounts.GetByID(context.Background(), accountID)
	if err != nil {
		t.Fatalf("get account %s: %v", accountID, err)
	}
	return a.CachedTotal
}

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// fetched builds an event the way the platform client hands it over, without
// an account id or identifier.
func fetched(offset time.Duration, kind domain.SourceKind, gross, net int64, fan string) *domain.LedgerEvent {
	return &domain.LedgerEvent{
		OccurredAt:     baseTime.Add(offset),
		SourceKind:     kind,
		GrossAmount:    gross,
		NetAmount:      net,
		CounterpartyID: fan,
	}
}

func page(hasMore bool, next string, events ...*domain.LedgerEvent) *domain.LedgerPage {
	return &domain.LedgerPage{Events: events, HasMore: hasMore, NextPageToken: next}
}

func accountResult(t *testing.T, run *domain.SyncRunResult, accountID string) domain.AccountResult {
	t.Helper()
	for _, r := range run.PerAccount {
		if r.AccountID == accountID {
			return r
		}
	}
	t.Fatalf("no result for account %s", accountID)
	return domain.AccountResult{}
}
