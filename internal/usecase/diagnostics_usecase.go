package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/revsync/internal/domain"
)

// DiagnosticsUseCase compares cached revenue against the ledger for operators.
// Diagnose never writes; Repair is the only mutating entry point.
type DiagnosticsUseCase struct {
	accountRepo AccountRepository
	eventRepo   LedgerEventRepository
	cursors     CursorStore
	logRepo     ReconciliationLogRepository
	fetcher     LedgerFetcher
	reconciler  *ReconciliationUseCase
	logger      zerolog.Logger
	now         func() time.Time
}

// NewDiagnosticsUseCase creates a new DiagnosticsUseCase. fetcher may be nil,
// in which case upstream comparison is reported as unavailable.
func NewDiagnosticsUseCase(
	accountRepo AccountRepository,
	eventRepo LedgerEventRepository,
	cursors CursorStore,
	logRepo ReconciliationLogRepository,
	fetcher LedgerFetcher,
	reconciler *ReconciliationUseCase,
	logger zerolog.Logger,
) *DiagnosticsUseCase {
	return &DiagnosticsUseCase{
		accountRepo: accountRepo,
		eventRepo:   eventRepo,
		cursors:     cursors,
		logRepo:     logRepo,
		fetcher:     fetcher,
		reconciler:  reconciler,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Diagnose reports cached total, ledger total, their discrepancy and a
// per-source-kind breakdown. Only infrastructure failures are errors.
func (uc *DiagnosticsUseCase) Diagnose(ctx context.Context, accountID string, includeUpstream bool) (*domain.Diagnosis, error) {
	if err := domain.ValidateID(accountID); err != nil {
		return nil, err
	}
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return uc.diagnose(ctx, account, includeUpstream)
}

// DiagnoseByName diagnoses every account whose name matches term.
func (uc *DiagnosticsUseCase) DiagnoseByName(ctx context.Context, term string, includeUpstream bool) ([]*domain.Diagnosis, error) {
	if err := domain.ValidateSearchTerm(term); err != nil {
		return nil, err
	}

	accounts, err := uc.accountRepo.SearchByName(ctx, term, MaxDiagnosesPerSearch)
	if err != nil {
		return nil, err
	}

	diagnoses := make([]*domain.Diagnosis, 0, len(accounts))
	for _, account := range accounts {
		d, err := uc.diagnose(ctx, account, includeUpstream)
		if err != nil {
			return nil, fmt.Errorf("diagnose account %s: %w", account.ID, err)
		}
		diagnoses = append(diagnoses, d)
	}

	return diagnoses, nil
}

// Repair forces the cached total to the ledger sum, in either direction.
func (uc *DiagnosticsUseCase) Repair(ctx context.Context, accountID, actor string) (*domain.ReconcileResult, error) {
	if err := domain.ValidateID(accountID); err != nil {
		return nil, err
	}
	result, err := uc.reconciler.Reconcile(ctx, accountID, domain.ReconcileForce)
	if err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("account_id", accountID).
		Str("actor", actor).
		Int64("old_total", result.OldTotal).
		Int64("new_total", result.NewTotal).
		Bool("changed", result.Changed).
		Msg("forced reconciliation")

	return result, nil
}

func (uc *DiagnosticsUseCase) diagnose(ctx context.Context, account *domain.Account, includeUpstream bool) (*domain.Diagnosis, error) {
	basis := uc.reconciler.Basis()

	ledgerTotal, err := uc.eventRepo.SumByAccount(ctx, nil, account.ID, basis)
	if err != nil {
		return nil, err
	}

	breakdown, err := uc.eventRepo.SumBySourceKind(ctx, account.ID, basis)
	if err != nil {
		return nil, err
	}

	count, err := uc.eventRepo.CountByAccount(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	d := &domain.Diagnosis{
		AccountID:   account.ID,
		AccountName: account.Name,
		Status:      account.Status,
		Basis:       basis,
		CachedTotal: account.CachedTotal,
		LedgerTotal: ledgerTotal,
		Discrepancy: ledgerTotal - account.CachedTotal,
		EventCount:  count,
		Breakdown:   breakdown,
		GeneratedAt: uc.now(),
	}

	cursor, err := uc.cursors.Get(ctx, account.ID)
	switch {
	case err == nil:
		d.Cursor = cursor
	case !errors.Is(err, domain.ErrCursorNotFound):
		return nil, err
	}

	if uc.logRepo != nil {
		recent, err := uc.logRepo.ListByAccount(ctx, account.ID, recentReconciliations)
		if err != nil {
			return nil, err
		}
		d.Recent = recent
	}

	if includeUpstream {
		d.Upstream = uc.compareUpstream(ctx, account, basis, ledgerTotal)
	}

	return d, nil
}

func (uc *DiagnosticsUseCase) compareUpstream(ctx context.Context, account *domain.Account, basis domain.RevenueBasis, ledgerTotal int64) *domain.UpstreamComparison {
	if uc.fetcher == nil {
		return &domain.UpstreamComparison{Error: "upstream comparison unavailable"}
	}

	total, err := uc.fetcher.FetchEarningsTotal(ctx, account, basis)
	if err != nil {
		uc.logger.Warn().Err(err).Str("account_id", account.ID).Msg("upstream earnings lookup failed")
		return &domain.UpstreamComparison{Error: err.Error()}
	}

	discrepancy := total - ledgerTotal
	return &domain.UpstreamComparison{Total: &total, Discrepancy: &discrepancy}
}
