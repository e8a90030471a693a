package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/revsync/internal/domain"
)

// ReconciliationUseCase recomputes an account's revenue from the ledger and
// merges it into the cached summary.
type ReconciliationUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	eventRepo   LedgerEventRepository
	logRepo     ReconciliationLogRepository
	idGen       IDGenerator
	basis       domain.RevenueBasis
	metrics     MetricsRecorder
	logger      zerolog.Logger
	now         func() time.Time
}

// NewReconciliationUseCase creates a new reconciliation use case
func NewReconciliationUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	eventRepo LedgerEventRepository,
	logRepo ReconciliationLogRepository,
	idGen IDGenerator,
	basis domain.RevenueBasis,
	logger zerolog.Logger,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		eventRepo:   eventRepo,
		logRepo:     logRepo,
		idGen:       idGen,
		basis:       basis,
		metrics:     noopMetrics{},
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithMetrics sets the metrics recorder.
func (uc *ReconciliationUseCase) WithMetrics(m MetricsRecorder) *ReconciliationUseCase {
	if m != nil {
		uc.metrics = m
	}
	return uc
}

// Basis returns the amount column revenue is summed over.
func (uc *ReconciliationUseCase) Basis() domain.RevenueBasis {
	return uc.basis
}

// Reconcile sums the account's ledger and merges the result into cached_total.
// In normal mode a lower sum is withheld and reported as Skipped; in force mode
// the sum is applied in either direction. The account row is locked for the
// duration so concurrent reconciles serialize.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, accountID string, mode domain.ReconcileMode) (*domain.ReconcileResult, error) {
	ctx, cancel := context.WithTimeout(ctx, reconcileTxTimeout)
	defer cancel()

	// 1. Begin transaction
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// 2. Lock the summary row
	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}

	// 3. Sum the ledger under the same lock
	total, err := uc.eventRepo.SumByAccount(ctx, tx, accountID, uc.basis)
	if err != nil {
		return nil, err
	}

	result := &domain.ReconcileResult{
		AccountID: accountID,
		Mode:      mode,
		OldTotal:  account.CachedTotal,
		NewTotal:  total,
	}

	apply, skipped := domain.Decide(mode, account.CachedTotal, total)
	if !apply && !skipped {
		if err := tx.Commit(ctx); err != nil {
			return nil, err
		}
		uc.metrics.ObserveReconcile(mode, result)
		return result, nil
	}

	// 4. Apply or withhold, and log either way
	now := uc.now()
	record := &domain.ReconciliationRecord{
		ID:        uc.idGen.Generate(),
		AccountID: accountID,
		Mode:      mode,
		OldTotal:  account.CachedTotal,
		NewTotal:  total,
		Applied:   apply,
		CreatedAt: now,
	}

	if apply {
		if err := uc.accountRepo.UpdateCachedTotal(ctx, tx, accountID, total, now); err != nil {
			return nil, err
		}
		result.Changed = true
		if total < account.CachedTotal {
			record.Reason = "forced decrease"
		}
	} else {
		result.Skipped = true
		record.Reason = domain.ErrReconciliationSkipped.Error()
	}

	if err := uc.logRepo.Create(ctx, tx, record); err != nil {
		return nil, err
	}

	// 5. Commit
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if result.Skipped {
		uc.logger.Warn().
			Str("account_id", accountID).
			Int64("cached_total", result.OldTotal).
			Int64("ledger_total", result.NewTotal).
			Msg(domain.ErrReconciliationSkipped.Error())
	} else {
		uc.logger.Info().
			Str("account_id", accountID).
			Str("mode", string(mode)).
			Int64("old_total", result.OldTotal).
			Int64("new_total", result.NewTotal).
			Msg("cached revenue updated")
	}

	uc.metrics.ObserveReconcile(mode, result)

	return result, nil
}
