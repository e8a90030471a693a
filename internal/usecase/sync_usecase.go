package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/iho/revsync/internal/domain"
)

// SyncConfig bounds a sync run.
type SyncConfig struct {
	// Concurrency is the number of accounts processed in parallel.
	Concurrency int
	// RunTimeout is the deadline for a whole run.
	RunTimeout time.Duration
	// PageTimeout is the deadline for one page fetch, retries included.
	PageTimeout time.Duration
	// MaxPages caps pages per account per run. Reaching it is not an error.
	MaxPages int
	// LeaseStaleAfter is when a held lease is considered abandoned.
	LeaseStaleAfter time.Duration
	// ComprehensiveLookback is how far behind the watermark a comprehensive pass restarts.
	ComprehensiveLookback time.Duration
}

// DefaultSyncConfig returns the settings used when none are configured.
func DefaultSyncConfig() SyncConfig {
	return SyncConfig{
		Concurrency:           4,
		RunTimeout:            4 * time.Minute,
		PageTimeout:           30 * time.Second,
		MaxPages:              20,
		LeaseStaleAfter:       15 * time.Minute,
		ComprehensiveLookback: 72 * time.Hour,
	}
}

// RunOptions selects what a run covers.
type RunOptions struct {
	Cadence domain.Cadence
	// AccountIDs restricts the run to these accounts when non-empty.
	AccountIDs []string
	// FullResync fetches from the beginning of history, ignoring cursors.
	FullResync bool
}

// SyncUseCase orchestrates sync runs: enumerate accounts, then for each one
// acquire, fetch, write, advance, reconcile and release, isolating failures
// per account.
type SyncUseCase struct {
	accountRepo AccountRepository
	cursors     CursorStore
	fetcher     LedgerFetcher
	writer      *IngestionUseCase
	reconciler  *ReconciliationUseCase
	rollupRepo  RollupRepository
	runs        RunSummaryStore
	idGen       IDGenerator
	cfg         SyncConfig
	metrics     MetricsRecorder
	logger      zerolog.Logger
	now         func() time.Time
}

// NewSyncUseCase creates a new SyncUseCase.
func NewSyncUseCase(
	accountRepo AccountRepository,
	cursors CursorStore,
	fetcher LedgerFetcher,
	writer *IngestionUseCase,
	reconciler *ReconciliationUseCase,
	rollupRepo RollupRepository,
	runs RunSummaryStore,
	idGen IDGenerator,
	cfg SyncConfig,
	logger zerolog.Logger,
) *SyncUseCase {
	defaults := DefaultSyncConfig()
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaults.Concurrency
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = defaults.RunTimeout
	}
	if cfg.PageTimeout <= 0 {
		cfg.PageTimeout = defaults.PageTimeout
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = defaults.MaxPages
	}
	if cfg.LeaseStaleAfter <= 0 {
		cfg.LeaseStaleAfter = defaults.LeaseStaleAfter
	}
	if cfg.ComprehensiveLookback < 0 {
		cfg.ComprehensiveLookback = 0
	}

	return &SyncUseCase{
		accountRepo: accountRepo,
		cursors:     cursors,
		fetcher:     fetcher,
		writer:      writer,
		reconciler:  reconciler,
		rollupRepo:  rollupRepo,
		runs:        runs,
		idGen:       idGen,
		cfg:         cfg,
		metrics:     noopMetrics{},
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithMetrics sets the metrics recorder.
func (uc *SyncUseCase) WithMetrics(m MetricsRecorder) *SyncUseCase {
	if m != nil {
		uc.metrics = m
	}
	return uc
}

// Run executes one sync run. Only a failure to enumerate accounts is returned
// as an error; every per-account fault is recorded in the run summary.
func (uc *SyncUseCase) Run(ctx context.Context, opts RunOptions) (*domain.SyncRunResult, error) {
	if _, err := domain.ParseCadence(string(opts.Cadence)); err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithTimeout(ctx, uc.cfg.RunTimeout)
	defer cancel()

	run := &domain.SyncRunResult{
		RunID:     uc.idGen.Generate(),
		Cadence:   opts.Cadence,
		StartedAt: uc.now(),
	}
	logger := uc.logger.With().Str("run_id", run.RunID).Str("cadence", string(opts.Cadence)).Logger()

	// 1. Enumerate
	accounts, err := uc.accountRepo.ListSyncable(runCtx, opts.AccountIDs)
	if err != nil {
		logger.Error().Err(err).Msg("failed to enumerate accounts")
		return nil, fmt.Errorf("enumerate accounts: %w", err)
	}

	results := make([]domain.AccountResult, len(accounts))
	results = append(results, missingAccounts(opts.AccountIDs, accounts)...)

	logger.Info().Int("accounts", len(accounts)).Bool("full_resync", opts.FullResync).Msg("sync run started")

	// 2. Fan out with bounded parallelism
	g, gctx := errgroup.WithContext(runCtx)
	g.SetLimit(uc.cfg.Concurrency)
	for i, account := range accounts {
		g.Go(func() error {
			results[i] = uc.syncAccount(gctx, run.RunID, opts, account, logger)
			return nil
		})
	}
	_ = g.Wait()

	// 3. Aggregate
	run.PerAccount = results
	run.FinishedAt = uc.now()
	run.Tally()

	for i := range run.PerAccount {
		uc.metrics.ObserveAccount(opts.Cadence, &run.PerAccount[i])
	}
	uc.metrics.ObserveRun(opts.Cadence, run)

	if uc.runs != nil {
		saveCtx, cancelSave := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		if err := uc.runs.Save(saveCtx, run); err != nil {
			logger.Warn().Err(err).Msg("failed to store run summary")
		}
		cancelSave()
	}

	logger.Info().
		Int("processed", run.Processed).
		Int("successful", run.Successful).
		Int("failed", run.Failed).
		Int("skipped", run.Skipped).
		Int("new_events", run.TotalNewEvents).
		Dur("duration", run.FinishedAt.Sub(run.StartedAt)).
		Msg("sync run finished")

	return run, nil
}

// LatestRun returns the most recent stored run summary for cadence.
func (uc *SyncUseCase) LatestRun(ctx context.Context, cadence domain.Cadence) (*domain.SyncRunResult, error) {
	if uc.runs == nil {
		return nil, domain.ErrRunNotFound
	}
	return uc.runs.Latest(ctx, cadence)
}

func missingAccounts(requested []string, found []*domain.Account) []domain.AccountResult {
	if len(requested) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(found))
	for _, a := range found {
		seen[a.ID] = true
	}

	var missing []domain.AccountResult
	for _, id := range requested {
		if seen[id] {
			continue
		}
		seen[id] = true
		missing = append(missing, domain.AccountResult{
			AccountID: id,
			Error:     domain.ErrAccountNotFound.Error(),
			ErrorKind: domain.ErrorKindNotFound,
		})
	}
	return missing
}

// syncAccount runs one account's pipeline. It never panics the run and never
// returns an error; the outcome is the result value.
func (uc *SyncUseCase) syncAccount(ctx context.Context, runID string, opts RunOptions, account *domain.Account, runLogger zerolog.Logger) (result domain.AccountResult) {
	start := uc.now()
	result.AccountID = account.ID
	logger := runLogger.With().Str("account_id", account.ID).Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("account pipeline panicked")
			result.Success = false
			result.Error = fmt.Sprintf("panic: %v", r)
			result.ErrorKind = domain.ErrorKindInternal
		}
		result.Duration = uc.now().Sub(start)
	}()

	// 1. Acquire
	cursor, err := uc.cursors.Acquire(ctx, account.ID, runID, uc.cfg.LeaseStaleAfter)
	if err != nil {
		result.Error = err.Error()
		result.ErrorKind = domain.ClassifyError(err)
		if errors.Is(err, domain.ErrSyncInProgress) {
			result.Skipped = true
			logger.Info().Msg("sync already in progress, skipping account")
		} else {
			logger.Error().Err(err).Msg("failed to acquire sync lease")
		}
		return result
	}

	var pipelineErr error
	defer func() {
		lastError := ""
		if pipelineErr != nil {
			lastError = pipelineErr.Error()
		}
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		if err := uc.cursors.Release(releaseCtx, account.ID, runID, lastError); err != nil {
			logger.Warn().Err(err).Msg("failed to release sync lease")
		}
	}()

	// 2-4. Fetch, write, advance
	pipelineErr = uc.ingest(ctx, opts, account, cursor, runID, &result, logger)

	// 5. Reconcile whatever was durably written, even after a partial failure
	if ctx.Err() == nil {
		rec, err := uc.reconciler.Reconcile(ctx, account.ID, domain.ReconcileNormal)
		if err != nil {
			logger.Error().Err(err).Msg("reconciliation failed")
			if pipelineErr == nil {
				pipelineErr = fmt.Errorf("reconcile: %w", err)
			}
		} else {
			result.Reconciliation = rec
		}
	}

	// 6. Supplementary rollups on comprehensive passes
	if pipelineErr == nil && ctx.Err() == nil && opts.Cadence.RefreshesRollups() {
		result.Warnings = append(result.Warnings, uc.refreshRollups(ctx, account, logger)...)
	}

	if pipelineErr != nil {
		uc.recordFailure(ctx, account, pipelineErr, &result, logger)
		return result
	}

	result.Success = true
	return result
}

// ingest walks pages from the starting position. The cursor advances only
// after every event of a page has been durably written; a page with any
// failed write stops the walk without advancing. Items the platform sent
// malformed cannot be written on any retry; they are counted as failed,
// reported as warnings and passed over.
func (uc *SyncUseCase) ingest(
	ctx context.Context,
	opts RunOptions,
	account *domain.Account,
	cursor *domain.SyncCursor,
	runID string,
	result *domain.AccountResult,
	logger zerolog.Logger,
) error {
	position := uc.startPosition(opts, cursor)

	for page := 0; page < uc.cfg.MaxPages; page++ {
		if err := ctx.Err(); err != nil {
			logger.Warn().Int("pages", result.Pages).Msg("run deadline reached, stopping at last advanced cursor")
			return err
		}

		fetched, err := uc.fetchPage(ctx, account, position)
		if err != nil {
			return err
		}

		if n := len(fetched.Rejected); n > 0 {
			result.FailedEvents += n
			result.Warnings = append(result.Warnings, fetched.Rejected...)
			logger.Warn().Int("page", page).Int("rejected", n).Msg("skipping malformed upstream items")
		}

		written := uc.writer.Write(ctx, fetched.Events)
		result.NewEvents += written.Inserted
		result.UpdatedEvents += written.Updated
		result.FailedEvents += written.Failed
		if err := written.Err(); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			logger.Error().Err(err).Int("page", page).Msg("page not fully written, cursor not advanced")
			return err
		}

		latest, _ := fetched.LatestOccurredAt()
		next := ""
		if fetched.HasMore {
			next = fetched.NextPageToken
		}
		advanced := cursor.Advanced(latest, next)
		if err := uc.cursors.Advance(ctx, account.ID, runID, advanced); err != nil {
			return fmt.Errorf("advance cursor: %w", err)
		}
		cursor.LastSyncedAt = &advanced.Since
		cursor.PageToken = advanced.PageToken
		result.Pages++

		if !fetched.HasMore || fetched.NextPageToken == "" {
			return nil
		}
		position = domain.Cursor{Since: position.Since, PageToken: fetched.NextPageToken}
	}

	result.CeilingReached = true
	logger.Info().Int("pages", result.Pages).Msg("page ceiling reached, remainder deferred to next run")
	return nil
}

func (uc *SyncUseCase) fetchPage(ctx context.Context, account *domain.Account, position domain.Cursor) (*domain.LedgerPage, error) {
	pageCtx, cancel := context.WithTimeout(ctx, uc.cfg.PageTimeout)
	defer cancel()

	page, err := uc.fetcher.FetchPage(pageCtx, account, position)
	if err != nil {
		return nil, err
	}
	for _, e := range page.Events {
		e.AccountID = account.ID
	}
	return page, nil
}

func (uc *SyncUseCase) startPosition(opts RunOptions, cursor *domain.SyncCursor) domain.Cursor {
	switch {
	case opts.FullResync:
		return domain.Cursor{}
	case opts.Cadence == domain.CadenceComprehensive:
		pos := domain.Cursor{}
		if cursor.LastSyncedAt != nil {
			pos.Since = cursor.LastSyncedAt.Add(-uc.cfg.ComprehensiveLookback)
		}
		return pos
	default:
		return cursor.Position()
	}
}

func (uc *SyncUseCase) refreshRollups(ctx context.Context, account *domain.Account, logger zerolog.Logger) []string {
	if uc.rollupRepo == nil {
		return nil
	}

	var warnings []string

	if _, err := uc.rollupRepo.RefreshFanTotals(ctx, account.ID); err != nil {
		logger.Warn().Err(err).Msg("fan totals refresh failed")
		warnings = append(warnings, "fan totals: "+err.Error())
	}

	stats, err := uc.fetcher.FetchCampaigns(ctx, account)
	if err == nil {
		now := uc.now()
		for i := range stats {
			stats[i].AccountID = account.ID
			stats[i].UpdatedAt = now
		}
		err = uc.rollupRepo.UpsertCampaignStats(ctx, stats)
	}
	if err != nil {
		logger.Warn().Err(err).Msg("campaign stats refresh failed")
		warnings = append(warnings, "campaign stats: "+err.Error())
	}

	return warnings
}

// recordFailure fills the failed result and applies the per-kind policy:
// rate limiting defers the account, a permanent upstream failure parks it
// until an operator reactivates it, everything else fails this run only.
func (uc *SyncUseCase) recordFailure(ctx context.Context, account *domain.Account, err error, result *domain.AccountResult, logger zerolog.Logger) {
	result.Error = err.Error()
	result.ErrorKind = domain.ClassifyError(err)

	switch result.ErrorKind {
	case domain.ErrorKindRateLimited:
		result.Skipped = true
		logger.Warn().Err(err).Msg("rate limited after retries, account deferred")
	case domain.ErrorKindPermanentUpstream:
		markCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		if markErr := uc.accountRepo.MarkFailed(markCtx, account.ID, err.Error(), uc.now()); markErr != nil {
			logger.Error().Err(markErr).Msg("failed to mark account failed")
		}
		logger.Error().Err(err).Msg("permanent upstream failure, account marked failed")
	case domain.ErrorKindAuthExpired:
		logger.Warn().Err(err).Msg("platform credential rejected, account failed for this run")
	default:
		logger.Error().Err(err).Str("error_kind", string(result.ErrorKind)).Msg("account sync failed")
	}
}
