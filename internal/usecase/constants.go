package usecase

import "time"

const (
	// IdempotencyKeyTTL applies when no TTL is configured.
	IdempotencyKeyTTL = 24 * time.Hour

	// IdempotencyPending marks a key whose first request has not finished.
	IdempotencyPending = "processing"

	// MaxDiagnosesPerSearch caps a name search.
	MaxDiagnosesPerSearch = 25

	// reconcileTxTimeout bounds the locked read-sum-write of one account.
	reconcileTxTimeout = 10 * time.Second

	// releaseTimeout bounds lease release after the run context is done.
	releaseTimeout = 5 * time.Second

	recentReconciliations = 10
)
