package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// SQLSTATE values worth another attempt outside their class prefixes.
const (
	sqlStateLockNotAvailable = "55P03"
	sqlStateAdminShutdown    = "57P01"
)

// Retryable SQLSTATE classes: 40 is transaction rollback (deadlocks,
// serialization failures), 08 is connection exception.
var retryableClasses = []string{"40", "08"}

// RetryPolicy bounds how hard ledger writes are retried.
type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultRetryPolicy keeps a single event insert well under a page timeout.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:      3,
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     time.Second,
		MaxElapsedTime:  10 * time.Second,
	}
}

// Retrier implements usecase.Retrier for transient PostgreSQL failures.
type Retrier struct {
	policy RetryPolicy
	logger zerolog.Logger
}

// NewRetrier creates a Retrier with DefaultRetryPolicy.
func NewRetrier(logger zerolog.Logger) *Retrier {
	return NewRetrierWithPolicy(DefaultRetryPolicy(), logger)
}

// NewRetrierWithPolicy creates a Retrier with an explicit policy.
func NewRetrierWithPolicy(policy RetryPolicy, logger zerolog.Logger) *Retrier {
	return &Retrier{
		policy: policy,
		logger: logger.With().Str("component", "retrier").Logger(),
	}
}

// Retry runs operation until it succeeds, fails permanently, or the policy
// is exhausted. Only transient database errors are retried.
func (r *Retrier) Retry(ctx context.Context, operation func() error) error {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = r.policy.InitialInterval
	expo.MaxInterval = r.policy.MaxInterval
	expo.MaxElapsedTime = r.policy.MaxElapsedTime

	b := backoff.WithContext(backoff.WithMaxRetries(expo, r.policy.MaxRetries), ctx)

	attempt := 0
	return backoff.RetryNotify(func() error {
		attempt++
		err := operation()
		if err != nil && !IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}, b, func(err error, wait time.Duration) {
		r.logger.Warn().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("transient database error, retrying")
	})
}

// IsTransient reports whether err is a database failure that may succeed
// on a fresh attempt.
func IsTransient(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateLockNotAvailable, sqlStateAdminShutdown:
			return true
		}
		for _, class := range retryableClasses {
			if strings.HasPrefix(pgErr.Code, class) {
				return true
			}
		}
		return false
	}
	// Failures before any bytes reached the server.
	return pgconn.SafeToRetry(err)
}
