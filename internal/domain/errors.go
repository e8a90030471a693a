package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountFailed   = errors.New("account is marked failed")

	// Upstream errors
	ErrAuthExpired       = errors.New("platform credential expired or invalid")
	ErrRateLimited       = errors.New("platform rate limit exhausted")
	ErrTransientNetwork  = errors.New("transient platform failure")
	ErrPermanentUpstream = errors.New("permanent platform failure")

	// Ingestion errors
	ErrWriteFailure = errors.New("ledger write failed")
	ErrInvalidEvent = errors.New("invalid ledger event")

	// Reconciliation outcome, not a fault.
	ErrReconciliationSkipped = errors.New("computed total is lower than cached total")

	// Lease errors
	ErrSyncInProgress = errors.New("sync already in progress for account")
	ErrLeaseLost      = errors.New("sync lease no longer held")
	ErrCursorNotFound = errors.New("sync cursor not found")

	// Orchestration errors
	ErrInvalidCadence = errors.New("invalid sync cadence")
	ErrRunNotFound    = errors.New("sync run not found")
)

// ErrorKind is the stable label reported for a per-account failure.
type ErrorKind string

const (
	ErrorKindNone              ErrorKind = ""
	ErrorKindAuthExpired       ErrorKind = "auth_expired"
	ErrorKindRateLimited       ErrorKind = "rate_limited"
	ErrorKindTransientNetwork  ErrorKind = "transient_network"
	ErrorKindPermanentUpstream ErrorKind = "permanent_upstream"
	ErrorKindWriteFailure      ErrorKind = "write_failure"
	ErrorKindInProgress        ErrorKind = "in_progress"
	ErrorKindNotFound          ErrorKind = "not_found"
	ErrorKindDeadline          ErrorKind = "deadline"
	ErrorKindInternal          ErrorKind = "internal"
)

// ClassifyError maps an error onto its ErrorKind.
func ClassifyError(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, ErrAuthExpired):
		return ErrorKindAuthExpired
	case errors.Is(err, ErrRateLimited):
		return ErrorKindRateLimited
	case errors.Is(err, ErrPermanentUpstream):
		return ErrorKindPermanentUpstream
	case errors.Is(err, ErrTransientNetwork):
		return ErrorKindTransientNetwork
	case errors.Is(err, ErrWriteFailure):
		return ErrorKindWriteFailure
	case errors.Is(err, ErrSyncInProgress):
		return ErrorKindInProgress
	case errors.Is(err, ErrAccountNotFound):
		return ErrorKindNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrorKindDeadline
	default:
		return ErrorKindInternal
	}
}

// UpstreamError describes a failed platform API call.
type UpstreamError struct {
	Kind       error
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Kind, e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Kind
}
