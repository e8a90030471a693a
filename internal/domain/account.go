package domain

import (
	"time"
)

// AccountStatus tracks whether an account participates in scheduled syncs.
type AccountStatus string

const (
	AccountStatusActive AccountStatus = "active"
	AccountStatusFailed AccountStatus = "failed"
)

// Account is a creator account on the external platform together with its
// cached revenue summary.
type Account struct {
	ID             string
	Name           string
	PlatformUserID string
	Status         AccountStatus
	FailureReason  string

	// CachedTotal is the last known-good revenue aggregate in minor units.
	// It is only lowered by a forced reconciliation.
	CachedTotal      int64
	SummaryUpdatedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSyncable reports whether scheduled runs should pick up the account.
func (a *Account) IsSyncable() bool {
	return a.Status != AccountStatusFailed
}

// RevenueSummary is the cached aggregate as seen by the rest of the application.
type RevenueSummary struct {
	AccountID   string
	CachedTotal int64
	UpdatedAt   *time.Time
}

// Summary returns the account's cached revenue summary.
func (a *Account) Summary() RevenueSummary {
	return RevenueSummary{
		AccountID:   a.ID,
		CachedTotal: a.CachedTotal,
		UpdatedAt:   a.SummaryUpdatedAt,
	}
}
