package domain

import "time"

// Diagnosis compares the cached aggregate against the ledger and, optionally,
// the platform's own figure. Mismatches are data, not errors.
type Diagnosis struct {
	AccountID   string
	AccountName string
	Status      AccountStatus
	Basis       RevenueBasis
	CachedTotal int64
	LedgerTotal int64
	// Discrepancy is LedgerTotal minus CachedTotal.
	Discrepancy int64
	EventCount  int64
	Breakdown   []SourceKindTotal
	Upstream    *UpstreamComparison
	Cursor      *SyncCursor
	Recent      []*ReconciliationRecord
	GeneratedAt time.Time
}

// InSync reports whether the cached and ledger totals agree.
func (d *Diagnosis) InSync() bool {
	return d.Discrepancy == 0
}

// UpstreamComparison is the platform-reported total, or why it could not be read.
type UpstreamComparison struct {
	Total       *int64
	Discrepancy *int64
	Error       string
}
