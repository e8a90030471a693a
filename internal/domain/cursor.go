package domain

import "time"

// Cursor is the position a ledger fetch resumes from.
// A zero Since means the beginning of the account's history.
type Cursor struct {
	Since     time.Time
	PageToken string
}

// SyncCursor is the persisted per-account watermark and lease.
type SyncCursor struct {
	AccountID       string
	LastSyncedAt    *time.Time
	PageToken       string
	SyncInProgress  bool
	LeaseOwner      string
	LeaseAcquiredAt *time.Time
	LastError       string
	UpdatedAt       time.Time
}

// Position returns where an incremental fetch should resume.
func (c *SyncCursor) Position() Cursor {
	pos := Cursor{PageToken: c.PageToken}
	if c.LastSyncedAt != nil {
		pos.Since = *c.LastSyncedAt
	}
	return pos
}

// LeaseAvailable reports whether a new owner may take the lease at now.
// A lease older than staleAfter is treated as abandoned by a crashed worker.
func (c *SyncCursor) LeaseAvailable(now time.Time, staleAfter time.Duration) bool {
	if !c.SyncInProgress {
		return true
	}
	if c.LeaseAcquiredAt == nil {
		return true
	}
	return c.LeaseAcquiredAt.Before(now.Add(-staleAfter))
}

// Advanced returns the watermark after durably writing events up to latest.
// The watermark never moves backwards.
func (c *SyncCursor) Advanced(latest time.Time, nextPageToken string) Cursor {
	pos := Cursor{PageToken: nextPageToken}
	if c.LastSyncedAt != nil {
		pos.Since = *c.LastSyncedAt
	}
	if latest.After(pos.Since) {
		pos.Since = latest
	}
	return pos
}
