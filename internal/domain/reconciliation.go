package domain

import (
	"fmt"
	"time"
)

// ReconcileMode selects how a recomputed total is merged into the cached total.
type ReconcileMode string

const (
	// ReconcileNormal never lowers the cached total.
	ReconcileNormal ReconcileMode = "normal"
	// ReconcileForce applies the computed total in either direction.
	ReconcileForce ReconcileMode = "force"
)

// ParseReconcileMode parses a mode name.
func ParseReconcileMode(raw string) (ReconcileMode, error) {
	switch m := ReconcileMode(raw); m {
	case ReconcileNormal, ReconcileForce:
		return m, nil
	case "":
		return ReconcileNormal, nil
	default:
		return "", fmt.Errorf("invalid reconcile mode %q", raw)
	}
}

// ReconcileResult reports one reconciliation.
type ReconcileResult struct {
	AccountID string
	Mode      ReconcileMode
	OldTotal  int64
	NewTotal  int64
	Changed   bool
	// Skipped is set when a lower computed total was withheld in normal mode.
	Skipped bool
}

// Decide applies the merge rule for mode to the cached and computed totals.
func Decide(mode ReconcileMode, cached, computed int64) (apply bool, skipped bool) {
	switch {
	case computed == cached:
		return false, false
	case computed > cached, mode == ReconcileForce:
		return true, false
	default:
		return false, true
	}
}

// ReconciliationRecord is an append-only log row for a reconcile that changed or
// withheld the cached total.
type ReconciliationRecord struct {
	ID        string
	AccountID string
	Mode      ReconcileMode
	OldTotal  int64
	NewTotal  int64
	Applied   bool
	Reason    string
	CreatedAt time.Time
}
