package domain

import (
	"fmt"
	"strings"
	"time"
)

// UnknownCounterparty stands in for an absent counterparty in identity and storage.
const UnknownCounterparty = "unknown"

// SourceKind categorizes a ledger event.
type SourceKind string

const (
	SourceKindSubscription  SourceKind = "subscription"
	SourceKindTip           SourceKind = "tip"
	SourceKindMessageUnlock SourceKind = "message_unlock"
	SourceKindContentUnlock SourceKind = "content_unlock"
	SourceKindOther         SourceKind = "other"
)

var validSourceKinds = map[SourceKind]bool{
	SourceKindSubscription:  true,
	SourceKindTip:           true,
	SourceKindMessageUnlock: true,
	SourceKindContentUnlock: true,
	SourceKindOther:         true,
}

// upstream category spellings seen across platform payloads
var sourceKindAliases = map[string]SourceKind{
	"subscription":      SourceKindSubscription,
	"subscriptions":     SourceKindSubscription,
	"subscribe":         SourceKindSubscription,
	"recurring":         SourceKindSubscription,
	"rebill":            SourceKindSubscription,
	"tip":               SourceKindTip,
	"tips":              SourceKindTip,
	"message":           SourceKindMessageUnlock,
	"messages":          SourceKindMessageUnlock,
	"message_unlock":    SourceKindMessageUnlock,
	"paid_message":      SourceKindMessageUnlock,
	"ppv_message":       SourceKindMessageUnlock,
	"post":              SourceKindContentUnlock,
	"posts":             SourceKindContentUnlock,
	"content":           SourceKindContentUnlock,
	"content_unlock":    SourceKindContentUnlock,
	"ppv":               SourceKindContentUnlock,
	"pay_per_view":      SourceKindContentUnlock,
	"stream":            SourceKindContentUnlock,
	"referral":          SourceKindOther,
	"other":             SourceKindOther,
	"chargeback":        SourceKindOther,
	"chargeback_refund": SourceKindOther,
}

// ParseSourceKind normalizes an upstream category. Unrecognized categories map to SourceKindOther.
func ParseSourceKind(raw string) SourceKind {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if kind, ok := sourceKindAliases[key]; ok {
		return kind
	}
	return SourceKindOther
}

// IsValid reports whether k is a known source kind.
func (k SourceKind) IsValid() bool {
	return validSourceKinds[k]
}

// LedgerEvent is one monetary event attributed to one account.
// Amounts are integer minor currency units.
type LedgerEvent struct {
	ID             string
	AccountID      string
	OccurredAt     time.Time
	SourceKind     SourceKind
	CounterpartyID string
	GrossAmount    int64
	NetAmount      int64
	UpstreamRef    *string
	Description    string
	IngestedAt     time.Time
	UpdatedAt      time.Time
}

// Normalize canonicalizes the identity fields and assigns the content identifier.
func (e *LedgerEvent) Normalize() {
	e.OccurredAt = CanonicalTime(e.OccurredAt)
	e.CounterpartyID = strings.TrimSpace(e.CounterpartyID)
	if e.CounterpartyID == "" {
		e.CounterpartyID = UnknownCounterparty
	}
	e.ID = EventIdentity(e.OccurredAt, e.SourceKind, e.GrossAmount, e.NetAmount, e.CounterpartyID, e.AccountID)
}

// Validate checks the fields required to store the event.
func (e *LedgerEvent) Validate() error {
	if strings.TrimSpace(e.AccountID) == "" {
		return fmt.Errorf("%w: account_id is required", ErrInvalidEvent)
	}
	if e.OccurredAt.IsZero() {
		return fmt.Errorf("%w: occurred_at is required", ErrInvalidEvent)
	}
	if !e.SourceKind.IsValid() {
		return fmt.Errorf("%w: unknown source kind %q", ErrInvalidEvent, e.SourceKind)
	}
	return nil
}

// Amount returns the amount counted under basis.
func (e *LedgerEvent) Amount(basis RevenueBasis) int64 {
	if basis == RevenueBasisGross {
		return e.GrossAmount
	}
	return e.NetAmount
}

// RevenueBasis selects which amount column revenue totals sum over.
type RevenueBasis string

const (
	RevenueBasisNet   RevenueBasis = "net"
	RevenueBasisGross RevenueBasis = "gross"
)

// ParseRevenueBasis parses a configured basis, defaulting to net.
func ParseRevenueBasis(raw string) RevenueBasis {
	if strings.EqualFold(strings.TrimSpace(raw), string(RevenueBasisGross)) {
		return RevenueBasisGross
	}
	return RevenueBasisNet
}

// UpsertOutcome reports what an idempotent write did to the stored row.
type UpsertOutcome string

const (
	UpsertInserted  UpsertOutcome = "inserted"
	UpsertUpdated   UpsertOutcome = "updated"
	UpsertUnchanged UpsertOutcome = "unchanged"
)

// LedgerPage is one page of events returned by the platform. Rejected
// describes items that could not be decoded into events; they are not part
// of Events.
type LedgerPage struct {
	Events        []*LedgerEvent
	Rejected      []string
	NextPageToken string
	HasMore       bool
}

// LatestOccurredAt returns the newest occurred_at on the page.
func (p *LedgerPage) LatestOccurredAt() (time.Time, bool) {
	var latest time.Time
	for _, e := range p.Events {
		if e.OccurredAt.After(latest) {
			latest = e.OccurredAt
		}
	}
	return latest, !latest.IsZero()
}

// SourceKindTotal is the ledger sum for one source kind.
type SourceKindTotal struct {
	SourceKind SourceKind
	Total      int64
	EventCount int64
}
