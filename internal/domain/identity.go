package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// IdentityLength is the width of an event identifier in hex characters.
const IdentityLength = 32

const (
	identitySeparator  = "\x1f"
	identityTimeFormat = "2006-01-02T15:04:05.000000Z"
)

// CanonicalTime is the form of a timestamp that participates in event identity:
// UTC, truncated to microseconds (the storage precision).
func CanonicalTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// EventIdentity derives the deterministic identifier of a ledger event from its
// immutable business fields. An empty counterparty hashes as UnknownCounterparty.
func EventIdentity(occurredAt time.Time, kind SourceKind, gross, net int64, counterpartyID, accountID string) string {
	if counterpartyID == "" {
		counterpartyID = UnknownCounterparty
	}

	fields := []string{
		CanonicalTime(occurredAt).Format(identityTimeFormat),
		string(kind),
		strconv.FormatInt(gross, 10),
		strconv.FormatInt(net, 10),
		counterpartyID,
		accountID,
	}

	sum := sha256.Sum256([]byte(strings.Join(fields, identitySeparator)))
	return hex.EncodeToString(sum[:])[:IdentityLength]
}
