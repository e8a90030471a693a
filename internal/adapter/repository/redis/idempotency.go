package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/revsync/internal/usecase"
)

const idempotencyPrefix = "idempotency:"

// claimScript sets the key only if absent and otherwise returns the current
// value, so a claim is one atomic round trip. A nil reply means claimed.
var claimScript = redis.NewScript(`
if redis.call('SET', KEYS[1], ARGV[1], 'NX', 'PX', ARGV[2]) then
	return false
end
return redis.call('GET', KEYS[1])
`)

// IdempotencyStore backs the Idempotency-Key header of sync triggers.
type IdempotencyStore struct {
	client *redis.Client
}

func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// CheckAndSet claims key, storing response or the pending marker when
// response is nil. A key that is already claimed reports true along with
// whatever it currently holds.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	value := []byte(usecase.IdempotencyPending)
	if response != nil {
		value = response
	}

	existing, err := claimScript.Run(ctx, s.client, []string{idempotencyPrefix + key}, value, ttlMillis(ttl)).Text()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil, nil
	case err != nil:
		return false, nil, err
	default:
		return true, []byte(existing), nil
	}
}

// Update stores the final response under key.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return s.client.Set(ctx, idempotencyPrefix+key, response, ttl).Err()
}

// ttlMillis converts ttl for PX, which rejects zero.
func ttlMillis(ttl time.Duration) int64 {
	if ttl <= 0 {
		ttl = usecase.IdempotencyKeyTTL
	}
	if ms := ttl.Milliseconds(); ms > 0 {
		return ms
	}
	return 1
}
