package tokenprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rediscache "github.com/iho/revsync/internal/adapter/repository/redis"
)

type countingSource struct {
	token *Token
	err   error
	calls int
}

func (s *countingSource) Issue(context.Context, string) (*Token, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	tok := *s.token
	return &tok, nil
}

type hitCounter struct{ hits, misses int }

func (h *hitCounter) ObserveTokenCache(hit bool) {
	if hit {
		h.hits++
		return
	}
	h.misses++
}

func newCachingProvider(t *testing.T, source Source, ttl time.Duration) (*CachingProvider, *miniredis.Miniredis, *hitCounter) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	obs := &hitCounter{}
	p := NewCachingProvider(source, rediscache.NewCache(client), ttl, zerolog.Nop()).WithObserver(obs)
	return p, mr, obs
}

func TestCachingProvider_ServesFromCache(t *testing.T) {
	ctx := context.Background()
	source := &countingSource{token: &Token{AccessToken: "abc", ExpiresAt: time.Now().Add(time.Hour)}}
	p, mr, obs := newCachingProvider(t, source, 10*time.Minute)

	for i := 0; i < 3; i++ {
		tok, err := p.Token(ctx, "acc-1")
		require.NoError(t, err)
		assert.Equal(t, "abc", tok)
	}
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, 2, obs.hits)
	assert.Equal(t, 1, obs.misses)

	ttl := mr.TTL("token:acc-1")
	assert.LessOrEqual(t, ttl, 10*time.Minute)
	assert.Greater(t, ttl, 9*time.Minute)
}

func TestCachingProvider_TTLBoundedByExpiry(t *testing.T) {
	source := &countingSource{token: &Token{AccessToken: "abc", ExpiresAt: time.Now().Add(2 * time.Minute)}}
	p, mr, _ := newCachingProvider(t, source, time.Hour)

	_, err := p.Token(context.Background(), "acc-1")
	require.NoError(t, err)

	ttl := mr.TTL("token:acc-1")
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, 90*time.Second)
}

func TestCachingProvider_NearlyExpiredTokenNotCached(t *testing.T) {
	source := &countingSource{token: &Token{AccessToken: "abc", ExpiresAt: time.Now().Add(10 * time.Second)}}
	p, mr, _ := newCachingProvider(t, source, time.Hour)

	_, err := p.Token(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.False(t, mr.Exists("token:acc-1"))
}

func TestCachingProvider_Invalidate(t *testing.T) {
	ctx := context.Background()
	source := &countingSource{token: &Token{AccessToken: "abc"}}
	p, _, _ := newCachingProvider(t, source, time.Hour)

	_, err := p.Token(ctx, "acc-1")
	require.NoError(t, err)
	require.NoError(t, p.Invalidate(ctx, "acc-1"))

	source.token = &Token{AccessToken: "fresh"}
	tok, err := p.Token(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "fresh", tok)
	assert.Equal(t, 2, source.calls)
}

func TestCachingProvider_SourceError(t *testing.T) {
	source := &countingSource{err: errors.New("boom")}
	p, mr, _ := newCachingProvider(t, source, time.Hour)

	_, err := p.Token(context.Background(), "acc-1")
	assert.EqualError(t, err, "boom")
	assert.False(t, mr.Exists("token:acc-1"))
}

func TestCachingProvider_CacheOutageFallsBackToSource(t *testing.T) {
	source := &countingSource{token: &Token{AccessToken: "abc"}}
	p, mr, _ := newCachingProvider(t, source, time.Hour)
	mr.Close()

	tok, err := p.Token(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)
}
