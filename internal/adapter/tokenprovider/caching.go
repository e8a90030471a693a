package tokenprovider

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/revsync/internal/usecase"
)

const (
	keyPrefix = "token:"
	// tokens this close to expiry are not served from cache
	expirySkew = 30 * time.Second
)

// CacheObserver receives cache hit/miss observations.
type CacheObserver interface {
	ObserveTokenCache(hit bool)
}

// CachingProvider serves tokens from a shared cache and falls back to a Source.
type CachingProvider struct {
	source   Source
	cache    usecase.Cache
	ttl      time.Duration
	observer CacheObserver
	logger   zerolog.Logger
	now      func() time.Time
}

// NewCachingProvider creates a new CachingProvider.
func NewCachingProvider(source Source, cache usecase.Cache, ttl time.Duration, logger zerolog.Logger) *CachingProvider {
	return &CachingProvider{
		source: source,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With().Str("component", "token_cache").Logger(),
		now:    time.Now,
	}
}

// WithObserver sets the cache observer.
func (p *CachingProvider) WithObserver(o CacheObserver) *CachingProvider {
	p.observer = o
	return p
}

// Token implements usecase.TokenProvider.
func (p *CachingProvider) Token(ctx context.Context, accountID string) (string, error) {
	key := keyPrefix + accountID

	raw, err := p.cache.Get(ctx, key)
	switch {
	case err == nil:
		var tok Token
		if jsonErr := json.Unmarshal([]byte(raw), &tok); jsonErr == nil && tok.Valid(p.now(), expirySkew) {
			p.observe(true)
			return tok.AccessToken, nil
		}
	case !errors.Is(err, usecase.ErrCacheMiss):
		// a cache outage degrades to the source
		p.logger.Warn().Err(err).Str("account_id", accountID).Msg("token cache read failed")
	}
	p.observe(false)

	tok, err := p.source.Issue(ctx, accountID)
	if err != nil {
		return "", err
	}

	if ttl := p.cacheTTL(tok); ttl > 0 {
		data, _ := json.Marshal(tok)
		if err := p.cache.Set(ctx, key, string(data), ttl); err != nil {
			p.logger.Warn().Err(err).Str("account_id", accountID).Msg("token cache write failed")
		}
	}
	return tok.AccessToken, nil
}

// Invalidate drops the cached token for accountID.
func (p *CachingProvider) Invalidate(ctx context.Context, accountID string) error {
	return p.cache.Delete(ctx, keyPrefix+accountID)
}

func (p *CachingProvider) cacheTTL(tok *Token) time.Duration {
	ttl := p.ttl
	if !tok.ExpiresAt.IsZero() {
		if left := tok.ExpiresAt.Sub(p.now()) - expirySkew; left < ttl {
			ttl = left
		}
	}
	return ttl
}

func (p *CachingProvider) observe(hit bool) {
	if p.observer != nil {
		p.observer.ObserveTokenCache(hit)
	}
}
