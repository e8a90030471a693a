package memory

import (
	"context"
	"sync"
	"time"

	"github.com/iho/revsync/internal/usecase"
)

type cacheEntry struct {
	value     string
	expiresAt time.Time
}

// Cache implements usecase.Cache and usecase.IdempotencyStore in process memory.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewCache creates a new Cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get retrieves a live value by key.
func (c *Cache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.live(key)
	if !ok {
		return "", usecase.ErrCacheMiss
	}
	return e.value, nil
}

// Set stores a value with TTL. A zero ttl never expires.
func (c *Cache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(key, value, ttl)
	return nil
}

// Delete removes a key.
func (c *Cache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

// CheckAndSet claims key unless a live value exists.
func (c *Cache) CheckAndSet(_ context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.live(key); ok {
		return true, []byte(e.value), nil
	}

	value := usecase.IdempotencyPending
	if response != nil {
		value = string(response)
	}
	c.put(key, value, ttl)
	return false, nil, nil
}

// Update replaces the key's value.
func (c *Cache) Update(_ context.Context, key string, response []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(key, string(response), ttl)
	return nil
}

func (c *Cache) live(key string) (cacheEntry, bool) {
	e, ok := c.entries[key]
	if !ok {
		return cacheEntry{}, false
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return cacheEntry{}, false
	}
	return e, true
}

func (c *Cache) put(key, value string, ttl time.Duration) {
	e := cacheEntry{value: value}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.entries[key] = e
}
