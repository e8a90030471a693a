package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/revsync/internal/usecase"
)

func TestCache_ExpiresEntries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := NewCache()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "token:A", "secret", time.Minute))
	val, err := c.Get(ctx, "token:A")
	require.NoError(t, err)
	assert.Equal(t, "secret", val)

	now = now.Add(time.Minute)
	_, err = c.Get(ctx, "token:A")
	assert.ErrorIs(t, err, usecase.ErrCacheMiss)
}

func TestCache_CheckAndSet(t *testing.T) {
	ctx := context.Background()
	c := NewCache()

	exists, _, err := c.CheckAndSet(ctx, "k", nil, time.Minute)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, resp, err := c.CheckAndSet(ctx, "k", nil, time.Minute)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "processing", string(resp))

	require.NoError(t, c.Update(ctx, "k", []byte("done"), time.Minute))
	_, resp, _ = c.CheckAndSet(ctx, "k", nil, time.Minute)
	assert.Equal(t, "done", string(resp))

	require.NoError(t, c.Delete(ctx, "k"))
	exists, _, _ = c.CheckAndSet(ctx, "k", nil, time.Minute)
	assert.False(t, exists)
}
