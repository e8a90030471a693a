package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	client, err := NewClient(ctx, "redis://"+mr.Addr()+"/2", WithPoolSize(4))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.Equal(t, 4, client.Options().PoolSize)
	assert.Equal(t, 2, client.Options().DB)
	require.NoError(t, client.Set(ctx, "lease:A", "run-1", 0).Err())
	assert.Equal(t, "run-1", mr.Get("lease:A"))
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient(context.Background(), "://bad-url")
	assert.ErrorContains(t, err, "parse redis URL")
}

func TestNewClient_ServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewClient(context.Background(), "redis://"+addr)
	assert.ErrorContains(t, err, "ping redis")
}

func TestNewClient_ConnectRetryWaitsForServer(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	go func() {
		time.Sleep(150 * time.Millisecond)
		_ = mr.Restart()
	}()

	client, err := NewClient(context.Background(), "redis://"+addr, WithConnectRetry(5*time.Second))
	require.NoError(t, err)
	_ = client.Close()
}

func TestChecker(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	client, err := NewClient(ctx, "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	checker := NewChecker(client)
	assert.Equal(t, "redis", checker.Name())
	assert.NoError(t, checker.Check(ctx))

	mr.SetError("LOADING Redis is loading the dataset in memory")
	assert.Error(t, checker.Check(ctx))
}
