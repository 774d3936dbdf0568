package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	err := client.Ping(ctx).Err()
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_FixedWindow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()
	policy := Policy{Limit: 5, Window: time.Minute}

	for i := 0; i < 5; i++ {
		res, err := limiter.Allow(ctx, "checkout:127.0.0.1", policy)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d should be allowed", i+1)
		assert.Equal(t, 4-i, res.Remaining)
	}

	res, err := limiter.Allow(ctx, "checkout:127.0.0.1", policy)
	require.NoError(t, err)
	assert.False(t, res.Allowed, "6th request should be denied")
	assert.Greater(t, res.ResetIn, time.Duration(0))

	other, err := limiter.Allow(ctx, "checkout:10.0.0.2", policy)
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	ctx := context.Background()
	policy := Policy{Limit: 1, Window: time.Minute}

	_, err := limiter.Allow(ctx, "payment:1.2.3.4", policy)
	require.NoError(t, err)
	res, err := limiter.Allow(ctx, "payment:1.2.3.4", policy)
	require.NoError(t, err)
	require.False(t, res.Allowed)

	require.NoError(t, limiter.Reset(ctx, "payment:1.2.3.4"))

	res, err = limiter.Allow(ctx, "payment:1.2.3.4", policy)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestRedisRateLimiter_DisabledPolicy(t *testing.T) {
	limiter := NewRedisRateLimiter(redis.NewClient(&redis.Options{Addr: "localhost:0"}))

	res, err := limiter.Allow(context.Background(), "any", Policy{})
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}
