package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisRateLimiter struct {
	client *redis.Client
	prefix string
}

func NewRedisRateLimiter(client *redis.Client) RateLimiter {
	return &RedisRateLimiter{
		client: client,
		prefix: "ratelimit",
	}
}

// Allow counts the request in the current fixed window. The counter key is
// created with the window as TTL on the first hit.
func (l *RedisRateLimiter) Allow(ctx context.Context, key string, policy Policy) (*Result, error) {
	if policy.Limit <= 0 || policy.Window <= 0 {
		return &Result{Allowed: true, Remaining: -1}, nil
	}

	redisKey := l.getKey(key, policy.Window, time.Now())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, policy.Window)
	ttl := pipe.PTTL(ctx, redisKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	count := int(incr.Val())
	remaining := policy.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &Result{
		Allowed:   count <= policy.Limit,
		Remaining: remaining,
		ResetIn:   ttl.Val(),
	}, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	pattern := fmt.Sprintf("%s:%s:*", l.prefix, key)

	iter := l.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}

	return nil
}

func (l *RedisRateLimiter) getKey(identifier string, window time.Duration, now time.Time) string {
	bucket := now.UnixNano() / int64(window)
	return fmt.Sprintf("%s:%s:%d", l.prefix, identifier, bucket)
}
