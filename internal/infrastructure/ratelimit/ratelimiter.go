package ratelimit

import (
	"context"
	"time"
)

// Policy caps requests per key within a fixed window.
type Policy struct {
	Limit  int
	Window time.Duration
}

// Result describes the state of the window after a request was counted.
type Result struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, policy Policy) (*Result, error)
	Reset(ctx context.Context, key string) error
}
