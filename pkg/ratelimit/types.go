package ratelimit

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidConfig = errors.New("invalid rate limit config")

// Config defines a fixed window: at most Limit requests per Window.
type Config struct {
	Limit  int
	Window time.Duration
}

func (c Config) validate() error {
	if c.Limit <= 0 {
		return errors.Join(ErrInvalidConfig, errors.New("limit must be positive"))
	}
	if c.Window <= 0 {
		return errors.Join(ErrInvalidConfig, errors.New("window must be positive"))
	}
	return nil
}

// Result contains the outcome of a rate limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter returns how long to wait before the next request is
// allowed, or 0 if the current request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Limiter checks and consumes one slot for a key.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}

// Store is the counter backend for the fixed-window limiter.
type Store interface {
	// IncrementAndGet atomically increments the counter for key,
	// creating it with the window TTL when absent, and returns the new
	// count together with the time remaining in the current window.
	IncrementAndGet(ctx context.Context, key string, window time.Duration) (count int64, ttl time.Duration, err error)

	// Reset clears the counter for key.
	Reset(ctx context.Context, key string) error
}
