package ratelimit

import (
	"context"
	"time"
)

// FixedWindow is a fixed-window limiter over a Store.
type FixedWindow struct {
	store Store
	cfg   Config
}

// NewFixedWindow creates a fixed-window limiter. The config is validated
// up front so a misconfigured limiter cannot silently allow everything.
func NewFixedWindow(store Store, cfg Config) (*FixedWindow, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &FixedWindow{store: store, cfg: cfg}, nil
}

// Allow consumes one slot for key and reports whether the request fits
// within the current window.
func (fw *FixedWindow) Allow(ctx context.Context, key string) (*Result, error) {
	count, ttl, err := fw.store.IncrementAndGet(ctx, key, fw.cfg.Window)
	if err != nil {
		return nil, err
	}

	remaining := fw.cfg.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return &Result{
		Allowed:   count <= int64(fw.cfg.Limit),
		Limit:     fw.cfg.Limit,
		Remaining: remaining,
		ResetAt:   time.Now().Add(ttl),
	}, nil
}

// Reset clears the window for key.
func (fw *FixedWindow) Reset(ctx context.Context, key string) error {
	return fw.store.Reset(ctx, key)
}
