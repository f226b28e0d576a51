// Package ratelimit provides a fixed-window request counter behind a small
// store interface: an in-memory map for single-instance deployments and a
// Redis-backed store for multi-instance ones.
package ratelimit

import (
	"context"
	"time"
)

// Result describes the outcome of one rate-limit check.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Store counts requests per key over a fixed window. Check records the
// request and reports whether it is allowed under the given limit.
type Store interface {
	Check(ctx context.Context, key string, limit int, window time.Duration) (Result, error)
	Close() error
}
