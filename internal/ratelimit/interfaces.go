// Package ratelimit implements fixed-window request limiting keyed by an
// arbitrary string (typically "ip:<addr>").
//
// Two backends are provided: [NewRedisLimiter] shares counters across
// server instances through INCR/EXPIRE, and [NewMemoryLimiter] keeps them in
// process for single-instance deployments.
package ratelimit

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ratelimit_mock.go -package=mock

// Limiter decides whether one more hit on key fits into the current window.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) Decision
	Close()
}

// Decision is the outcome of a single [Limiter.Allow] call.
type Decision struct {
	Allowed   bool
	Count     int
	WindowEnd time.Time
}

// RetryAfter returns how long a rejected caller should wait, rounded to
// whole seconds and never below one second.
func (d Decision) RetryAfter(now time.Time) time.Duration {
	wait := d.WindowEnd.Sub(now)
	if wait < time.Second {
		return time.Second
	}
	return wait.Round(time.Second)
}
