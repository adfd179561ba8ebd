// Package ratelimit provides token bucket limiters for the mutating routes.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter takes one token from the bucket identified by key.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// Config sizes a token bucket: Capacity tokens, one token added back every RefillInterval.
type Config struct {
	Capacity       int
	RefillInterval time.Duration
	Prefix         string
}
