package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxLocalKeys bounds the bucket map; idle buckets are swept past it.
const maxLocalKeys = 10000

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Local is an in-process token bucket per key, used when Redis is unavailable.
type Local struct {
	mu      sync.Mutex
	cfg     Config
	buckets map[string]*localBucket
	now     func() time.Time
}

// NewLocal returns a Limiter that keeps bucket state in memory.
func NewLocal(cfg Config) *Local {
	return &Local{cfg: cfg, buckets: make(map[string]*localBucket), now: time.Now}
}

func (l *Local) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		if len(l.buckets) >= maxLocalKeys {
			l.sweep(now)
		}
		b = &localBucket{limiter: rate.NewLimiter(rate.Every(l.cfg.RefillInterval), l.cfg.Capacity)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	d := Decision{Limit: l.cfg.Capacity}
	r := b.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		d.RetryAfter = delay
	} else {
		d.Allowed = true
	}
	if tokens := b.limiter.TokensAt(now); tokens > 0 {
		d.Remaining = int(tokens)
	}
	return d, nil
}

// sweep drops buckets idle long enough to have refilled completely.
func (l *Local) sweep(now time.Time) {
	full := l.cfg.RefillInterval * time.Duration(l.cfg.Capacity)
	for k, b := range l.buckets {
		if now.Sub(b.lastSeen) > full {
			delete(l.buckets, k)
		}
	}
}
