package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter implements a simple in-memory fixed window rate limiter
type Limiter struct {
	mu       sync.RWMutex
	counters map[string]*counter
	window   time.Duration
	max      int
	now      func() time.Time
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a new rate limiter allowing max requests per key in each window
func NewLimiter(window time.Duration, max int) *Limiter {
	return &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
		now:      time.Now,
	}
}

// Allow records a request for key. When it is refused the returned duration is the
// time left until the key's window resets.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, exists := l.counters[key]

	if !exists || !now.Before(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true, 0
	}

	if c.count >= l.max {
		return false, c.expiresAt.Sub(now)
	}

	c.count++
	return true, 0
}

// Remaining returns the number of remaining requests for the given key
func (l *Limiter) Remaining(key string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	c, exists := l.counters[key]
	if !exists || !l.now().Before(c.expiresAt) {
		return l.max
	}

	remaining := l.max - c.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Sweep removes expired counters.
func (l *Limiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, c := range l.counters {
		if !now.Before(c.expiresAt) {
			delete(l.counters, key)
		}
	}
}

// Run sweeps expired counters every minute until ctx is done.
func (l *Limiter) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}
