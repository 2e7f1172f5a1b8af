package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestLimiter(window time.Duration, max int) (*Limiter, *clock) {
	c := &clock{t: time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)}
	l := NewLimiter(window, max)
	l.now = c.now
	return l, c
}

func TestLimiter_Allow(t *testing.T) {
	limiter, c := newTestLimiter(time.Hour, 3)

	for i := 0; i < 3; i++ {
		ok, _ := limiter.Allow("10.0.0.1")
		assert.True(t, ok, "request %d should be allowed", i+1)
	}

	c.t = c.t.Add(20 * time.Minute)
	ok, retry := limiter.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, 40*time.Minute, retry)

	// other keys are independent
	ok, _ = limiter.Allow("10.0.0.2")
	assert.True(t, ok)

	c.t = c.t.Add(40 * time.Minute)
	ok, _ = limiter.Allow("10.0.0.1")
	assert.True(t, ok, "request after window expiry should be allowed")
}

func TestLimiter_Remaining(t *testing.T) {
	limiter, c := newTestLimiter(time.Minute, 5)

	assert.Equal(t, 5, limiter.Remaining("k"))
	limiter.Allow("k")
	limiter.Allow("k")
	assert.Equal(t, 3, limiter.Remaining("k"))

	c.t = c.t.Add(time.Minute)
	assert.Equal(t, 5, limiter.Remaining("k"))
}

func TestLimiter_Sweep(t *testing.T) {
	limiter, c := newTestLimiter(time.Minute, 1)
	limiter.Allow("a")
	c.t = c.t.Add(30 * time.Second)
	limiter.Allow("b")

	c.t = c.t.Add(30 * time.Second)
	limiter.Sweep()

	assert.NotContains(t, limiter.counters, "a")
	assert.Contains(t, limiter.counters, "b")
}

func TestLimiter_RunStops(t *testing.T) {
	limiter := NewLimiter(time.Minute, 1)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		limiter.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
