package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
}

func TestMemoryLimiter_AllowsUpToLimit(t *testing.T) {
	clock := newClock()
	l := newMemoryLimiter(clock.Now)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		d := l.Allow(ctx, "ip:1.2.3.4", 3, time.Minute)
		assert.True(t, d.Allowed, "hit %d", i)
		assert.Equal(t, i, d.Count)
	}

	d := l.Allow(ctx, "ip:1.2.3.4", 3, time.Minute)
	assert.False(t, d.Allowed)
	assert.Equal(t, clock.Now().Add(time.Minute), d.WindowEnd)
}

func TestMemoryLimiter_WindowResets(t *testing.T) {
	clock := newClock()
	l := newMemoryLimiter(clock.Now)
	ctx := context.Background()

	l.Allow(ctx, "k", 1, time.Minute)
	assert.False(t, l.Allow(ctx, "k", 1, time.Minute).Allowed)

	clock.Advance(time.Minute)
	d := l.Allow(ctx, "k", 1, time.Minute)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.Count)
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	l := newMemoryLimiter(newClock().Now)
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "ip:a", 1, time.Minute).Allowed)
	assert.True(t, l.Allow(ctx, "ip:b", 1, time.Minute).Allowed)
	assert.False(t, l.Allow(ctx, "ip:a", 1, time.Minute).Allowed)
}

func TestMemoryLimiter_NonPositiveLimitDisables(t *testing.T) {
	l := newMemoryLimiter(newClock().Now)

	for i := 0; i < 10; i++ {
		assert.True(t, l.Allow(context.Background(), "k", 0, time.Minute).Allowed)
	}
	assert.Empty(t, l.entries)
}

func TestMemoryLimiter_Cleanup(t *testing.T) {
	clock := newClock()
	l := newMemoryLimiter(clock.Now)
	ctx := context.Background()

	l.Allow(ctx, "old", 5, time.Second)
	l.Allow(ctx, "fresh", 5, time.Hour)

	clock.Advance(time.Minute)
	l.cleanup(clock.Now())

	assert.NotContains(t, l.entries, "old")
	assert.Contains(t, l.entries, "fresh")
}

func TestMemoryLimiter_ConcurrentHitsNeverExceedLimit(t *testing.T) {
	l := newMemoryLimiter(newClock().Now)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow(ctx, "k", 10, time.Minute).Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, allowed)
}

func TestMemoryLimiter_CloseIsIdempotent(t *testing.T) {
	l := NewMemoryLimiter()
	l.Close()
	l.Close()
}

func TestDecision_RetryAfter(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 30*time.Second, Decision{WindowEnd: now.Add(30 * time.Second)}.RetryAfter(now))
	assert.Equal(t, time.Second, Decision{WindowEnd: now.Add(100 * time.Millisecond)}.RetryAfter(now))
	assert.Equal(t, time.Second, Decision{WindowEnd: now.Add(-time.Minute)}.RetryAfter(now))
}
