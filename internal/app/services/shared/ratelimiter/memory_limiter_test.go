package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ current time.Time }

func (c *fakeClock) now() time.Time { return c.current }

func TestMemoryLimiter_FixedWindow(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	limiter := newMemoryLimiter(clock.now)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		decision, err := limiter.Allow(ctx, "webhook:203.0.113.7", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, decision.Allowed, "request %d should be admitted", i)
		assert.Equal(t, 3-i, decision.Remaining)
	}

	clock.current = clock.current.Add(20 * time.Second)
	decision, err := limiter.Allow(ctx, "webhook:203.0.113.7", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, decision.Allowed, "fourth request inside the window is denied")
	assert.Equal(t, 0, decision.Remaining)
	assert.Equal(t, 40*time.Second, decision.RetryAfter)

	clock.current = clock.current.Add(40 * time.Second)
	decision, err = limiter.Allow(ctx, "webhook:203.0.113.7", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, decision.Allowed, "a new window starts once the old one resets")
	assert.Equal(t, 1, decision.Count)
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	limiter := newMemoryLimiter(clock.now)
	ctx := context.Background()

	decision, _ := limiter.Allow(ctx, "a", 1, time.Minute)
	assert.True(t, decision.Allowed)
	decision, _ = limiter.Allow(ctx, "a", 1, time.Minute)
	assert.False(t, decision.Allowed)

	decision, _ = limiter.Allow(ctx, "b", 1, time.Minute)
	assert.True(t, decision.Allowed)
}

func TestMemoryLimiter_SweepsExpiredWindows(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	limiter := newMemoryLimiter(clock.now)
	ctx := context.Background()

	_, _ = limiter.Allow(ctx, "a", 5, time.Second)
	_, _ = limiter.Allow(ctx, "b", 5, time.Second)
	clock.current = clock.current.Add(2 * time.Second)
	_, _ = limiter.Allow(ctx, "c", 5, time.Second)

	assert.Len(t, limiter.windows, 1)
}

func TestMemoryLimiter_ZeroLimitAdmits(t *testing.T) {
	limiter := NewMemoryLimiter()
	decision, err := limiter.Allow(context.Background(), "a", 0, time.Minute)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}
