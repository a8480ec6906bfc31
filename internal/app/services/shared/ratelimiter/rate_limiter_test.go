package ratelimiter

import (
	"context"
	"testing"
	"time"

	sharedredis "phonelink-service/internal/app/services/shared/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRedisLimiter(t *testing.T) (*miniredis.Miniredis, *redisLimiter) {
	t.Helper()
	m := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := sharedredis.NewRedisRepository(client)
	return m, &redisLimiter{redis: repo, log: zap.NewNop()}
}

func TestRedisLimiter_DeniesAfterLimitAndResets(t *testing.T) {
	m, limiter := setupRedisLimiter(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		decision, err := limiter.Allow(ctx, "phone-status:203.0.113.7", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, decision.Allowed, "request %d should be admitted", i)
	}

	decision, err := limiter.Allow(ctx, "phone-status:203.0.113.7", 5, time.Minute)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, 6, decision.Count)
	assert.Greater(t, decision.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, decision.RetryAfter, time.Minute)

	m.FastForward(61 * time.Second)

	decision, err = limiter.Allow(ctx, "phone-status:203.0.113.7", 5, time.Minute)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, 1, decision.Count)
}

func TestRedisLimiter_WindowAnchoredOnFirstHit(t *testing.T) {
	m, limiter := setupRedisLimiter(t)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "webhook:a", 10, time.Minute)
	require.NoError(t, err)
	m.FastForward(30 * time.Second)
	_, err = limiter.Allow(ctx, "webhook:a", 10, time.Minute)
	require.NoError(t, err)

	ttl := m.TTL(BuildKey("webhook:a"))
	assert.LessOrEqual(t, ttl, 30*time.Second, "later hits must not extend the window")
}

func TestRedisLimiter_ReturnsErrorWhenRedisDown(t *testing.T) {
	m, limiter := setupRedisLimiter(t)
	m.Close()

	decision, err := limiter.Allow(context.Background(), "webhook:a", 10, time.Minute)
	assert.Error(t, err)
	assert.Nil(t, decision)
}

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "ratelimit:webhook:203.0.113.7", BuildKey(" Webhook:203.0.113.7 "))
}
