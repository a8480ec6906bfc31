package locker

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

const leaderKey = "cleanup:leader"

func setupLockService(t *testing.T) (*lockService, *miniredis.Miniredis) {
	t.Helper()
	m := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return newLockService(sharedredis.NewRedisRepository(client), zap.NewNop()), m
}

func TestLockService_TryLockAndUnlock(t *testing.T) {
	svc, m := setupLockService(t)
	ctx := context.Background()

	acquired, token, err := svc.TryLock(ctx, leaderKey, time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
	assert.NotEmpty(t, token)

	acquired, _, err = svc.TryLock(ctx, leaderKey, time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired, "second owner must not get the lease")

	require.NoError(t, svc.Unlock(ctx, leaderKey, token))
	assert.False(t, m.Exists(leaderKey))
}

func TestLockService_ForeignTokenLeavesLease(t *testing.T) {
	svc, m := setupLockService(t)
	ctx := context.Background()

	acquired, token, err := svc.TryLock(ctx, leaderKey, time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	assert.Error(t, svc.Unlock(ctx, leaderKey, "someone-else"))
	require.True(t, m.Exists(leaderKey))

	stored, err := m.Get(leaderKey)
	require.NoError(t, err)
	assert.Equal(t, `"`+token+`"`, stored)
}

func TestLockService_ExpiredLeaseTakenOver(t *testing.T) {
	svc, m := setupLockService(t)
	ctx := context.Background()

	acquired, staleToken, err := svc.TryLock(ctx, leaderKey, time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	m.FastForward(2 * time.Second)
	assert.NoError(t, svc.Unlock(ctx, leaderKey, staleToken), "an expired lease unlocks as a no-op")

	acquired, freshToken, err := svc.TryLock(ctx, leaderKey, time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	assert.Error(t, svc.Unlock(ctx, leaderKey, staleToken), "the stale holder cannot release the new lease")
	assert.True(t, m.Exists(leaderKey))
	require.NoError(t, svc.Unlock(ctx, leaderKey, freshToken))
	assert.False(t, m.Exists(leaderKey))
}
