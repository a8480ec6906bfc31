package ratelimiter

import (
	"context"
	"fmt"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/app/models"
	"phonelink-service/internal/pkg/constvars"
	"strings"
	"time"

	"go.uber.org/zap"
)

// redisLimiter keeps fixed-window counters in Redis so every instance shares them.
type redisLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewRedisLimiter(redis contracts.RedisRepository, log *zap.Logger) contracts.RateLimiter {
	return &redisLimiter{redis: redis, log: log}
}

func (l *redisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitDecision, error) {
	if limit <= 0 {
		return &models.RateLimitDecision{Allowed: true}, nil
	}
	if window <= 0 {
		window = time.Minute
	}

	redisKey := BuildKey(key)
	count, ttl, err := l.redis.IncrementWithTTL(ctx, redisKey, window)
	if err != nil {
		l.log.Error("redisLimiter.Allow increment failed",
			zap.String(constvars.LoggingRateLimitKeyKey, redisKey),
			zap.Error(err),
		)
		return nil, err
	}

	return decide(count, limit, ttl), nil
}

func BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", constvars.RateLimitKeyPrefix, strings.ToLower(strings.TrimSpace(key)))
}

func decide(count, limit int, untilReset time.Duration) *models.RateLimitDecision {
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	decision := &models.RateLimitDecision{
		Allowed:   count <= limit,
		Count:     count,
		Remaining: remaining,
	}
	if !decision.Allowed {
		decision.RetryAfter = untilReset
	}
	return decision
}
