package contracts

import (
	"context"
	"phonelink-service/internal/app/models"
	"time"
)

// RateLimiter is a fixed-window counter. The window opens on the first hit for
// a key and resets when it expires.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitDecision, error)
}
