package ratelimiter

import (
	"context"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/app/models"
	"sync"
	"time"
)

type window struct {
	count   int
	resetAt time.Time
}

// memoryLimiter is the single-process variant. Counters are lost on restart
// and are not shared between instances.
type memoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

func NewMemoryLimiter() contracts.RateLimiter {
	return newMemoryLimiter(time.Now)
}

func newMemoryLimiter(now func() time.Time) *memoryLimiter {
	return &memoryLimiter{
		windows: make(map[string]*window),
		now:     now,
	}
}

func (l *memoryLimiter) Allow(ctx context.Context, key string, limit int, windowSize time.Duration) (*models.RateLimitDecision, error) {
	if limit <= 0 {
		return &models.RateLimitDecision{Allowed: true}, nil
	}
	if windowSize <= 0 {
		windowSize = time.Minute
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		l.sweep(now)
		w = &window{resetAt: now.Add(windowSize)}
		l.windows[key] = w
	}
	w.count++

	return decide(w.count, limit, w.resetAt.Sub(now)), nil
}

// sweep drops expired windows so idle clients do not accumulate.
func (l *memoryLimiter) sweep(now time.Time) {
	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
		}
	}
}
