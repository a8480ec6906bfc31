package middlewares

import (
	"math"
	"net/http"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/utils"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// RateLimit applies a fixed-window limit per group and forwarded client.
// Limiter backend failures let the request through.
func (m *Middlewares) RateLimit(group string, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m.RateLimiter == nil || limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			key := group + ":" + utils.RateLimitClientID(r)

			decision, err := m.RateLimiter.Allow(r.Context(), key, limit, window)
			if err != nil {
				m.Log.Warn("Middlewares.RateLimit limiter unavailable, allowing request",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingRateLimitKeyKey, key),
					zap.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set(constvars.HeaderXRateLimitLimit, strconv.Itoa(limit))
			w.Header().Set(constvars.HeaderXRateLimitRemain, strconv.Itoa(decision.Remaining))

			if !decision.Allowed {
				retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(retryAfter))

				m.Log.Warn("Middlewares.RateLimit limit exceeded",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingRateLimitKeyKey, key),
					zap.Int(constvars.LoggingRateLimitCountKey, decision.Count),
					zap.Duration(constvars.LoggingRetryAfterKey, decision.RetryAfter),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRateLimitExceeded(nil, key))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
