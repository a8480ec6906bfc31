package middlewares

import (
	"net/http"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// RequireCleanupToken guards the maintenance sweep endpoint.
func (m *Middlewares) RequireCleanupToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		expected := m.InternalConfig.AccessGuard.CleanupToken
		if expected == "" {
			m.Log.Error("Middlewares.RequireCleanupToken cleanup token is not configured",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerConfiguration(nil, constvars.ErrDevCleanupTokenNotConfigured))
			return
		}

		token := utils.BearerToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAuthorizationHeaderRequired(nil))
			return
		}
		if !utils.SecureCompare(token, expected) {
			m.Log.Warn("Middlewares.RequireCleanupToken invalid token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingClientIPKey, utils.ClientIP(r)),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrCleanupTokenInvalid(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
