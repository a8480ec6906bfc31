package middlewares

import (
	"net/http"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// IPAllowlist admits every caller when ALLOWED_IPS is empty.
func (m *Middlewares) IPAllowlist(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed := m.InternalConfig.AccessGuard.AllowedIPs
		if len(allowed) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		clientIP := utils.ClientIP(r)
		for _, ip := range allowed {
			if ip == clientIP {
				next.ServeHTTP(w, r)
				return
			}
		}

		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		m.Log.Warn("Middlewares.IPAllowlist rejected client",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClientIPKey, clientIP),
		)
		utils.BuildErrorResponse(m.Log, w, exceptions.ErrIPNotAllowed(nil, clientIP))
	})
}
