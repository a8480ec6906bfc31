package middlewares

import (
	"net/http"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

// VerifySignature checks the HMAC-SHA256 of the buffered body. It must run
// after BodyBuffer.
func (m *Middlewares) VerifySignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		secret := m.InternalConfig.AccessGuard.WebhookSecret
		if secret == "" {
			m.Log.Error("Middlewares.VerifySignature webhook secret is not configured",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerConfiguration(nil, constvars.ErrDevWebhookSecretNotConfigured))
			return
		}

		signature := strings.TrimSpace(r.Header.Get(constvars.HeaderXSignature256))
		if signature == "" {
			signature = strings.TrimSpace(r.Header.Get(constvars.HeaderXHubSignature256))
		}
		if signature == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSignatureMissing(nil))
			return
		}

		if !utils.VerifyHMACSignature(secret, RawBody(r), signature) {
			m.Log.Warn("Middlewares.VerifySignature signature mismatch",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingClientIPKey, utils.ClientIP(r)),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSignatureInvalid(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
