package middlewares

import (
	"context"
	"net/http"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

// presentedAPIKey reads X-API-Key, falling back to the bearer token.
func presentedAPIKey(r *http.Request) string {
	if apiKey := strings.TrimSpace(r.Header.Get(constvars.HeaderXAPIKey)); apiKey != "" {
		return apiKey
	}
	return utils.BearerToken(r)
}

func withAPIKeyPrincipal(ctx context.Context) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_AUTH_METHOD_KEY, constvars.AuthMethodAPIKey)
}

// APIKeyAuth requires the shared webhook API key.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		expected := m.InternalConfig.AccessGuard.WebhookAPIKey
		if expected == "" {
			m.Log.Error("Middlewares.APIKeyAuth API key is not configured",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerConfiguration(nil, constvars.ErrDevAPIKeyNotConfigured))
			return
		}

		apiKey := presentedAPIKey(r)
		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyMissing(nil))
			return
		}
		if !utils.SecureCompare(apiKey, expected) {
			m.Log.Warn("Middlewares.APIKeyAuth invalid API key",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingClientIPKey, utils.ClientIP(r)),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyInvalid(nil))
			return
		}

		next.ServeHTTP(w, r.WithContext(withAPIKeyPrincipal(r.Context())))
	})
}
