package middlewares

import (
	"context"
	"net/http"
	"phonelink-service/internal/app/models"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

func withSessionPrincipal(ctx context.Context, identity *models.Identity) context.Context {
	ctx = context.WithValue(ctx, constvars.CONTEXT_AUTH_METHOD_KEY, constvars.AuthMethodSession)
	return context.WithValue(ctx, constvars.CONTEXT_USER_ID_KEY, identity.UserID)
}

// RequireUserSession verifies the identity-provider bearer token and stores the
// caller's user id in the context.
func (m *Middlewares) RequireUserSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := utils.BearerToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAuthorizationHeaderRequired(nil))
			return
		}

		identity, err := m.TokenVerifier.VerifyAccessToken(r.Context(), token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withSessionPrincipal(r.Context(), identity)))
	})
}

// APIKeyOrSession admits either the shared API key or a user session. A
// bearer token equal to the API key counts as the API key.
func (m *Middlewares) APIKeyOrSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		expected := m.InternalConfig.AccessGuard.WebhookAPIKey

		if headerKey := strings.TrimSpace(r.Header.Get(constvars.HeaderXAPIKey)); headerKey != "" {
			if expected == "" {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerConfiguration(nil, constvars.ErrDevAPIKeyNotConfigured))
				return
			}
			if !utils.SecureCompare(headerKey, expected) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyInvalid(nil))
				return
			}
			next.ServeHTTP(w, r.WithContext(withAPIKeyPrincipal(r.Context())))
			return
		}

		token := utils.BearerToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyMissing(nil))
			return
		}
		if expected != "" && utils.SecureCompare(token, expected) {
			next.ServeHTTP(w, r.WithContext(withAPIKeyPrincipal(r.Context())))
			return
		}

		identity, err := m.TokenVerifier.VerifyAccessToken(r.Context(), token)
		if err != nil {
			m.Log.Info("Middlewares.APIKeyOrSession bearer is neither API key nor valid session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withSessionPrincipal(r.Context(), identity)))
	})
}
