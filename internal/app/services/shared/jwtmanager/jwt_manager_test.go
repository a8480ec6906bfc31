package jwtmanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"phonelink-service/internal/app/config"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "identity-secret"

func signToken(t *testing.T, secret string, claims AccessTokenClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newManager(secret, audience string) *JWTManager {
	cfg := &config.InternalConfig{}
	cfg.Identity.JWTSecret = secret
	cfg.Identity.JWTAudience = audience
	return NewJWTManager(cfg, zap.NewNop()).(*JWTManager)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr.StatusCode
}

func TestJWTManager_VerifyAccessToken(t *testing.T) {
	ctx := context.Background()
	valid := AccessTokenClaims{
		Email: "ada@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "9b2f6a1e-3c4d-4e5f-8a7b-1c2d3e4f5a6b",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	t.Run("valid token", func(t *testing.T) {
		identity, err := newManager(testSecret, "authenticated").VerifyAccessToken(ctx, signToken(t, testSecret, valid))
		require.NoError(t, err)
		assert.Equal(t, "9b2f6a1e-3c4d-4e5f-8a7b-1c2d3e4f5a6b", identity.UserID)
		assert.Equal(t, "ada@example.com", identity.Email)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := newManager(testSecret, "").VerifyAccessToken(ctx, signToken(t, "other", valid))
		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("expired", func(t *testing.T) {
		expired := valid
		expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		_, err := newManager(testSecret, "").VerifyAccessToken(ctx, signToken(t, testSecret, expired))
		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("audience mismatch", func(t *testing.T) {
		_, err := newManager(testSecret, "service-role").VerifyAccessToken(ctx, signToken(t, testSecret, valid))
		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("missing subject", func(t *testing.T) {
		anonymous := valid
		anonymous.Subject = ""
		_, err := newManager(testSecret, "").VerifyAccessToken(ctx, signToken(t, testSecret, anonymous))
		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("subject is not a uuid", func(t *testing.T) {
		nonUUID := valid
		nonUUID.Subject = "user-1"
		_, err := newManager(testSecret, "").VerifyAccessToken(ctx, signToken(t, testSecret, nonUUID))
		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("secret not configured", func(t *testing.T) {
		_, err := newManager("", "").VerifyAccessToken(ctx, "anything")
		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
	})
}
