package jwtmanager

import (
	"context"
	"fmt"
	"phonelink-service/internal/app/config"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/app/models"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/exceptions"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccessTokenClaims mirrors the claims issued by the identity provider.
type AccessTokenClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTManager verifies HS256 access tokens signed with the identity provider secret.
type JWTManager struct {
	log      *zap.Logger
	secret   []byte
	audience string
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) contracts.TokenVerifier {
	return &JWTManager{
		log:      log,
		secret:   []byte(strings.TrimSpace(cfg.Identity.JWTSecret)),
		audience: strings.TrimSpace(cfg.Identity.JWTAudience),
	}
}

func (j *JWTManager) VerifyAccessToken(ctx context.Context, token string) (*models.Identity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if len(j.secret) == 0 {
		return nil, exceptions.ErrServerConfiguration(nil, constvars.ErrDevIdentitySecretNotConfigured)
	}
	if strings.TrimSpace(token) == "" {
		return nil, exceptions.ErrAuthorizationHeaderRequired(nil)
	}

	claims := &AccessTokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%s: %v", constvars.ErrDevAuthSigningMethod, t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !parsed.Valid {
		j.log.Info("JWTManager.VerifyAccessToken rejected token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenInvalid(err)
	}

	if j.audience != "" && !claims.VerifyAudience(j.audience, true) {
		j.log.Info("JWTManager.VerifyAccessToken audience mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrTokenInvalid(nil)
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return nil, exceptions.ErrTokenMissingSubject(nil)
	}
	// user ids are stored in uuid columns
	if _, err := uuid.Parse(claims.Subject); err != nil {
		j.log.Info("JWTManager.VerifyAccessToken subject is not a uuid",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrTokenInvalid(err)
	}

	return &models.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
	}, nil
}
