package contracts

import (
	"context"
	"phonelink-service/internal/app/models"
)

// TokenVerifier validates identity provider access tokens.
type TokenVerifier interface {
	VerifyAccessToken(ctx context.Context, token string) (*models.Identity, error)
}
