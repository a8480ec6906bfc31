package contracts

import (
	"context"
	"phonelink-service/internal/app/models"
)

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Profile, error)
}
