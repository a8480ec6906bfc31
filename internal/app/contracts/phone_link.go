package contracts

import (
	"context"
	"phonelink-service/internal/app/models"
	"phonelink-service/internal/pkg/dto/requests"
	"phonelink-service/internal/pkg/dto/responses"
	"time"
)

type AuthCodeUsecase interface {
	GetOrCreateAuthCode(ctx context.Context, userID string) (*responses.AuthCode, error)
	DeactivateAuthCodes(ctx context.Context, userID string) error
}

type PhoneLinkerUsecase interface {
	LinkPhone(ctx context.Context, request *requests.WhatsAppAuth) (*responses.LinkPhone, error)
	UnlinkPhone(ctx context.Context, userID string) (*responses.SuccessResponse, error)
}

type PhoneLookupUsecase interface {
	LookupPhone(ctx context.Context, phoneNumber string) (*responses.PhoneLookup, error)
	GetPhoneStatus(ctx context.Context, phoneNumber string) (*responses.PhoneStatus, error)
}

type CleanupUsecase interface {
	CleanupExpiredCodes(ctx context.Context, trigger string) (*responses.CleanupExpiredCodes, error)
}

type PhoneLinkRepository interface {
	FindActiveByUserID(ctx context.Context, userID string) (*models.PhoneLink, error)
	FindLinkedByUserID(ctx context.Context, userID string) (*models.PhoneLink, error)
	FindActiveByAuthCode(ctx context.Context, authCode int) (*models.PhoneLink, error)
	FindActiveByPhoneNumber(ctx context.Context, phoneNumber string) ([]models.PhoneLink, error)
	Create(ctx context.Context, phoneLink *models.PhoneLink) (*models.PhoneLink, error)
	// LinkPhoneNumber returns nil without error when the conditional update matched no row.
	LinkPhoneNumber(ctx context.Context, input *LinkPhoneNumberInput) (*models.PhoneLink, error)
	UnlinkPhoneNumber(ctx context.Context, phoneLinkID string) (bool, error)
	Deactivate(ctx context.Context, phoneLinkID string, at time.Time) error
	DeactivateAllByUserID(ctx context.Context, userID string, at time.Time) (int64, error)
	SoftDeleteExpired(ctx context.Context, createdBefore, at time.Time) ([]models.ExpiredAuthCode, error)
}

type LinkPhoneNumberInput struct {
	PhoneLinkID  string
	AuthCode     int
	PhoneNumber  string
	LinkedAt     time.Time
	CreatedAfter time.Time
}
