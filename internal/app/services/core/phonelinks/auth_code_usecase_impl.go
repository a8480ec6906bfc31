package phonelinks

import (
	"context"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/app/models"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/dto/responses"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/queries"
	"phonelink-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authCodeUsecase struct {
	PhoneLinkRepository contracts.PhoneLinkRepository
	Log                 *zap.Logger
	generateCode        func() (int, error)
	now                 func() time.Time
}

var (
	authCodeUsecaseInstance contracts.AuthCodeUsecase
	onceAuthCodeUsecase     sync.Once
)

func NewAuthCodeUsecase(
	phoneLinkRepository contracts.PhoneLinkRepository,
	logger *zap.Logger,
) contracts.AuthCodeUsecase {
	onceAuthCodeUsecase.Do(func() {
		authCodeUsecaseInstance = newAuthCodeUsecase(phoneLinkRepository, logger)
	})
	return authCodeUsecaseInstance
}

func newAuthCodeUsecase(phoneLinkRepository contracts.PhoneLinkRepository, logger *zap.Logger) *authCodeUsecase {
	return &authCodeUsecase{
		PhoneLinkRepository: phoneLinkRepository,
		Log:                 logger,
		generateCode:        utils.GenerateAuthCode,
		now:                 func() time.Time { return time.Now().UTC() },
	}
}

func (uc *authCodeUsecase) GetOrCreateAuthCode(ctx context.Context, userID string) (*responses.AuthCode, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authCodeUsecase.GetOrCreateAuthCode called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	existing, err := uc.PhoneLinkRepository.FindActiveByUserID(ctx, userID)
	if err != nil {
		uc.Log.Error("authCodeUsecase.GetOrCreateAuthCode error fetching active phone link",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		uc.Log.Info("authCodeUsecase.GetOrCreateAuthCode returning existing auth code",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPhoneLinkIDKey, existing.ID),
		)
		response := existing.ConvertIntoAuthCodeResponse()
		return &response, nil
	}

	for attempt := 1; attempt <= constvars.AuthCodeMaxGenerateAttempts; attempt++ {
		code, err := uc.generateCode()
		if err != nil {
			uc.Log.Error("authCodeUsecase.GetOrCreateAuthCode error generating auth code",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrGenerateAuthCode(err)
		}

		created, err := uc.PhoneLinkRepository.Create(ctx, &models.PhoneLink{
			ID:        uuid.NewString(),
			UserID:    userID,
			AuthCode:  code,
			IsActive:  true,
			CreatedAt: uc.now(),
		})
		if err == nil {
			uc.Log.Info("authCodeUsecase.GetOrCreateAuthCode succeeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPhoneLinkIDKey, created.ID),
				zap.Int(constvars.LoggingAttemptKey, attempt),
			)
			response := created.ConvertIntoAuthCodeResponse()
			return &response, nil
		}

		constraint, isConflict := utils.UniqueViolationConstraint(err)
		switch {
		case isConflict && constraint == queries.ConstraintPhoneLinksActiveCode:
			uc.Log.Warn("authCodeUsecase.GetOrCreateAuthCode auth code collision, retrying",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingAttemptKey, attempt),
			)
			continue
		case isConflict && constraint == queries.ConstraintPhoneLinksActiveUser:
			return uc.readConcurrentlyIssued(ctx, userID)
		default:
			uc.Log.Error("authCodeUsecase.GetOrCreateAuthCode error creating phone link",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	uc.Log.Error("authCodeUsecase.GetOrCreateAuthCode exhausted generation attempts",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAttemptKey, constvars.AuthCodeMaxGenerateAttempts),
	)
	return nil, exceptions.ErrGenerateAuthCode(nil)
}

// readConcurrentlyIssued returns the row a parallel request created for the same user.
func (uc *authCodeUsecase) readConcurrentlyIssued(ctx context.Context, userID string) (*responses.AuthCode, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authCodeUsecase.GetOrCreateAuthCode lost issuance race, re-reading",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	existing, err := uc.PhoneLinkRepository.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrGenerateAuthCode(nil)
	}
	response := existing.ConvertIntoAuthCodeResponse()
	return &response, nil
}

func (uc *authCodeUsecase) DeactivateAuthCodes(ctx context.Context, userID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authCodeUsecase.DeactivateAuthCodes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	count, err := uc.PhoneLinkRepository.DeactivateAllByUserID(ctx, userID, uc.now())
	if err != nil {
		uc.Log.Error("authCodeUsecase.DeactivateAuthCodes error deactivating phone links",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authCodeUsecase.DeactivateAuthCodes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCountKey, count),
	)
	return nil
}
