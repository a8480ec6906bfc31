package phonelinks

import (
	"context"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/dto/requests"
	"phonelink-service/internal/pkg/dto/responses"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/queries"
	"phonelink-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type phoneLinkerUsecase struct {
	PhoneLinkRepository contracts.PhoneLinkRepository
	WhatsAppService     contracts.WhatsAppService
	Log                 *zap.Logger
	now                 func() time.Time
}

var (
	phoneLinkerUsecaseInstance contracts.PhoneLinkerUsecase
	oncePhoneLinkerUsecase     sync.Once
)

func NewPhoneLinkerUsecase(
	phoneLinkRepository contracts.PhoneLinkRepository,
	whatsAppService contracts.WhatsAppService,
	logger *zap.Logger,
) contracts.PhoneLinkerUsecase {
	oncePhoneLinkerUsecase.Do(func() {
		phoneLinkerUsecaseInstance = newPhoneLinkerUsecase(phoneLinkRepository, whatsAppService, logger)
	})
	return phoneLinkerUsecaseInstance
}

func newPhoneLinkerUsecase(
	phoneLinkRepository contracts.PhoneLinkRepository,
	whatsAppService contracts.WhatsAppService,
	logger *zap.Logger,
) *phoneLinkerUsecase {
	return &phoneLinkerUsecase{
		PhoneLinkRepository: phoneLinkRepository,
		WhatsAppService:     whatsAppService,
		Log:                 logger,
		now:                 func() time.Time { return time.Now().UTC() },
	}
}

func (uc *phoneLinkerUsecase) LinkPhone(ctx context.Context, request *requests.WhatsAppAuth) (*responses.LinkPhone, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("phoneLinkerUsecase.LinkPhone called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrMissingRequiredFields(err)
	}
	phoneNumber := strings.TrimSpace(request.SenderPhoneNumber)

	authCode, ok := utils.ParseAuthCommand(request.Message)
	if !ok {
		uc.Log.Info("phoneLinkerUsecase.LinkPhone message is not an auth command",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidAuthCommand(nil)
	}

	phoneLink, err := uc.PhoneLinkRepository.FindActiveByAuthCode(ctx, authCode)
	if err != nil {
		uc.Log.Error("phoneLinkerUsecase.LinkPhone error fetching phone link by auth code",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if phoneLink == nil {
		return nil, exceptions.ErrAuthCodeNotFound(nil, authCode)
	}

	now := uc.now()
	if phoneLink.IsExpired(now, constvars.AuthCodeValidity) {
		uc.Log.Info("phoneLinkerUsecase.LinkPhone auth code expired, deactivating",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPhoneLinkIDKey, phoneLink.ID),
		)
		if err := uc.PhoneLinkRepository.Deactivate(ctx, phoneLink.ID, now); err != nil {
			return nil, err
		}
		return nil, exceptions.ErrAuthCodeExpired(nil, authCode)
	}

	linked, err := uc.PhoneLinkRepository.LinkPhoneNumber(ctx, &contracts.LinkPhoneNumberInput{
		PhoneLinkID:  phoneLink.ID,
		AuthCode:     authCode,
		PhoneNumber:  phoneNumber,
		LinkedAt:     now,
		CreatedAfter: now.Add(-constvars.AuthCodeValidity),
	})
	if err != nil {
		if constraint, ok := utils.UniqueViolationConstraint(err); ok && constraint == queries.ConstraintPhoneLinksActivePhone {
			uc.Log.Info("phoneLinkerUsecase.LinkPhone phone number already linked",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPhoneNumberKey, phoneNumber),
			)
			return nil, exceptions.ErrPhoneNumberAlreadyLinked(err)
		}
		uc.Log.Error("phoneLinkerUsecase.LinkPhone error linking phone number",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrLinkPhoneNumber(err)
	}
	if linked == nil {
		return nil, exceptions.ErrAuthCodeAlreadyUsed(nil)
	}

	uc.sendConfirmation(ctx, phoneNumber)

	uc.Log.Info("phoneLinkerUsecase.LinkPhone succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneLinkIDKey, linked.ID),
		zap.String(constvars.LoggingUserIDKey, linked.UserID),
	)
	return &responses.LinkPhone{
		Success:     true,
		Message:     constvars.MessagePhoneLinked,
		UserID:      linked.UserID,
		PhoneNumber: phoneNumber,
	}, nil
}

func (uc *phoneLinkerUsecase) sendConfirmation(ctx context.Context, phoneNumber string) {
	if uc.WhatsAppService == nil {
		return
	}
	err := uc.WhatsAppService.SendMessage(ctx, &requests.WhatsAppMessage{
		To:      phoneNumber,
		Message: constvars.WhatsAppLinkConfirmation,
	})
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("phoneLinkerUsecase.LinkPhone failed to publish confirmation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func (uc *phoneLinkerUsecase) UnlinkPhone(ctx context.Context, userID string) (*responses.SuccessResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("phoneLinkerUsecase.UnlinkPhone called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	phoneLink, err := uc.PhoneLinkRepository.FindLinkedByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if phoneLink == nil {
		return nil, exceptions.ErrNoLinkedPhoneNumber(nil)
	}

	unlinked, err := uc.PhoneLinkRepository.UnlinkPhoneNumber(ctx, phoneLink.ID)
	if err != nil {
		uc.Log.Error("phoneLinkerUsecase.UnlinkPhone error unlinking phone number",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !unlinked {
		return nil, exceptions.ErrNoLinkedPhoneNumber(nil)
	}

	uc.Log.Info("phoneLinkerUsecase.UnlinkPhone succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneLinkIDKey, phoneLink.ID),
	)
	return &responses.SuccessResponse{
		Success: true,
		Message: constvars.MessagePhoneUnlinked,
	}, nil
}
