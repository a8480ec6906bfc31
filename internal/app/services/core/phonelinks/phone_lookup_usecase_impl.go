package phonelinks

import (
	"context"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/dto/responses"
	"phonelink-service/internal/pkg/exceptions"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type phoneLookupUsecase struct {
	PhoneLinkRepository contracts.PhoneLinkRepository
	ProfileRepository   contracts.ProfileRepository
	Log                 *zap.Logger
}

var (
	phoneLookupUsecaseInstance contracts.PhoneLookupUsecase
	oncePhoneLookupUsecase     sync.Once
)

func NewPhoneLookupUsecase(
	phoneLinkRepository contracts.PhoneLinkRepository,
	profileRepository contracts.ProfileRepository,
	logger *zap.Logger,
) contracts.PhoneLookupUsecase {
	oncePhoneLookupUsecase.Do(func() {
		phoneLookupUsecaseInstance = &phoneLookupUsecase{
			PhoneLinkRepository: phoneLinkRepository,
			ProfileRepository:   profileRepository,
			Log:                 logger,
		}
	})
	return phoneLookupUsecaseInstance
}

func (uc *phoneLookupUsecase) LookupPhone(ctx context.Context, phoneNumber string) (*responses.PhoneLookup, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("phoneLookupUsecase.LookupPhone called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneNumberKey, phoneNumber),
	)

	if strings.TrimSpace(phoneNumber) == "" {
		return nil, exceptions.ErrPhoneNumberRequired(nil)
	}

	phoneLinks, err := uc.PhoneLinkRepository.FindActiveByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		uc.Log.Error("phoneLookupUsecase.LookupPhone error fetching phone links",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if len(phoneLinks) == 0 {
		return &responses.PhoneLookup{IsLinked: false}, nil
	}

	phoneLink := phoneLinks[0]
	authCode := phoneLink.AuthCode
	linkedAt := phoneLink.LinkedSince()

	uc.Log.Info("phoneLookupUsecase.LookupPhone succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneLinkIDKey, phoneLink.ID),
	)
	return &responses.PhoneLookup{
		IsLinked: true,
		UserID:   &phoneLink.UserID,
		AuthCode: &authCode,
		LinkedAt: &linkedAt,
	}, nil
}

func (uc *phoneLookupUsecase) GetPhoneStatus(ctx context.Context, phoneNumber string) (*responses.PhoneStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("phoneLookupUsecase.GetPhoneStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return nil, exceptions.ErrSenderPhoneNumberRequired(nil)
	}

	phoneLinks, err := uc.PhoneLinkRepository.FindActiveByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		uc.Log.Error("phoneLookupUsecase.GetPhoneStatus error fetching phone links",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if len(phoneLinks) == 0 {
		return &responses.PhoneStatus{
			IsLinked:    false,
			PhoneNumber: phoneNumber,
			Message:     constvars.MessagePhoneNotLinked,
			Status:      constvars.PhoneLinkStatusUnlinked,
		}, nil
	}

	phoneLink := phoneLinks[0]
	response := &responses.PhoneStatus{
		IsLinked:    true,
		UserID:      &phoneLink.UserID,
		PhoneNumber: phoneNumber,
		Message:     constvars.MessagePhoneIsLinked,
		Status:      constvars.PhoneLinkStatusLinked,
		PhoneStatusLinked: &responses.PhoneStatusLinked{
			PhoneLinkInfo: &responses.PhoneLinkInfo{LinkedAt: phoneLink.LinkedSince()},
		},
	}

	if uc.ProfileRepository != nil {
		profile, err := uc.ProfileRepository.FindByUserID(ctx, phoneLink.UserID)
		if err != nil {
			uc.Log.Warn("phoneLookupUsecase.GetPhoneStatus profile enrichment failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, phoneLink.UserID),
				zap.Error(err),
			)
		} else if profile != nil {
			response.UserInfo = profile.ConvertIntoUserInfo()
		}
	}

	uc.Log.Info("phoneLookupUsecase.GetPhoneStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneLinkIDKey, phoneLink.ID),
	)
	return response, nil
}
