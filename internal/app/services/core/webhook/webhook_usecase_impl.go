package webhook

import (
	"context"
	"errors"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/dto/requests"
	"phonelink-service/internal/pkg/dto/responses"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type webhookUsecase struct {
	PhoneLinkerUsecase contracts.PhoneLinkerUsecase
	PhoneLookupUsecase contracts.PhoneLookupUsecase
	WhatsAppService    contracts.WhatsAppService
	Log                *zap.Logger
	now                func() time.Time
}

var (
	webhookUsecaseInstance contracts.WebhookUsecase
	onceWebhookUsecase     sync.Once
)

func NewWebhookUsecase(
	phoneLinkerUsecase contracts.PhoneLinkerUsecase,
	phoneLookupUsecase contracts.PhoneLookupUsecase,
	whatsAppService contracts.WhatsAppService,
	logger *zap.Logger,
) contracts.WebhookUsecase {
	onceWebhookUsecase.Do(func() {
		webhookUsecaseInstance = newWebhookUsecase(phoneLinkerUsecase, phoneLookupUsecase, whatsAppService, logger)
	})
	return webhookUsecaseInstance
}

func newWebhookUsecase(
	phoneLinkerUsecase contracts.PhoneLinkerUsecase,
	phoneLookupUsecase contracts.PhoneLookupUsecase,
	whatsAppService contracts.WhatsAppService,
	logger *zap.Logger,
) *webhookUsecase {
	return &webhookUsecase{
		PhoneLinkerUsecase: phoneLinkerUsecase,
		PhoneLookupUsecase: phoneLookupUsecase,
		WhatsAppService:    whatsAppService,
		Log:                logger,
		now:                func() time.Time { return time.Now().UTC() },
	}
}

func (uc *webhookUsecase) HandleMessage(ctx context.Context, message *requests.WebhookMessage) (interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("webhookUsecase.HandleMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageTypeKey, message.Type),
	)

	phoneNumber := strings.TrimSpace(message.SenderPhoneNumber)
	if strings.TrimSpace(message.Message) == "" || phoneNumber == "" {
		return nil, exceptions.ErrWebhookMissingRequiredFields(nil)
	}

	if utils.IsAuthMessage(message.Message, message.Type) {
		return uc.handleAuth(ctx, message, phoneNumber)
	}
	return uc.handleRegular(ctx, message, phoneNumber)
}

func (uc *webhookUsecase) handleAuth(ctx context.Context, message *requests.WebhookMessage, phoneNumber string) (interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	date := message.Date
	if strings.TrimSpace(date) == "" {
		date = uc.now().Format(time.RFC3339)
	}

	result, err := uc.PhoneLinkerUsecase.LinkPhone(ctx, &requests.WhatsAppAuth{
		Date:              date,
		Message:           utils.NormalizeAuthMessage(message.Message, message.Type),
		SenderPhoneNumber: phoneNumber,
	})
	if err != nil {
		uc.Log.Info("webhookUsecase.HandleMessage auth dispatch failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		var customErr *exceptions.CustomError
		if !errors.As(err, &customErr) {
			return nil, err
		}
		failure := &responses.WebhookAuthFailure{
			Type:    constvars.WebhookResultTypeAuth,
			Success: false,
			Error:   customErr.ClientError,
			Message: customErr.ClientMessage,
		}
		if customErr.StatusCode < constvars.StatusInternalServerError {
			failure.Details = customErr.Details
		}
		return failure, nil
	}

	uc.Log.Info("webhookUsecase.HandleMessage auth dispatch succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, result.UserID),
	)
	return &responses.WebhookAuth{
		Type:      constvars.WebhookResultTypeAuth,
		LinkPhone: result,
	}, nil
}

func (uc *webhookUsecase) handleRegular(ctx context.Context, message *requests.WebhookMessage, phoneNumber string) (interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	lookup, err := uc.PhoneLookupUsecase.LookupPhone(ctx, phoneNumber)
	if err != nil {
		uc.Log.Error("webhookUsecase.HandleMessage error looking up sender",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if !lookup.IsLinked || lookup.UserID == nil {
		uc.Log.Info("webhookUsecase.HandleMessage sender not linked",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPhoneNumberKey, phoneNumber),
		)
		return &responses.WebhookUnlinked{
			Type:        constvars.WebhookResultTypeUnlinked,
			Success:     false,
			Message:     constvars.MessageWebhookPhoneNotLinked,
			PhoneNumber: phoneNumber,
		}, nil
	}

	userID := *lookup.UserID
	uc.forwardInbound(ctx, &requests.InboundWhatsAppMessage{
		UserID:      userID,
		PhoneNumber: phoneNumber,
		Content:     message.Message,
		Date:        message.Date,
		ReceivedAt:  uc.now().Format(time.RFC3339),
	})

	uc.Log.Info("webhookUsecase.HandleMessage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.WebhookMessage{
		Type:        constvars.WebhookResultTypeMessage,
		Success:     true,
		Message:     constvars.MessageWebhookMessageReceived,
		UserID:      userID,
		PhoneNumber: phoneNumber,
		Content:     message.Message,
	}, nil
}

func (uc *webhookUsecase) forwardInbound(ctx context.Context, inbound *requests.InboundWhatsAppMessage) {
	if uc.WhatsAppService == nil {
		return
	}
	if err := uc.WhatsAppService.PublishInbound(ctx, inbound); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("webhookUsecase.HandleMessage failed to forward inbound message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
