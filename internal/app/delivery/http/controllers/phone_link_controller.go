package controllers

import (
	"context"
	"net/http"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/dto/requests"
	"phonelink-service/internal/pkg/dto/responses"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type PhoneLinkController struct {
	Log                *zap.Logger
	PhoneLinkerUsecase contracts.PhoneLinkerUsecase
	PhoneLookupUsecase contracts.PhoneLookupUsecase
}

var (
	phoneLinkControllerInstance *PhoneLinkController
	oncePhoneLinkController     sync.Once
)

func NewPhoneLinkController(
	logger *zap.Logger,
	phoneLinkerUsecase contracts.PhoneLinkerUsecase,
	phoneLookupUsecase contracts.PhoneLookupUsecase,
) *PhoneLinkController {
	oncePhoneLinkController.Do(func() {
		phoneLinkControllerInstance = &PhoneLinkController{
			Log:                logger,
			PhoneLinkerUsecase: phoneLinkerUsecase,
			PhoneLookupUsecase: phoneLookupUsecase,
		}
	})
	return phoneLinkControllerInstance
}

func (ctrl *PhoneLinkController) WhatsAppAuth(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("PhoneLinkController.WhatsAppAuth called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.WhatsAppAuth)
	if err := decodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequiredFields(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.TimeoutRequest)
	defer cancel()

	result, err := ctrl.PhoneLinkerUsecase.LinkPhone(ctx, request)
	if err != nil {
		ctrl.Log.Info("PhoneLinkController.WhatsAppAuth error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PhoneLinkController.WhatsAppAuth succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, result.UserID),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *PhoneLinkController) LookupPhone(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("PhoneLinkController.LookupPhone called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.PhoneLookup)
	if err := decodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPhoneNumberRequired(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.TimeoutRequest)
	defer cancel()

	result, err := ctrl.PhoneLookupUsecase.LookupPhone(ctx, request.PhoneNumber)
	if err != nil {
		ctrl.Log.Error("PhoneLinkController.LookupPhone error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *PhoneLinkController) GetPhoneStatus(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("PhoneLinkController.GetPhoneStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.PhoneStatus)
	if err := decodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSenderPhoneNumberRequired(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.TimeoutRequest)
	defer cancel()

	result, err := ctrl.PhoneLookupUsecase.GetPhoneStatus(ctx, request.SenderPhoneNumber)
	if err != nil {
		ctrl.Log.Error("PhoneLinkController.GetPhoneStatus error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

var phoneStatusDescription = responses.EndpointDescription{
	Endpoint:    "/api/phone-status",
	Method:      http.MethodPost,
	Description: "Check whether a phone number is linked to a user account",
	RequiredHeaders: map[string]string{
		constvars.HeaderXAPIKey:       "Shared API key, or use Authorization: Bearer <key>",
		constvars.HeaderContentType:   constvars.MIMEApplicationJSON,
		constvars.HeaderXForwardedFor: "Client address checked against the IP allow-list",
	},
	RequestBody: map[string]string{
		"senderPhoneNumber": "string, required",
	},
	Response: map[string]interface{}{
		"is_linked":       "boolean",
		"user_id":         "string or null",
		"phone_number":    "string",
		"message":         "string",
		"status":          "linked | unlinked",
		"user_info":       "{email, full_name, account_created} or null, only when linked",
		"phone_link_info": "{linked_at}, only when linked",
	},
}

// DescribePhoneStatus documents the POST variant of the endpoint.
func (ctrl *PhoneLinkController) DescribePhoneStatus(w http.ResponseWriter, r *http.Request) {
	utils.BuildJSONResponse(w, constvars.StatusOK, phoneStatusDescription)
}

func (ctrl *PhoneLinkController) UnlinkPhone(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	principal := utils.PrincipalFromContext(r.Context())
	ctrl.Log.Info("PhoneLinkController.UnlinkPhone called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, principal.UserID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.TimeoutRequest)
	defer cancel()

	result, err := ctrl.PhoneLinkerUsecase.UnlinkPhone(ctx, principal.UserID)
	if err != nil {
		ctrl.Log.Info("PhoneLinkController.UnlinkPhone error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}
