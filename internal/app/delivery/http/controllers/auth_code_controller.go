package controllers

import (
	"context"
	"net/http"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/dto/responses"
	"phonelink-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type AuthCodeController struct {
	Log             *zap.Logger
	AuthCodeUsecase contracts.AuthCodeUsecase
}

var (
	authCodeControllerInstance *AuthCodeController
	onceAuthCodeController     sync.Once
)

func NewAuthCodeController(logger *zap.Logger, authCodeUsecase contracts.AuthCodeUsecase) *AuthCodeController {
	onceAuthCodeController.Do(func() {
		authCodeControllerInstance = &AuthCodeController{
			Log:             logger,
			AuthCodeUsecase: authCodeUsecase,
		}
	})
	return authCodeControllerInstance
}

func (ctrl *AuthCodeController) GetAuthCode(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	principal := utils.PrincipalFromContext(r.Context())
	ctrl.Log.Info("AuthCodeController.GetAuthCode called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, principal.UserID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.TimeoutRequest)
	defer cancel()

	result, err := ctrl.AuthCodeUsecase.GetOrCreateAuthCode(ctx, principal.UserID)
	if err != nil {
		ctrl.Log.Error("AuthCodeController.GetAuthCode error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AuthCodeController.GetAuthCode succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *AuthCodeController) DeactivateAuthCodes(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	principal := utils.PrincipalFromContext(r.Context())
	ctrl.Log.Info("AuthCodeController.DeactivateAuthCodes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, principal.UserID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.TimeoutRequest)
	defer cancel()

	if err := ctrl.AuthCodeUsecase.DeactivateAuthCodes(ctx, principal.UserID); err != nil {
		ctrl.Log.Error("AuthCodeController.DeactivateAuthCodes error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, responses.SuccessResponse{Success: true})
}
