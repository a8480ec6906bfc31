package controllers

import (
	"context"
	"net/http"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/app/services/core/cleanup"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type CleanupController struct {
	Log            *zap.Logger
	CleanupUsecase contracts.CleanupUsecase
}

var (
	cleanupControllerInstance *CleanupController
	onceCleanupController     sync.Once
)

func NewCleanupController(logger *zap.Logger, cleanupUsecase contracts.CleanupUsecase) *CleanupController {
	onceCleanupController.Do(func() {
		cleanupControllerInstance = &CleanupController{
			Log:            logger,
			CleanupUsecase: cleanupUsecase,
		}
	})
	return cleanupControllerInstance
}

func (ctrl *CleanupController) CleanupExpiredCodes(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("CleanupController.CleanupExpiredCodes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.TimeoutRequest)
	defer cancel()

	result, err := ctrl.CleanupUsecase.CleanupExpiredCodes(ctx, cleanup.TriggerHTTP)
	if err != nil {
		ctrl.Log.Error("CleanupController.CleanupExpiredCodes error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("CleanupController.CleanupExpiredCodes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, result.CleanedCount),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}
