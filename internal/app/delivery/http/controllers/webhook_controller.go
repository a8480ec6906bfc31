package controllers

import (
	"context"
	"net/http"
	"phonelink-service/internal/app/contracts"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/dto/requests"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/utils"
	"sync"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type WebhookController struct {
	Log            *zap.Logger
	WebhookUsecase contracts.WebhookUsecase
}

var (
	webhookControllerInstance *WebhookController
	onceWebhookController     sync.Once
)

func NewWebhookController(logger *zap.Logger, webhookUsecase contracts.WebhookUsecase) *WebhookController {
	onceWebhookController.Do(func() {
		webhookControllerInstance = &WebhookController{
			Log:            logger,
			WebhookUsecase: webhookUsecase,
		}
	})
	return webhookControllerInstance
}

// HandleInboundMessage processes POST /api/webhook/evolution-api-secure. The
// body is read from the bytes buffered for signature verification.
func (ctrl *WebhookController) HandleInboundMessage(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Info("WebhookController.HandleInboundMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	raw, _ := r.Context().Value(constvars.CONTEXT_RAW_BODY).([]byte)
	if !gjson.ValidBytes(raw) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(nil))
		return
	}

	fields := gjson.GetManyBytes(raw, "message", "senderPhoneNumber", "date", "type")
	message := &requests.WebhookMessage{
		Message:           fields[0].String(),
		SenderPhoneNumber: fields[1].String(),
		Date:              fields[2].String(),
		Type:              fields[3].String(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.TimeoutRequest)
	defer cancel()

	result, err := ctrl.WebhookUsecase.HandleMessage(ctx, message)
	if err != nil {
		ctrl.Log.Info("WebhookController.HandleInboundMessage error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("WebhookController.HandleInboundMessage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}
