package controllers

import (
	"net/http"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type APITokenController struct {
	Log *zap.Logger
}

func NewAPITokenController(logger *zap.Logger) *APITokenController {
	return &APITokenController{Log: logger}
}

// NotImplemented answers every /api-tokens/{id} method until token management exists.
func (ctrl *APITokenController) NotImplemented(w http.ResponseWriter, r *http.Request) {
	utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotImplemented(nil))
}
