package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// writeUsecaseError renders err, mapping an expired request context to 504.
func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func decodeJSONBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

// readJSONBody decodes into dst and also returns the raw bytes for presence checks.
func readJSONBody(r *http.Request, dst interface{}) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, exceptions.ErrReadBody(err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return body, nil
}

func requestIDFromRequest(r *http.Request) string {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
