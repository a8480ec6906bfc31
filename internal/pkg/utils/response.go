package utils

import (
	"errors"
	"net/http"
	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/dto/responses"
	"phonelink-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildJSONResponse(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	response := responses.ErrorResponse{
		Success: false,
		Error:   constvars.ErrClientInternalServerError,
		Message: constvars.ErrClientSomethingWrongWithApplication,
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		response.Error = customErr.ClientError
		response.Message = customErr.ClientMessage
		if code < constvars.StatusInternalServerError {
			response.Details = customErr.Details
		}
		log.Error(customErr.DevMessage,
			zap.Int(constvars.LoggingStatusCodeKey, code),
			zap.String("file", customErr.Location.File),
			zap.Int("line", customErr.Location.Line),
			zap.String("function_name", customErr.Location.FunctionName),
			zap.Error(customErr.Err),
		)
	} else if err != nil {
		log.Error(err.Error())
	}

	if customErr != nil && len(customErr.Fields) > 0 {
		BuildJSONResponse(w, code, response.Merge(customErr.Fields))
		return
	}
	BuildJSONResponse(w, code, response)
}
