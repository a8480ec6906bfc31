package middlewares

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"phonelink-service/internal/pkg/constvars"
	"phonelink-service/internal/pkg/exceptions"
	"phonelink-service/internal/pkg/utils"
)

// BodyBuffer stores the raw request bytes in the context and rewinds the body
// so signature checks and handlers see exactly the same payload.
func (m *Middlewares) BodyBuffer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := io.Reader(r.Body)
		if limit := m.InternalConfig.App.RequestBodyLimitInMegabyte; limit > 0 {
			body = http.MaxBytesReader(w, r.Body, int64(limit)<<20)
		}

		bodyBytes, err := io.ReadAll(body)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrReadBody(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_RAW_BODY, bodyBytes)
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RawBody returns the bytes captured by BodyBuffer.
func RawBody(r *http.Request) []byte {
	body, _ := r.Context().Value(constvars.CONTEXT_RAW_BODY).([]byte)
	return body
}
