package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// logFields carries values discovered by inner middleware back out to Logger.
type logFields struct {
	client string
}

func setLogClient(ctx context.Context, client string) {
	if f, ok := ctx.Value(logFieldsKey).(*logFields); ok {
		f.client = client
	}
}

// Logger logs one structured line per request. Request and response bodies
// are never logged since they carry passwords. The line includes the
// authenticated client when JWTAuth runs inside Logger.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		fields := &logFields{}
		r = r.WithContext(context.WithValue(r.Context(), logFieldsKey, fields))

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		attrs := []any{
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		}
		if fields.client != "" {
			attrs = append(attrs, "client", fields.client)
		}
		slog.Log(r.Context(), level, "request", attrs...)
	})
}
