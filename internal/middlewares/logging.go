package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFromContext returns the id assigned by LoggingMiddleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// LoggingMiddleware logs one entry per request. A well-formed incoming
// X-Request-ID is kept, otherwise a fresh one is issued and echoed back.
// 5xx responses are logged at error level, 4xx at warn.
func LoggingMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(reqID); err != nil {
				reqID = uuid.New().String()
			}
			w.Header().Set(RequestIDHeader, reqID)

			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, reqID)))

			fields := []any{
				"request_id", reqID,
				"method", r.Method,
				"uri", r.RequestURI,
				"remote", r.RemoteAddr,
				"status", rw.status,
				"bytes", rw.bytes,
				"duration", time.Since(start),
			}
			switch {
			case rw.status >= http.StatusInternalServerError:
				log.Errorw("http request", fields...)
			case rw.status >= http.StatusBadRequest:
				log.Warnw("http request", fields...)
			default:
				log.Infow("http request", fields...)
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}
