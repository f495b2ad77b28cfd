package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnquest-backend/pkg/ctxutil"
)

type httpMetrics interface {
	HTTPRequest(method string, status int, seconds float64)
}

// accessLog collects fields that inner middleware learn after Logger has
// already handed the request down. Auth sits on the /api sub-router, so its
// context never flows back out; it writes the learner id here instead.
type accessLog struct {
	userID uuid.UUID
}

type accessLogKey struct{}

func annotateUser(ctx context.Context, id uuid.UUID) {
	if al, ok := ctx.Value(accessLogKey{}).(*accessLog); ok {
		al.userID = id
	}
}

// Logger writes one http.request line per request and records it in the
// request metrics. 5xx responses are logged at ERROR.
func Logger(logger *slog.Logger, metrics httpMetrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			al := &accessLog{}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), accessLogKey{}, al)))

			duration := time.Since(start)
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", duration),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			userID := al.userID
			if userID == uuid.Nil {
				userID, _ = ctxutil.UserIDFromCtx(r.Context())
			}
			if userID != uuid.Nil {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			}

			level := slog.LevelInfo
			if sw.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
			metrics.HTTPRequest(r.Method, sw.status, duration.Seconds())
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
