package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/learnquest-backend/pkg/ctxutil"
)

type panicMetrics interface {
	HTTPPanic()
}

// Recovery turns a handler panic into a JSON 500, logs it with the stack
// and request id, and counts it. Install it outermost so a panic inside any
// other middleware is caught too.
func Recovery(logger *slog.Logger, metrics panicMetrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				metrics.HTTPPanic()
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", v),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)

				writeError(w, http.StatusInternalServerError, "internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
