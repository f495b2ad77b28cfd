package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/learnquest-backend/pkg/ctxutil"
)

// IdempotencyKeyHeader carries the caller's identity of a logical event.
const IdempotencyKeyHeader = "Idempotency-Key"

// IdempotencyKey copies the Idempotency-Key header into the request context.
func IdempotencyKey() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader))
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			ctx := ctxutil.WithIdempotencyKey(r.Context(), key)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
