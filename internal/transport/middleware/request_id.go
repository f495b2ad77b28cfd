package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnquest-backend/pkg/ctxutil"
)

// RequestIDHeader is read from the request and echoed in the response.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDLen = 64

// RequestID reuses a well-formed incoming X-Request-Id or mints a
// time-ordered UUID, and echoes the result in the response. Incoming ids end
// up in logs, so anything long or outside [A-Za-z0-9._-] is replaced.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if !validRequestID(id) {
				id = newRequestID()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}

func newRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
