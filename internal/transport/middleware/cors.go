package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/learnquest-backend/internal/config"
)

// exposedHeaders are response headers a browser client may read.
const exposedHeaders = RequestIDHeader + ", Retry-After"

// CORS answers preflights itself and decorates every other response for
// allowed origins. With "*" configured the caller's origin is echoed back,
// since browsers reject a literal wildcard on credentialed requests.
func CORS(cfg config.CORSConfig) Middleware {
	allowed, wildcard := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" && (wildcard || allowed[origin]) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func parseOrigins(raw string) (map[string]bool, bool) {
	set := make(map[string]bool)
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o == "*" {
			return nil, true
		}
		if o != "" {
			set[o] = true
		}
	}
	return set, false
}
