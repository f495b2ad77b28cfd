package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/learnquest-backend/pkg/ctxutil"
)

const idleBucketTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per caller. Authenticated requests are
// keyed by learner id, anonymous ones by client IP, so it must run after Auth.
type RateLimiter struct {
	mu      sync.Mutex
	callers map[string]*caller
	stop    chan struct{}
}

type caller struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		callers: make(map[string]*caller),
		stop:    make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit returns middleware that allows maxPerMinute requests per caller with
// a burst of the same size. A nil RateLimiter or a non-positive limit returns
// nil, which Chain skips.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	if rl == nil || maxPerMinute <= 0 {
		return nil
	}
	every := time.Minute / time.Duration(maxPerMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lim := rl.limiter(callerKey(r), every, maxPerMinute)

			res := lim.Reserve()
			if delay := res.Delay(); delay > 0 {
				res.Cancel()
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func callerKey(r *http.Request) string {
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + id.String()
	}
	return "ip:" + clientIP(r)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) limiter(key string, every time.Duration, burst int) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, ok := rl.callers[key]
	if !ok {
		c = &caller{limiter: rate.NewLimiter(rate.Every(every), burst)}
		rl.callers[key] = c
	}
	c.lastSeen = time.Now()
	return c.limiter
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for key, c := range rl.callers {
				if now.Sub(c.lastSeen) > idleBucketTTL {
					delete(rl.callers, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}
