package pkgrouter

import (
	"net/http"
	"strconv"

	"golang.org/x/time/rate"
)

// MiddlewareRateLimit rejects requests with 429 once limiter runs out of
// tokens. A nil limiter disables the check.
func MiddlewareRateLimit(limiter *rate.Limiter) Middleware {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				rateLimitRejects.Inc()
				w.Header().Set("Retry-After", "1")
				writeJSON(w, errorResponse{Message: "rate limit exceeded"}, http.StatusTooManyRequests)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(int(limiter.Limit())))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

			next.ServeHTTP(w, r)
		})
	}
}
