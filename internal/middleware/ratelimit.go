package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// NewRateLimitHandler returns a middleware that admits requests through a
// single token bucket shared by all clients, refilled at rps tokens per
// second up to burst. Requests that find the bucket empty get 429.
func NewRateLimitHandler(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				writeError(w, http.StatusTooManyRequests, "rate_limited", "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
