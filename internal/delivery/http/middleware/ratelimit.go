package middleware

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"

	"fyyur/internal/adapters/ratelimit"
	h "fyyur/internal/delivery/http/helpers"
)

// RateLimit returns a wrapper that takes one token per request from the
// bucket of the authenticated editor, or of the client IP when there is none.
// Limiter errors let the request through.
func RateLimit(limiter ratelimit.Limiter, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			key := "ip:" + clientIP(r)
			if subject, ok := EditorFromContext(r.Context()); ok {
				key = "editor:" + subject
			}
			d, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.WarnContext(r.Context(), "rate limiter unavailable", "key", key, "err", err)
				next(w, r)
				return
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
			if !d.Allowed {
				secs := int(math.Ceil(d.RetryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				h.WriteJSONError(w, http.StatusTooManyRequests, h.ErrCodeTooManyRequests, "rate limit exceeded")
				return
			}
			next(w, r)
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
