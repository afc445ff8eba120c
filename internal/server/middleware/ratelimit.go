package middleware

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/yaswanthreddy/portfolio/internal/server/ratelimit"
)

// NewRateLimiter returns a middleware that rejects requests over the
// limiter's budget with 429. Wire it after NewRealIP so requests from
// trusted proxies are keyed on the forwarded client address.
func NewRateLimiter(limiter *ratelimit.Limiter, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, info := limiter.Allow(ClientIP(r), r.URL.Path, r.Method)
			setRateLimitHeaders(w, info)
			if !allowed {
				log.WarnContext(r.Context(), "rate limit exceeded",
					"client", ClientIP(r),
					"path", r.URL.Path,
					"limit", info.Limit,
					"reset", info.ResetTime.Format(time.RFC3339),
				)
				rateLimitResponse(w, info)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP returns the host part of the request's remote address.
func ClientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// NewRealIP stores a bare address
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		// round up so clients never retry early
		seconds := int((info.RetryAfter + time.Second - 1) / time.Second)
		response["retry_after"] = seconds
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(response)
}
