package http

import (
	"net"
	"net/http"
	"strconv"

	"github.com/MKhiriev/crrd/internal/app"
	"github.com/MKhiriev/crrd/internal/logger"
)

// withAuthRateLimit caps form submissions per client IP and route. Rejected
// requests get 429 with a Retry-After header. A non-positive limit
// (config.AuthRateLimitDisabled) turns the check off.
func (h *Handler) withAuthRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil || h.authRateLimit <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		route := r.URL.Path
		key := "ip:" + clientIP(r) + ":" + route

		decision := h.limiter.Allow(r.Context(), key, h.authRateLimit, h.authRateWindow)
		if !decision.Allowed {
			h.metrics.rateLimited(route)
			logger.FromRequest(r).Warn().
				Str("route", route).
				Int("count", decision.Count).
				Msg("auth rate limit exceeded")

			retryAfter := decision.RetryAfter(h.now())
			w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			http.Error(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of RemoteAddr. Forwarding headers are not
// trusted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
