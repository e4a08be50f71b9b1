package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"hotel/shared"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"

	budgetGlobal     = "global"
	budgetSubmission = "submission"
)

// budget is a fixed window counter kept in Redis per client.
type budget struct {
	name          string
	maxRequests   int
	windowSeconds int
}

// RateLimit is the site-wide budget applied to every route.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return a.limit(budget{
		name:          budgetGlobal,
		maxRequests:   a.config.App.RateLimiter.MaxRequests,
		windowSeconds: a.config.App.RateLimiter.WindowSeconds,
	})
}

// SubmissionLimit guards public writes: bookings, contact messages, reviews
// and login attempts.
func (a *appMiddleware) SubmissionLimit() func(http.Handler) http.Handler {
	return a.limit(budget{
		name:          budgetSubmission,
		maxRequests:   a.config.App.RateLimiter.Submission.MaxRequests,
		windowSeconds: a.config.App.RateLimiter.Submission.WindowSeconds,
	})
}

func (a *appMiddleware) limit(b budget) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable || b.maxRequests <= 0 {
				next.ServeHTTP(w, r)

				return
			}

			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, b.name, a.getClientIP(r))

			count, err := a.cache.Increment(r.Context(), cacheKey, b.windowSeconds)
			if err != nil {
				log.Warn().Err(err).Str("budget", b.name).Msg("rate limiter cache unavailable")

				next.ServeHTTP(w, r)

				return
			}

			if count > int64(b.maxRequests) {
				w.Header().Set(constant.RequestHeaderRetryAfter, strconv.Itoa(b.windowSeconds))
				response.WithRequestLimitExceeded(w)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(b.maxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(int64(b.maxRequests)-count, 10))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(b.windowSeconds))

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP prefers proxy headers and drops the port from RemoteAddr so one
// guest counts once however many connections the browser opens.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
