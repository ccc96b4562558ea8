package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taruvae/internal/infrastructure/ratelimit"
	"taruvae/pkg/logger"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles an action per caller IP.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			allowed, wait := m.limiter.Allow(ip, action)
			if !allowed {
				logger.Warn("rate limit: blocked %s from %s (retry in %v)", action, ip, wait)
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(wait.Seconds()),
				})
			}
			return next(c)
		}
	}
}
