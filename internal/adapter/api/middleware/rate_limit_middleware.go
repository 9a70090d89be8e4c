package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"vroomza/internal/infrastructure/ratelimit"
	"vroomza/pkg/logger"
)

// Per-IP limiters. Auth endpoints get a tighter budget since they are
// the usual brute-force target.
var (
	generalLimiter = ratelimit.NewRateLimiter(60, 60, time.Minute)
	authLimiter    = ratelimit.NewRateLimiter(5, 5, time.Minute)
	uploadLimiter  = ratelimit.NewRateLimiter(30, 30, time.Minute)
)

func init() {
	go func() {
		for {
			time.Sleep(time.Hour)
			generalLimiter.Cleanup(2 * time.Hour)
			authLimiter.Cleanup(2 * time.Hour)
			uploadLimiter.Cleanup(2 * time.Hour)
		}
	}()
}

func rateLimitWith(limiter *ratelimit.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, retryAfter := limiter.Allow(ip)
			if !allowed {
				logger.Warn("Rate limit exceeded for IP %s", ip)
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "Rate limit exceeded",
					"retry_after": int(retryAfter.Seconds()),
				})
			}

			return next(c)
		}
	}
}

func GeneralRateLimit() echo.MiddlewareFunc {
	return rateLimitWith(generalLimiter)
}

func AuthRateLimit() echo.MiddlewareFunc {
	return rateLimitWith(authLimiter)
}

func UploadRateLimit() echo.MiddlewareFunc {
	return rateLimitWith(uploadLimiter)
}
