package middlewares

import (
	"fmt"

	"github.com/classkas/kasku-core/internal/app/errors"
	"github.com/classkas/kasku-core/internal/app/pkg"
	"github.com/classkas/kasku-core/pkg/ratelimit"
	"github.com/gofiber/fiber/v2"
)

// RateLimitMiddleware handles rate limiting
type RateLimitMiddleware struct {
	limiter ratelimit.RateLimiter
}

// NewRateLimitMiddleware creates a new RateLimitMiddleware
func NewRateLimitMiddleware(limiter ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// LimitByIP limits requests per client IP within the configured window.
func (m *RateLimitMiddleware) LimitByIP(limit ratelimit.Rate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, info := m.limiter.Allow("ip:"+c.IP(), limit)

		c.Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		c.Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		c.Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.Reset.Unix()))

		if !allowed {
			return pkg.ErrorResponse(c, errors.NewTooManyRequestsError("Rate limit exceeded"))
		}

		return c.Next()
	}
}
