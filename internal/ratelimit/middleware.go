package ratelimit

import (
	"math"
	"strconv"

	"scriptvault/internal/apierrors"
	"scriptvault/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits each client IP to limitPerMinute requests on the routes
// it guards. The IP comes from gin's ClientIP, so forwarded headers only
// count when the engine trusts the sending proxy. The scope keeps separate budgets for separate route groups.
// A non-positive limit disables the check.
func (s *Service) Middleware(scope string, limitPerMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limitPerMinute <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		result := s.Allow(ctx, scope+":"+c.ClientIP(), limitPerMinute)

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

		if !result.Allowed {
			retryAfter := int(math.Ceil(result.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			ctx = observability.WithFields(ctx,
				observability.Field{Key: "rate_limit_scope", Value: scope},
				observability.Field{Key: "retry_after_s", Value: retryAfter},
			)
			s.logger.Warn(ctx, "rate limit exceeded")

			apierrors.RespondWithError(c, apierrors.TooManyRequests("Rate limit exceeded"))
			return
		}

		c.Next()
	}
}
