package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/localshop/storefront/internal/infrastructure/ratelimit"
	"github.com/localshop/storefront/internal/shared/logger"
	"github.com/localshop/storefront/internal/shared/utils"
)

// RateLimiter enforces a per-IP fixed window shared by all instances through Redis.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	policy  ratelimit.Policy
	logger  logger.Interface
}

// NewRateLimiter returns a limiter that lets every request through when
// limiter is nil.
func NewRateLimiter(limiter ratelimit.RateLimiter, policy ratelimit.Policy, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		policy:  policy,
		logger:  logger,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP
// under the given scope.
func (rl *RateLimiter) Limit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.limiter == nil {
			c.Next()
			return
		}

		key := scope + ":" + c.ClientIP()
		result, err := rl.limiter.Allow(c.Request.Context(), key, rl.policy)
		if err != nil {
			// Redis being down must not take checkout with it.
			rl.logger.Warnw("rate limiter unavailable", "error", err, "scope", scope)
			c.Next()
			return
		}

		if result.Remaining >= 0 {
			c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		}

		if !result.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(result.ResetIn.Seconds())+1))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
