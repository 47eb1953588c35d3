package middleware

import (
	"fmt"
	"net/http"

	"connecthub/internal/pkg/ratelimit"
	"connecthub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RateLimitByIP throttles a route per client IP. It runs before any database
// lookup or hash comparison, so a flood of bad credentials stays cheap.
func RateLimitByIP(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, wait := limiter.Allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", fmt.Sprintf("%.0f", wait.Seconds()))
			response.Error(c, http.StatusTooManyRequests, "Too many attempts, try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
