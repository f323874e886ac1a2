package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/OptiVisionCare/optic-booking/internal/httperr"
	"github.com/OptiVisionCare/optic-booking/internal/ratelimit"
)

// RateLimitMiddleware rejects over-quota clients with 429 before any store
// access happens. Keyed by client address.
func RateLimitMiddleware(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			httperr.TooManyRequests(c, "عدد كبير من الطلبات. الرجاء الانتظار دقيقة.")
			c.Abort()
			return
		}

		c.Next()
	}
}
