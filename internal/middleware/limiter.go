package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"case-assistant/pkg/response"
)

// InboundLimiter is a coarse process-wide admission gate in front of the
// per-user fixed-window limiter. It protects the service from aggregate
// overload; fairness between users is the inner limiter's job.
func (m Middleware) InboundLimiter(rps float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "http: global limiter rejected %s %s", c.Request.Method, c.Request.URL.Path)
			response.ErrorWithStatus(c, http.StatusTooManyRequests, "service busy, try again shortly", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
