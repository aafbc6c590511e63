package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GinMiddleware records request count and latency per route template, so
// /v1/checkout/sessions/:id stays one series regardless of the session id.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observe(routeLabel(c), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}

func observe(route, method string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	HTTPRequestDuration.WithLabelValues(route, method, code).Observe(elapsed.Seconds())
	HTTPRequestsTotal.WithLabelValues(route, method, code).Inc()
}

func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	// unmatched paths share one label to keep cardinality bounded
	return "unknown"
}
