package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"moneta/internal/metrics"
)

// RequestMetrics returns a Gin middleware that records request duration and
// counts per route template. Requests that match no route share a single
// "unmatched" label.
func RequestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
