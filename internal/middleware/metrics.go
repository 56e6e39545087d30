package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/afaq832/GHSS117-Backend/internal/metrics"
)

// Metrics records request duration per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.APIRequestDuration.WithLabelValues(
			path,
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
