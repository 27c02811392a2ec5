package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/formadesk/formadesk/internal/pkg/metrics"
)

// Metrics records request count and latency per route. The route template
// is used as the endpoint label so path parameters don't explode cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		metrics.RecordHTTPRequest(
			c.Request.Method,
			endpoint,
			c.Writer.Status(),
			time.Since(start).Seconds(),
		)
	}
}
