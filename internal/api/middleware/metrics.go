package middleware

import (
	"time"

	"restaurant-api/internal/metrics"

	"github.com/gin-gonic/gin"
)

// unmatchedRoute labels requests that hit no registered route, so arbitrary
// paths cannot blow up the route label's cardinality.
const unmatchedRoute = "unmatched"

// Metrics records every request against its route template.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start), c.Writer.Header().Get("X-Cache"))
	}
}
