package middleware

import (
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/redball-academy/academy-booking/internal/metrics"
)

// Metrics records per-route request counts and latency. The route template
// (not the raw path) is the label, so ids do not explode cardinality.
func Metrics() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
