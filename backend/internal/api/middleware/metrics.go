package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"intern-portal/backend/pkg/metrics"
)

// Metrics Prometheus 指标采集中间件
// path 使用路由模板（c.FullPath）而非原始 URL，避免标签基数爆炸
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.RequestTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.RequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}
