package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP 请求指标，由 middleware.Metrics 采集，经 /metrics 暴露

// RequestTotal 按方法/路由/状态码统计请求量
var RequestTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "intern_portal",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	},
	[]string{"method", "path", "status"},
)

// RequestDuration 请求耗时直方图
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "intern_portal",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)
