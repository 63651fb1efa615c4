package utils

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ReqCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrinova_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ReqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "nutrinova_request_duration_seconds",
			Help: "Request duration seconds",
		},
		[]string{"method", "path"},
	)

	ReportCacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrinova_report_cache_total",
			Help: "Report cache lookups by outcome",
		},
		[]string{"outcome"}, // hit | miss
	)
)

func InitMetrics() {
	prometheus.MustRegister(ReqCount, ReqDuration, ReportCacheHits)
}
