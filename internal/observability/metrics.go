package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "turf_admin", Name: "api_requests_total", Help: "Outbound API requests by method, path and status"},
		[]string{"method", "path", "status"},
	)
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "turf_admin",
			Name:      "api_request_duration_seconds",
			Help:      "Outbound API request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	ResolveTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "turf_admin", Name: "coordinate_resolutions_total", Help: "Map-link resolution attempts by outcome"},
		[]string{"outcome"},
	)

	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "turf_admin", Name: "exports_total", Help: "Spreadsheet exports by outcome"},
		[]string{"outcome"},
	)
)
