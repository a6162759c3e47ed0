package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "The total number of HTTP requests served",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	ContentLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_lookups_total",
			Help: "The total number of catalog lookups by kind and result",
		},
		[]string{"kind", "result"},
	)

	StaticAssetMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "static_asset_misses_total",
			Help: "Total number of static asset requests that did not resolve to a file",
		},
	)
)
