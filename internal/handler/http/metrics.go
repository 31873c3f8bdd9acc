package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// httpRequests counts handled requests by route pattern and status.
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of handled HTTP requests",
	}, []string{"method", "route", "status"})

	// httpRequestDuration tracks request latency by route pattern.
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// rateLimited counts requests rejected by the auth rate limiter.
	rateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_rate_limited_total",
		Help: "Total number of requests rejected by the auth rate limiter",
	}, []string{"path"})
)
