package workers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// poolInFlight is the number of functions currently running per pool.
	poolInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "worker_pool_in_flight",
		Help: "Number of functions currently running in the worker pool",
	}, []string{"pool"})

	// poolWaitDuration tracks how long callers waited for a free slot.
	poolWaitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "worker_pool_wait_duration_seconds",
		Help:    "Time spent waiting for a worker pool slot in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"pool"})

	// poolRejected counts calls abandoned because their context ended first.
	poolRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "worker_pool_rejected_total",
		Help: "Total number of calls whose context ended before a slot was free",
	}, []string{"pool"})
)
