package adapter

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// storeRequestDuration tracks the latency of content store calls by
// operation and outcome.
var storeRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "content_store_request_duration_seconds",
	Help:    "Histogram of content store request latency in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"operation", "outcome"})

func observe(operation string, started time.Time, err error) {
	storeRequestDuration.WithLabelValues(operation, outcome(err)).Observe(time.Since(started).Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrForbidden):
		return "denied"
	default:
		return "error"
	}
}
