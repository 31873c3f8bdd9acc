package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one access log entry per request and records the
// request metrics. Query strings are not logged.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		path := r.URL.Path
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.statusCode()
		route := routePattern(r)

		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())

		log.Info().
			Str("uri", path).
			Str("method", method).
			Str("route", route).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}

// routePattern returns the matched chi pattern so metrics stay low-cardinality.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
