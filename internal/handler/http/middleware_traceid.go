package http

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// validTraceID limits client-supplied trace ids to a safe log-friendly form.
var validTraceID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// withTraceID attaches a child logger carrying the request's trace id to
// the request context and echoes the id in the response header. A missing
// or malformed incoming id is replaced by a fresh UUID.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID.MatchString(traceID) {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
