package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHandler returns a Handler with a nop logger.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

// newBufferedHandler returns a Handler whose logger writes JSON to buf.
func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func executeWithTraceID(h *Handler, incoming string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		requestTraceID  string
		wantSameTraceID bool
		wantValidUUID   bool
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-custom-trace-id", wantSameTraceID: true},
		{name: "no trace ID in request, UUID generated", wantValidUUID: true},
		{name: "UUID as incoming trace ID", requestTraceID: "550e8400-e29b-41d4-a716-446655440000", wantSameTraceID: true},
		{name: "dots and underscores allowed", requestTraceID: "span_1.2", wantSameTraceID: true},
		{name: "header injection replaced", requestTraceID: "abc\r\nX-Evil: 1", wantValidUUID: true},
		{name: "spaces replaced", requestTraceID: "not a trace id", wantValidUUID: true},
		{name: "too long replaced", requestTraceID: strings.Repeat("a", 65), wantValidUUID: true},
		{name: "64 characters kept", requestTraceID: strings.Repeat("a", 64), wantSameTraceID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeWithTraceID(newTestHandler(), tt.requestTraceID)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got, "X-Trace-ID header must be set in response")

			if tt.wantSameTraceID {
				assert.Equal(t, tt.requestTraceID, got)
			}
			if tt.wantValidUUID {
				_, err := uuid.Parse(got)
				assert.NoError(t, err, "generated trace ID should be a valid UUID, got: %s", got)
			}
			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestWithTraceID_GeneratesUniqueUUIDs(t *testing.T) {
	h := newTestHandler()
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id := executeWithTraceID(h, "").Header().Get(traceIDHeader)
		require.NotEmpty(t, id)

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(traceIDHeader, "trace-context-test")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-context-test", entry["trace_id"])
	assert.Equal(t, "inside", entry["message"])
}

func TestWithTraceID_AlwaysCallsNext(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	newTestHandler().withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestWithTraceID_ConcurrentRequests(t *testing.T) {
	middleware := newTestHandler().withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	const n = 50
	done := make(chan string, n)

	for i := 0; i < n; i++ {
		go func() {
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))
			done <- rr.Header().Get(traceIDHeader)
		}()
	}

	seen := make(map[string]struct{})
	for i := 0; i < n; i++ {
		id := <-done
		require.NotEmpty(t, id)
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, n, "all generated trace IDs should be unique")
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	originalCtx := req.Context()

	newTestHandler().withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context(), "original request context should not be mutated")
}
