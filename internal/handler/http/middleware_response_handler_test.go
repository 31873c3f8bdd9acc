package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name        string
		statusCodes []int
		wantStatus  int
	}{
		{name: "201 Created", statusCodes: []int{http.StatusCreated}, wantStatus: http.StatusCreated},
		{name: "401 Unauthorized", statusCodes: []int{http.StatusUnauthorized}, wantStatus: http.StatusUnauthorized},
		{name: "307 redirect", statusCodes: []int{http.StatusTemporaryRedirect}, wantStatus: http.StatusTemporaryRedirect},
		{name: "first of two wins", statusCodes: []int{http.StatusConflict, http.StatusInternalServerError}, wantStatus: http.StatusConflict},
		{name: "first of three wins", statusCodes: []int{http.StatusOK, http.StatusCreated, http.StatusNotFound}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.wantStatus, w.statusCode())
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	tests := []struct {
		name         string
		writes       []string
		explicitCode int
		wantStatus   int
		wantSize     int
	}{
		{name: "single write, implicit 200", writes: []string{"OK"}, wantStatus: http.StatusOK, wantSize: 2},
		{name: "multiple writes accumulate size", writes: []string{`{"user":`, `{}`, `}`}, wantStatus: http.StatusOK, wantSize: 11},
		{name: "explicit 201, then write", writes: []string{"created"}, explicitCode: http.StatusCreated, wantStatus: http.StatusCreated, wantSize: 7},
		{name: "empty write still sends header", writes: []string{""}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			if tt.explicitCode != 0 {
				w.WriteHeader(tt.explicitCode)
			}
			for _, data := range tt.writes {
				_, err := w.Write([]byte(data))
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.statusCode())
			assert.True(t, w.wroteHeader)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
		})
	}
}

func TestResponseWriter_StatusCodeDefaultsTo200(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.False(t, w.wroteHeader)
	assert.Equal(t, 0, w.size)
	assert.Equal(t, http.StatusOK, w.statusCode())
}

func TestResponseWriter_ProxiesHeadersAndCookies(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc"})
	w.Header().Set(traceIDHeader, "trace-1")
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, "trace-1", rr.Header().Get(traceIDHeader))
	assert.Contains(t, rr.Header().Get("Set-Cookie"), "session=abc")
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	assert.Same(t, rr, w.Unwrap())
	assert.NoError(t, http.NewResponseController(w).Flush())
	assert.True(t, rr.Flushed)
}
