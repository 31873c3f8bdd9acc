package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cosmic-community/coffee-closer-network/internal/service"
	"github.com/cosmic-community/coffee-closer-network/internal/store"
	"github.com/cosmic-community/coffee-closer-network/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid json", fmt.Errorf("%w: unexpected EOF", ErrInvalidJSON), http.StatusBadRequest},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"invalid password", service.ErrInvalidPassword, http.StatusBadRequest},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"no session", ErrNoSession, http.StatusUnauthorized},
		{"suspended", service.ErrAccountSuspended, http.StatusForbidden},
		{"store forbidden", fmt.Errorf("create: %w", store.ErrStoreForbidden), http.StatusForbidden},
		{"not found", store.ErrAccountNotFound, http.StatusNotFound},
		{"duplicate", fmt.Errorf("signup: %w", store.ErrAccountAlreadyExists), http.StatusConflict},
		{"rate limited", ErrTooManyRequests, http.StatusTooManyRequests},
		{"upstream", store.ErrUpstream, http.StatusInternalServerError},
		{"hashing", service.ErrHashingFailed, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_Body(t *testing.T) {
	h := newTestHandler()

	t.Run("validation fields are included", func(t *testing.T) {
		err := fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, models.ValidationErrors{"email": "must be a valid email address"})

		rec := httptest.NewRecorder()
		h.writeError(rec, injectNopLogger(httptest.NewRequest(http.MethodPost, "/", nil)), err)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Invalid data provided", body.Error)
		assert.Equal(t, "must be a valid email address", body.Fields["email"])
	})

	t.Run("internal details are hidden", func(t *testing.T) {
		err := fmt.Errorf("%w: bucket write key rejected", store.ErrUpstream)

		rec := httptest.NewRecorder()
		h.writeError(rec, injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil)), err)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
	})
}
