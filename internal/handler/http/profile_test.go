package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cosmic-community/coffee-closer-network/internal/service"
	"github.com/cosmic-community/coffee-closer-network/internal/store"
	"github.com/cosmic-community/coffee-closer-network/internal/validators"
	"github.com/cosmic-community/coffee-closer-network/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	tests := []struct {
		name       string
		account    models.Account
		err        error
		wantStatus int
	}{
		{name: "found", account: testAccount(), wantStatus: http.StatusOK},
		{name: "deleted account", err: store.ErrAccountNotFound, wantStatus: http.StatusNotFound},
		{name: "store down", err: store.ErrUpstream, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := &mockProfileService{
				getFn: func(_ context.Context, id string) (models.Account, error) {
					assert.Equal(t, "obj-1", id)
					return tt.account, tt.err
				},
			}
			h := newTestHandlerWith(t, &service.Services{AuthService: sessionAuth(), ProfileService: profiles})

			rec := serve(h, withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/profile", nil)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotContains(t, rec.Body.String(), "secret-hash")
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"slug":"jane-doe"`)
			}
		})
	}
}

func TestSetupProfile(t *testing.T) {
	profiles := &mockProfileService{
		setupFn: func(_ context.Context, id string, setup models.ProfileSetup) (models.Account, error) {
			assert.Equal(t, "obj-1", id)
			assert.Equal(t, "Account Executive", setup.CurrentRole)
			account := testAccount()
			account.ProfileComplete = true
			return account, nil
		},
	}
	h := newTestHandlerWith(t, &service.Services{AuthService: sessionAuth(), ProfileService: profiles})

	body := `{"currentRole":"Account Executive","company":"Acme","timezone":"UTC"}`
	rec := serve(h, withSessionCookie(httptest.NewRequest(http.MethodPost, "/api/profile/setup", strings.NewReader(body))))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		User models.PublicAccount `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.User.ProfileComplete)
}

func TestUpdateProfile(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "partial update", body: `{"bio":"Closing deals since 2010"}`, wantStatus: http.StatusOK},
		{name: "malformed JSON", body: `{"bio":`, wantStatus: http.StatusBadRequest},
		{name: "nothing to update", body: `{}`, err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNoFieldsToUpdate), wantStatus: http.StatusBadRequest},
		{name: "account gone", body: `{"bio":"x"}`, err: store.ErrAccountNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := &mockProfileService{
				updateFn: func(_ context.Context, id string, update models.ProfileUpdate) (models.Account, error) {
					assert.Equal(t, "obj-1", id)
					return testAccount(), tt.err
				},
			}
			h := newTestHandlerWith(t, &service.Services{AuthService: sessionAuth(), ProfileService: profiles})

			rec := serve(h, withSessionCookie(httptest.NewRequest(http.MethodPut, "/api/profile/update", strings.NewReader(tt.body))))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestProfile_AccountIDComesFromSession(t *testing.T) {
	profiles := &mockProfileService{
		updateFn: func(_ context.Context, id string, _ models.ProfileUpdate) (models.Account, error) {
			assert.Equal(t, "obj-1", id, "account id must come from the session, not the body")
			return testAccount(), nil
		},
	}
	h := newTestHandlerWith(t, &service.Services{AuthService: sessionAuth(), ProfileService: profiles})

	body := `{"id":"someone-else","bio":"hi"}`
	rec := serve(h, withSessionCookie(httptest.NewRequest(http.MethodPut, "/api/profile/update", strings.NewReader(body))))

	assert.Equal(t, http.StatusOK, rec.Code)
}
