package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")

	jsonBody := `{
		"app": {
			"environment": "production",
			"token_sign_key": "json-key",
			"token_issuer": "json-issuer",
			"token_duration": "24h",
			"refresh_token_duration": "168h",
			"password_hash_cost": 11,
			"admin_emails": ["admin@example.com"]
		},
		"storage": {
			"cosmic": {
				"bucket_slug": "coffee",
				"read_key": "r",
				"write_key": "w",
				"request_timeout": "3s"
			}
		},
		"server": {
			"http_address": "0.0.0.0:8080",
			"request_timeout": "20s",
			"protected_routes": ["/dashboard"],
			"trust_proxy_headers": true
		},
		"workers": { "hash_concurrency": 2 }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 168*time.Hour, cfg.App.RefreshTokenDuration)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)
	assert.Equal(t, []string{"admin@example.com"}, cfg.App.AdminEmails)
	assert.Equal(t, "coffee", cfg.Storage.Cosmic.BucketSlug)
	assert.Equal(t, 3*time.Second, cfg.Storage.Cosmic.RequestTimeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"/dashboard"}, cfg.Server.ProtectedRoutes)
	assert.True(t, cfg.Server.TrustProxyHeaders)
	assert.Equal(t, 2, cfg.Workers.HashConcurrency)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app":{"token_duration":"forever"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_JSONRoundTrip(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"90m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	out, err := json.Marshal(Duration(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}
