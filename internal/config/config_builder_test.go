// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storageConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{Cosmic: Cosmic{BucketSlug: "bucket", ReadKey: "read", WriteKey: "write"}},
	}
}

func TestConfigBuilder_Build_LaterSourceWins(t *testing.T) {
	first := storageConfig()
	first.App.TokenIssuer = "env-issuer"
	first.Server.HTTPAddress = "localhost:8080"

	second := &StructuredConfig{}
	second.App.TokenIssuer = "json-issuer"

	b := &configBuilder{configs: []*StructuredConfig{first, second}}
	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "bucket", cfg.Storage.Cosmic.BucketSlug)
}

func TestConfigBuilder_Build_ReturnsAccumulatedError(t *testing.T) {
	b := &configBuilder{err: errors.New("boom")}

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "boom")
}

func TestConfigBuilder_Build_ValidatesResult(t *testing.T) {
	b := &configBuilder{configs: []*StructuredConfig{{}}}

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestConfigBuilder_EnvFlagsJSON(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_COSMIC_BUCKET_SLUG": "env-bucket",
		"STORAGE_COSMIC_READ_KEY":    "env-read",
		"STORAGE_COSMIC_WRITE_KEY":   "env-write",
		"APP_TOKEN_ISSUER":           "env-issuer",
	})

	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app":{"token_duration":"2h"}}`), 0o600))

	b := &configBuilder{args: []string{"-token-issuer", "flag-issuer", "-c", p}}
	cfg, err := b.withEnv().withFlags().withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "env-bucket", cfg.Storage.Cosmic.BucketSlug)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, p, cfg.JSONFilePath)
}

func TestConfigBuilder_WithJSON_MissingFile(t *testing.T) {
	b := &configBuilder{configs: []*StructuredConfig{{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")}}}

	_, err := b.withJSON().build()
	assert.Error(t, err)
}

func TestConfigBuilder_WithFlags_Invalid(t *testing.T) {
	b := &configBuilder{args: []string{"-a", "bad"}}

	_, err := b.withFlags().build()
	assert.Error(t, err)
}
