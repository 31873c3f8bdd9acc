package handler

import (
	"testing"

	"github.com/cosmic-community/coffee-closer-network/internal/config"
	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"github.com/cosmic-community/coffee-closer-network/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer, so nil is safe for construction-time tests.
func newTestServices() *service.Services {
	return nil
}

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := &config.StructuredConfig{
		Server: config.Server{HTTPAddress: ":8080"},
	}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), &config.StructuredConfig{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_ProductionAndDevelopment(t *testing.T) {
	for _, env := range []string{"production", "development", ""} {
		t.Run(env, func(t *testing.T) {
			cfg := &config.StructuredConfig{
				App:    config.App{Environment: env},
				Server: config.Server{HTTPAddress: ":8080"},
			}

			h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

			require.NoError(t, err)
			assert.NotNil(t, h.HTTP)
		})
	}
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := &config.StructuredConfig{Server: config.Server{HTTPAddress: ":8080"}}

	h1, err1 := NewHandlers(newTestServices(), cfg, logger.Nop())
	h2, err2 := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
