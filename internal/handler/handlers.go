package handler

import (
	"github.com/cosmic-community/coffee-closer-network/internal/config"
	"github.com/cosmic-community/coffee-closer-network/internal/handler/http"
	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"github.com/cosmic-community/coffee-closer-network/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers enabled by cfg. The session
// cookie is marked Secure in production.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.Server, cfg.App.IsProduction(), logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
