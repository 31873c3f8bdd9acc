package store

import (
	"github.com/cosmic-community/coffee-closer-network/internal/adapter"
	"github.com/cosmic-community/coffee-closer-network/internal/config"
	"github.com/cosmic-community/coffee-closer-network/internal/logger"
)

// Storages aggregates every repository of the service.
type Storages struct {
	AccountRepository AccountRepository
}

// NewStorages builds the repositories on top of the configured content store.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	contentStore, err := adapter.NewCosmicStore(cfg.Cosmic, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		AccountRepository: NewAccountRepository(contentStore, cfg.Cosmic.ObjectType, logger),
	}, nil
}
