package service

import (
	"github.com/cosmic-community/coffee-closer-network/internal/config"
	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"github.com/cosmic-community/coffee-closer-network/internal/store"
	"github.com/cosmic-community/coffee-closer-network/internal/workers"
)

// Services aggregates every service consumed by the transport layer.
type Services struct {
	AuthService      AuthService
	ProfileService   ProfileService
	DuplicateChecker DuplicateChecker
	AppInfoService   AppInfoService
}

// NewServices wires the services on top of storages. Password hashing runs
// on a worker pool sized by cfg.Workers.HashConcurrency.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	hashPool := workers.NewPool("password_hash", cfg.Workers.HashConcurrency)
	logger.Info().Int("hash_workers", hashPool.Size()).Msg("password hash pool ready")
	hasher := NewPasswordHasher(cfg.App.PasswordHashCost, hashPool)

	profiles := NewProfileService(storages.AccountRepository, logger)
	duplicates := NewDuplicateChecker(storages.AccountRepository, logger)

	return &Services{
		AuthService:      NewAuthService(storages.AccountRepository, profiles, duplicates, hasher, cfg.App, logger),
		ProfileService:   profiles,
		DuplicateChecker: duplicates,
		AppInfoService:   appInfo,
	}, nil
}
