package main

import (
	"fmt"

	"github.com/cosmic-community/coffee-closer-network/internal/config"
	"github.com/cosmic-community/coffee-closer-network/internal/handler"
	"github.com/cosmic-community/coffee-closer-network/internal/logger"
	"github.com/cosmic-community/coffee-closer-network/internal/server"
	"github.com/cosmic-community/coffee-closer-network/internal/service"
	"github.com/cosmic-community/coffee-closer-network/internal/store"
	"github.com/cosmic-community/coffee-closer-network/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("coffee-closer-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Str("level", cfg.App.LogLevel).Msg("invalid log level")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.Version
	}
	if cfg.App.InsecureSignKey {
		log.Warn().Msg("APP_TOKEN_SIGN_KEY is not set, using the development signing key")
	}

	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("address", cfg.Server.HTTPAddress).
		Str("bucket", cfg.Storage.Cosmic.BucketSlug).
		Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
