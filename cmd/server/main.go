package main

import (
	"context"
	"fmt"

	"github.com/checkoutewb/backend/internal/adapter"
	"github.com/checkoutewb/backend/internal/config"
	handlerhttp "github.com/checkoutewb/backend/internal/handler/http"
	"github.com/checkoutewb/backend/internal/logger"
	"github.com/checkoutewb/backend/internal/server"
	"github.com/checkoutewb/backend/internal/service"
	"github.com/checkoutewb/backend/internal/store"
	"github.com/checkoutewb/backend/migrations"
	"github.com/checkoutewb/backend/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("auction-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	// The bidding switch defaults to off for a fresh database; an existing
	// row is left alone so the admin's last toggle survives restarts.
	if err = storages.FlagRepository.EnsureFlag(ctx, models.BiddingEnabledFlag, false); err != nil {
		log.Fatal().Err(err).Msg("error seeding bidding flag")
	}

	images, err := adapter.NewMinioImageStore(ctx, cfg.Images, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to object storage")
	}

	services := service.NewServices(storages, images, cfg, log)
	handlers := handlerhttp.NewHandler(services, cfg.Server, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
