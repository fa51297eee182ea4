package main

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go"
	"github.com/MKhiriev/go-fleet-logbook/internal/config"
	"github.com/MKhiriev/go-fleet-logbook/internal/handler"
	"github.com/MKhiriev/go-fleet-logbook/internal/identity"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"github.com/MKhiriev/go-fleet-logbook/internal/server"
	"github.com/MKhiriev/go-fleet-logbook/internal/service"
	"github.com/MKhiriev/go-fleet-logbook/internal/store"
	"github.com/MKhiriev/go-fleet-logbook/internal/utils"
	"github.com/MKhiriev/go-fleet-logbook/internal/workers"
	"github.com/MKhiriev/go-fleet-logbook/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("logbook-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx := context.Background()

	var app *firebase.App
	if cfg.Storage.Backend == config.BackendFirestore || cfg.App.IdentityProvider == config.IdentityFirebase {
		app, err = store.NewFirebaseApp(ctx, cfg.Firebase)
		if err != nil {
			log.Fatal().Err(err).Msg("error initializing Firebase app")
		}
	}

	storages, err := store.NewStorages(ctx, cfg, app, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	ids := utils.NewULIDGenerator()

	provider, err := identity.NewProvider(ctx, cfg.App, app, storages.UserRepository, ids, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating identity provider")
	}

	services, err := service.NewServices(storages, provider, ids, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	jobs, err := workers.NewWorkers(services, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating workers")
	}

	srv, err := server.NewServer(handlers, jobs, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	info := build.Info()
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
