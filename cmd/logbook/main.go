package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-fleet-logbook/internal/adapter"
	"github.com/MKhiriev/go-fleet-logbook/internal/config"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("logbook-cli")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPLogbookAPI(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating API client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli := &cli{api: api, out: os.Stdout, readFile: os.ReadFile}
	if err = cli.run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
