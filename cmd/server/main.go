package main

import (
	"context"
	"fmt"

	"github.com/heydancer/dancer-profile/internal/config"
	handler "github.com/heydancer/dancer-profile/internal/handler/http"
	"github.com/heydancer/dancer-profile/internal/logger"
	"github.com/heydancer/dancer-profile/internal/server"
	"github.com/heydancer/dancer-profile/internal/service"
	"github.com/heydancer/dancer-profile/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("dancer-profile-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, log)

	verifier, err := handler.NewStaticVerifier(cfg.Security.Username, cfg.Security.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating credential verifier")
	}

	handlers := handler.NewHandler(services, verifier, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
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
