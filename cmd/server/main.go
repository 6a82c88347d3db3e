package main

import (
	"context"
	"fmt"

	"github.com/vivek7557/meal-pre-ai-agent/internal/config"
	myHTTP "github.com/vivek7557/meal-pre-ai-agent/internal/handler/http"
	"github.com/vivek7557/meal-pre-ai-agent/internal/logger"
	"github.com/vivek7557/meal-pre-ai-agent/internal/server"
	"github.com/vivek7557/meal-pre-ai-agent/internal/service"
	"github.com/vivek7557/meal-pre-ai-agent/internal/store"

	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// optional .env for local development; real deployments set env directly
	_ = godotenv.Load()

	log := logger.NewLogger("meal-prep-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, *cfg, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
