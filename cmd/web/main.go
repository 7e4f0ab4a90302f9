package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-posts-client/internal/adapter"
	"github.com/MKhiriev/go-posts-client/internal/config"
	handler "github.com/MKhiriev/go-posts-client/internal/handler/http"
	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/server"
	"github.com/MKhiriev/go-posts-client/internal/service"
	"github.com/MKhiriev/go-posts-client/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("posts-web")
	cfg, err := config.GetWebConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")
	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Client.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewClientServices(storages, adapter.NewHTTPPostsAdapter(cfg.Client.Adapter, log), log)
	if savedCfg, ok := services.PostsController.Initialize(ctx); ok {
		log.Info().Str("api_base_url", savedCfg.APIBaseURL).Msg("restored saved base url")
	}

	webHandler, err := handler.NewWebHandler(services, cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating web handler")
		return
	}

	srv, err := server.NewServer(webHandler.Init(), cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server")
		return
	}

	if err = srv.RunServer(); err != nil {
		storages.Close()
		log.Fatal().Err(err).Msg("server stopped with error")
	}
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
