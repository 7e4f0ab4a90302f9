package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-posts-client/internal/adapter"
	"github.com/MKhiriev/go-posts-client/internal/client"
	"github.com/MKhiriev/go-posts-client/internal/config"
	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/service"
	"github.com/MKhiriev/go-posts-client/internal/store"
	"github.com/MKhiriev/go-posts-client/internal/tui"
	"github.com/MKhiriev/go-posts-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("posts-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("posts-client", cfg.App.LogFile)
	ctx := context.Background()

	postsAdapter := adapter.NewHTTPPostsAdapter(cfg.Adapter, log)

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, postsAdapter, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, localStorage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
