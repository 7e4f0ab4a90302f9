package main

import (
	"context"

	"github.com/MKhiriev/go-posts-client/internal/config"
	handler "github.com/MKhiriev/go-posts-client/internal/handler/http"
	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/server"
	"github.com/MKhiriev/go-posts-client/internal/service"
	"github.com/MKhiriev/go-posts-client/internal/store"
)

func main() {
	log := logger.NewLogger("posts-api")
	cfg, err := config.GetAPIConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storage, err := store.NewPostStorage(context.Background(), cfg.Posts, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating posts storage")
	}
	defer storage.Close()

	services := service.NewServices(storage, log)
	h := handler.NewHandler(services, cfg.Server, log)

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server")
		return
	}

	if err = srv.RunServer(); err != nil {
		storage.Close()
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
