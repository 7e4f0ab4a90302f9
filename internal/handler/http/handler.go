package http

import (
	"fmt"

	"github.com/MKhiriev/go-posts-client/internal/config"
	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/render"
	"github.com/MKhiriev/go-posts-client/internal/service"
	"github.com/MKhiriev/go-posts-client/internal/utils"
)

// Handler serves the development posts API.
type Handler struct {
	services *service.Services
	cfg      config.Server
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("posts api handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// WebHandler serves the browser front end.
type WebHandler struct {
	services *service.ClientServices
	renderer *render.HTMLRenderer
	cfg      config.Server
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewWebHandler(services *service.ClientServices, cfg config.Server, logger *logger.Logger) (*WebHandler, error) {
	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		return nil, fmt.Errorf("error creating html renderer: %w", err)
	}

	logger.Info().Msg("web handler created")
	return &WebHandler{
		services: services,
		renderer: renderer,
		cfg:      cfg,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}, nil
}
