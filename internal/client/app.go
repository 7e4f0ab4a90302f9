package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/store"
)

var ErrNoUI = errors.New("no user interface configured")

// App runs a front end over the client storages and releases them on exit.
type App struct {
	ui       UI
	storages *store.ClientStorages
	logger   *logger.Logger
}

func NewApp(ui UI, storages *store.ClientStorages, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	return &App{ui: ui, storages: storages, logger: logger.WithComponent("client")}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	a.logger.Info().Msg("client started")
	runErr := a.ui.Run(ctx)

	if a.storages != nil {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("error closing client storages")
		}
	}

	if runErr != nil {
		return fmt.Errorf("client stopped with error: %w", runErr)
	}
	a.logger.Info().Msg("client stopped")
	return nil
}
