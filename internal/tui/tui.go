// Package tui is the terminal front end of the posts client. It renders the
// state of [service.PostsController] with bubbletea and turns key presses into
// controller operations.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-posts-client/internal/logger"
	"github.com/MKhiriev/go-posts-client/internal/service"
	"github.com/MKhiriev/go-posts-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoController = errors.New("posts controller is not configured")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.PostsController == nil {
		return nil, ErrNoController
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger.WithComponent("tui")}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newPostsModel(ctx, t.services.PostsController, t.buildInfo)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Msg("terminal ui stopped by signal")
			return nil
		}
		return fmt.Errorf("error running terminal ui: %w", err)
	}
	return nil
}
