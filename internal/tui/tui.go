package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/coffee-shop/internal/config"
	"github.com/MKhiriev/coffee-shop/internal/logger"
	"github.com/MKhiriev/coffee-shop/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	env       config.Environment
	buildInfo models.AppBuildInfo
	copy      CopyFunc

	logger *logger.Logger
}

// New creates the inspector UI backed by the system clipboard.
func New(env config.Environment, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		env:       env,
		buildInfo: buildInfo,
		copy:      clipboard.WriteAll,
		logger:    logger,
	}
}

// Run shows the inspector until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.env, t.buildInfo, t.copy)

	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Msg("inspector stopped by signal")
			return nil
		}
		return fmt.Errorf("run inspector: %w", err)
	}

	return nil
}
