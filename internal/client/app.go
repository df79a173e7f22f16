package client

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/coffee-shop/internal/config"
	"github.com/MKhiriev/coffee-shop/internal/logger"
	"github.com/MKhiriev/coffee-shop/internal/tui"
	"github.com/MKhiriev/coffee-shop/models"
)

// Inspector is the interactive part of the client.
type Inspector interface {
	Run(ctx context.Context) error
}

type App struct {
	inspector Inspector

	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		inspector: tui.New(cfg.Environment, buildInfo, logger),
		logger:    logger,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("starting environment inspector")
	defer a.logger.Info().Msg("environment inspector closed")

	return a.inspector.Run(ctx)
}

var _ Client = (*App)(nil)
