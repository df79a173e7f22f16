package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/coffee-shop/internal/adapter"
	"github.com/MKhiriev/coffee-shop/internal/config"
	"github.com/MKhiriev/coffee-shop/internal/handler"
	"github.com/MKhiriev/coffee-shop/internal/logger"
	"github.com/MKhiriev/coffee-shop/internal/server"
	"github.com/MKhiriev/coffee-shop/internal/service"
	"github.com/MKhiriev/coffee-shop/internal/store"
	"github.com/MKhiriev/coffee-shop/internal/workers"
	"github.com/MKhiriev/coffee-shop/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	cfg, err := config.GetServerConfig()
	if err != nil {
		logger.NewLogger("coffee-shop-server", false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("coffee-shop-server", cfg.Environment.Production())
	log.Debug().Any("environment", cfg.Environment).Msg("received configs")

	if err = run(cfg, buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

// run wires the server components and blocks until the server shuts down.
// Storage is closed on every return path.
func run(cfg *config.ServerConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	keySetProvider, err := adapter.NewHTTPKeySetAdapter(cfg.Environment.Auth0().KeySetURL(), cfg.Server.RequestTimeout, log)
	if err != nil {
		return fmt.Errorf("error creating key set adapter: %w", err)
	}

	services, err := service.NewServices(storages, keySetProvider, cfg.Environment, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	var (
		health         workers.HealthStatusSetter
		healthServices []string
	)
	if handlers.GRPC != nil {
		health = handlers.GRPC.HealthServer()
		healthServices = handlers.GRPC.ServiceNames()
	}
	background := workers.NewWorkers(cfg.Workers, services.AuthService, storages, health, healthServices, log)

	srv, err := server.NewServer(handlers, cfg.Server, background, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}
