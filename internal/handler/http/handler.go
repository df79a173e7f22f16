package http

import (
	"time"

	"github.com/MKhiriev/coffee-shop/internal/config"
	"github.com/MKhiriev/coffee-shop/internal/logger"
	"github.com/MKhiriev/coffee-shop/internal/service"
)

type Handler struct {
	services *service.Services
	env      config.Environment

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, env config.Environment, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		env:            env,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
