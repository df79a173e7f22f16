// Package grpc implements the gRPC transport of the application. It serves
// the standard gRPC health checking protocol so that orchestrators can probe
// the drinks API and its storage.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/coffee-shop/internal/logger"
	"github.com/MKhiriev/coffee-shop/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// DrinksServiceName is the health service name that reflects the
// availability of the drinks storage.
const DrinksServiceName = "coffeeshop.Drinks"

// versionHeader carries the server build version in every response header.
const versionHeader = "x-app-version"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose statuses are fed by the health report
// worker, and stores references to the service layer and structured logger
// used by its interceptors. A handler instance is created once at startup
// and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger. The drinks service starts as NOT_SERVING until the first storage
// probe succeeds.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus(DrinksServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the services of h to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// HealthServer returns the status store updated by the health worker.
func (h *Handler) HealthServer() *health.Server {
	return h.health
}

// ServiceNames lists the health services the health worker reports on. The
// empty name is the overall server status.
func (h *Handler) ServiceNames() []string {
	return []string{"", DrinksServiceName}
}

// Shutdown marks every service NOT_SERVING so that clients stop routing
// calls before the server goes away.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryInterceptor logs every unary call and attaches the server version to
// the response header.
func (h *Handler) UnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	if h.services != nil && h.services.AppInfoService != nil {
		version := h.services.AppInfoService.GetAppVersion(ctx)
		if err := grpc.SetHeader(ctx, metadata.Pairs(versionHeader, version)); err != nil {
			h.logger.Debug().Err(err).Msg("failed to set version header")
		}
	}

	resp, err := handler(ctx, req)

	h.logger.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
