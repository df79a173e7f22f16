package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/coffee-shop/internal/logger"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type healthReportWorker struct {
	pinger   Pinger
	health   HealthStatusSetter
	services []string
	interval time.Duration

	last healthpb.HealthCheckResponse_ServingStatus

	logger *logger.Logger
}

// NewHealthReportWorker returns a worker that pings storage every interval
// and publishes SERVING or NOT_SERVING for each name in services. The empty
// name stands for the server as a whole.
func NewHealthReportWorker(pinger Pinger, health HealthStatusSetter, services []string, interval time.Duration, logger *logger.Logger) Worker {
	return &healthReportWorker{
		pinger:   pinger,
		health:   health,
		services: services,
		interval: interval,
		last:     healthpb.HealthCheckResponse_UNKNOWN,
		logger:   logger,
	}
}

func (w *healthReportWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("health report worker started")
	defer w.logger.Info().Msg("health report worker stopped")

	w.report(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.publish(healthpb.HealthCheckResponse_NOT_SERVING)
			return
		case <-ticker.C:
			w.report(ctx)
		}
	}
}

func (w *healthReportWorker) report(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := w.pinger.Ping(pingCtx); err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Err(err).Str("func", "healthReportWorker.report").Msg("storage is unreachable")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	w.publish(status)
}

func (w *healthReportWorker) publish(status healthpb.HealthCheckResponse_ServingStatus) {
	if status != w.last {
		w.logger.Info().Str("status", status.String()).Msg("serving status changed")
		w.last = status
	}

	for _, service := range w.services {
		w.health.SetServingStatus(service, status)
	}
}
