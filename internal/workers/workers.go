package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/coffee-shop/internal/config"
	"github.com/MKhiriev/coffee-shop/internal/logger"
)

type Workers struct {
	workers []Worker

	wg sync.WaitGroup
}

// NewWorkers builds the background workers of the server. The health
// reporter is only created when health is not nil, i.e. when the gRPC
// server is enabled.
func NewWorkers(cfg config.Workers, keyRefresher KeyRefresher, pinger Pinger, health HealthStatusSetter, healthServices []string, logger *logger.Logger) *Workers {
	w := &Workers{}

	w.workers = append(w.workers, NewKeyRefreshWorker(keyRefresher, cfg.KeyRefreshInterval, logger))
	if health != nil {
		w.workers = append(w.workers, NewHealthReportWorker(pinger, health, healthServices, cfg.HealthCheckInterval, logger))
	}

	return w
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Go(func() {
			worker.Run(ctx)
		})
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
