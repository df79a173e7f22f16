package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/coffee-shop/internal/logger"
)

type keyRefreshWorker struct {
	refresher KeyRefresher
	interval  time.Duration

	logger *logger.Logger
}

// NewKeyRefreshWorker returns a worker that refreshes the signing keys once
// on start, so the first request does not pay for the download, and then
// every interval. A failed refresh is logged and the cached keys are kept.
func NewKeyRefreshWorker(refresher KeyRefresher, interval time.Duration, logger *logger.Logger) Worker {
	return &keyRefreshWorker{
		refresher: refresher,
		interval:  interval,
		logger:    logger,
	}
}

func (w *keyRefreshWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("key refresh worker started")
	defer w.logger.Info().Msg("key refresh worker stopped")

	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *keyRefreshWorker) refresh(ctx context.Context) {
	if err := w.refresher.RefreshKeys(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Err(err).Str("func", "keyRefreshWorker.refresh").Msg("failed to refresh signing keys")
	}
}
