// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts
// multiple workers with a shared context and waits for them to stop.
package workers

import (
	"context"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// KeyRefresher re-fetches the signing keys of the identity provider.
// It is implemented by service.AuthService.
type KeyRefresher interface {
	RefreshKeys(ctx context.Context) error
}

// Pinger reports whether a dependency is reachable. It is implemented by
// *store.Storages.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatusSetter receives serving status updates. It is implemented by
// *health.Server from google.golang.org/grpc/health.
type HealthStatusSetter interface {
	SetServingStatus(service string, status healthpb.HealthCheckResponse_ServingStatus)
}
