package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// BackgroundRunner is started together with the transports and stopped with
// them. It is implemented by *workers.Workers.
type BackgroundRunner interface {
	// Run starts the background jobs and returns immediately. They stop
	// when ctx is cancelled.
	Run(ctx context.Context)
	// Wait blocks until every job has returned.
	Wait()
}
