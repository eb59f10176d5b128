package server

import "context"

// Server defines the lifecycle contract of the preview server.
type Server interface {
	// RunServer serves until ctx is cancelled or SIGINT, SIGTERM or SIGQUIT
	// arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Serve serves until ctx is cancelled, then shuts down gracefully. It
	// returns the listen error, if any.
	Serve(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
