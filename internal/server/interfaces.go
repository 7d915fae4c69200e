package server

import "context"

// Server defines the lifecycle contract of the development server.
type Server interface {
	// Run serves requests until ctx is done, then shuts down gracefully.
	// It returns the first error that stopped the listener, or nil after a
	// clean shutdown.
	Run(ctx context.Context) error
}
