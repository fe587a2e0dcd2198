package worker

import (
	"context"
)

// Worker is the interface all background workers implement.
type Worker interface {
	// Start runs the worker until Stop is called or ctx is cancelled.
	Start(ctx context.Context) error

	// Stop signals the worker to finish.
	Stop() error

	// Name returns the worker name.
	Name() string
}
