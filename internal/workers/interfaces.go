// Package workers runs the server's background jobs.
// It defines the Worker interface and a Workers aggregate that runs every
// registered worker until the shared context is cancelled.
package workers

import "context"

// Worker is a long-running background job.
//
// Run blocks until ctx is cancelled or the job fails. A worker that stops
// because ctx was cancelled returns nil.
//
// Example implementation:
//
//	type ticker struct{}
//
//	func (t *ticker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
