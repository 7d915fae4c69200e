// Package workers runs the long-lived background tasks of the sync client
// side by side and stops them together.
package workers

import "context"

// Worker is a background task. Run blocks until the task is finished or ctx
// is done. A non-nil error stops the sibling workers.
type Worker interface {
	Run(ctx context.Context) error
}
