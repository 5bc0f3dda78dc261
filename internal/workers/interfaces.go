// Package workers bundles the agent's background processes: the connectivity
// probe, the queue drain job, and the done-item pruner. The aggregate gives
// the composition root one Run call instead of one per process.
package workers

import "context"

// Worker is one background process of the agent. Run must not block: it
// either starts goroutines internally or delegates to a component that does.
// All work stops when ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
