// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"time"

	"github.com/pkostin/fieldsync/internal/logger"
)

const (
	// defaultPruneInterval is how often settled queue items are swept.
	defaultPruneInterval = time.Hour

	// defaultPruneRetention is how long done items stay visible for
	// inspection before the sweep drops them.
	defaultPruneRetention = 24 * time.Hour
)

// QueuePruner is the store surface the pruner needs.
type QueuePruner interface {
	PruneDoneQueueItems(ctx context.Context, cutoff time.Time) (int64, error)
}

// donePruner periodically drops settled queue items older than the retention
// window, keeping the local database from growing without bound.
type donePruner struct {
	store     QueuePruner
	interval  time.Duration
	retention time.Duration
	logger    *logger.Logger
}

func NewDonePruner(store QueuePruner, log *logger.Logger) Worker {
	return &donePruner{
		store:     store,
		interval:  defaultPruneInterval,
		retention: defaultPruneRetention,
		logger:    log,
	}
}

func (p *donePruner) Run(ctx context.Context) {
	go func() {
		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				p.prune(ctx)
			}
		}
	}()
}

func (p *donePruner) prune(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-p.retention)

	pruned, err := p.store.PruneDoneQueueItems(ctx, cutoff)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Err(err).
				Str("func", "donePruner.prune").
				Msg("failed to prune done queue items")
		}
		return
	}

	if pruned > 0 {
		p.logger.Debug().
			Str("func", "donePruner.prune").
			Int64("pruned", pruned).
			Msg("done queue items pruned")
	}
}
