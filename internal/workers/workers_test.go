// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkostin/fieldsync/internal/logger"
)

// recordingWorker tracks how many times Run was called.
type recordingWorker struct {
	runCount int
}

func (w *recordingWorker) Run(context.Context) {
	w.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &recordingWorker{}
	w2 := &recordingWorker{}
	w3 := &recordingWorker{}

	NewWorkers(w1, w2, w3).Run(context.Background())

	for i, w := range []*recordingWorker{w1, w2, w3} {
		assert.Equalf(t, 1, w.runCount, "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// must not panic with no workers registered
	NewWorkers().Run(context.Background())
}

func TestWorkers_Run_Order(t *testing.T) {
	var order []int

	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	NewWorkers(newOrderWorker(1), newOrderWorker(2), newOrderWorker(3)).Run(context.Background())

	assert.Equal(t, []int{1, 2, 3}, order)
}

// orderWorker appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run(context.Context) {
	*o.order = append(*o.order, o.id)
}

// stubPruneStore counts prune calls and records the most recent cutoff.
type stubPruneStore struct {
	calls  atomic.Int32
	cutoff atomic.Value
}

func (s *stubPruneStore) PruneDoneQueueItems(_ context.Context, cutoff time.Time) (int64, error) {
	s.cutoff.Store(cutoff)
	s.calls.Add(1)
	return 1, nil
}

func TestDonePruner_SweepsOnTicker(t *testing.T) {
	store := &stubPruneStore{}
	p := NewDonePruner(store, logger.Nop()).(*donePruner)
	p.interval = 10 * time.Millisecond
	p.retention = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Run(ctx)

	require.Eventually(t, func() bool {
		return store.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cutoff := store.cutoff.Load().(time.Time)
	assert.WithinDuration(t, time.Now().UTC().Add(-time.Hour), cutoff, time.Minute)
}

func TestDonePruner_StopsOnContextCancel(t *testing.T) {
	store := &stubPruneStore{}
	p := NewDonePruner(store, logger.Nop()).(*donePruner)
	p.interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	p.Run(ctx)

	require.Eventually(t, func() bool {
		return store.calls.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(30 * time.Millisecond)
	after := store.calls.Load()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, store.calls.Load())
}
