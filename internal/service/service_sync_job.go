package service

import (
	"context"
	"sync"
	"time"

	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/pkostin/fieldsync/internal/netmon"
)

type syncJob struct {
	engine       SyncEngine
	monitor      netmon.Monitor
	pollInterval time.Duration
	wake         chan struct{}
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that drains the queue on a poll ticker, when
// connectivity comes back, and on explicit Wake calls. The job is idle until
// Start is called.
func NewSyncJob(engine SyncEngine, monitor netmon.Monitor, pollInterval time.Duration, log *logger.Logger) SyncJob {
	if pollInterval <= 0 {
		pollInterval = 30 * time.Second
	}

	return &syncJob{
		engine:       engine,
		monitor:      monitor,
		pollInterval: pollInterval,
		wake:         make(chan struct{}, 1),
		logger:       log,
	}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that drains the queue on every trigger. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	// a nil channel never fires, so a job built without a monitor just
	// runs on the ticker and wake-ups
	var events <-chan netmon.Event
	if j.monitor != nil {
		events = j.monitor.Events()
	}

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.pollInterval)
		defer t.Stop()

		// an initial drain picks up whatever survived the last shutdown
		j.drain(jobCtx)

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.drain(jobCtx)
			case ev := <-events:
				if ev.Online {
					j.drain(jobCtx)
				}
			case <-j.wake:
				j.drain(jobCtx)
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Wake implements SyncJob. The buffered channel collapses bursts of wake-ups
// into a single drain.
func (j *syncJob) Wake() {
	select {
	case j.wake <- struct{}{}:
	default:
	}
}

// drain runs one engine pass unless the device is known to be offline.
// Offline passes are skipped entirely: every item would fail its remote call
// and burn an attempt.
func (j *syncJob) drain(ctx context.Context) {
	if j.monitor != nil && !j.monitor.IsOnline() {
		return
	}

	processed, err := j.engine.DrainOnce(ctx)
	if err != nil && ctx.Err() == nil {
		j.logger.Err(err).
			Str("func", "syncJob.drain").
			Msg("queue drain failed")
		return
	}

	if processed > 0 {
		j.logger.Debug().
			Str("func", "syncJob.drain").
			Int("processed", processed).
			Msg("queue drained")
	}
}
