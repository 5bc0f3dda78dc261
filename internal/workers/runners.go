package workers

import (
	"context"

	"github.com/pkostin/fieldsync/internal/netmon"
	"github.com/pkostin/fieldsync/internal/service"
)

// monitorWorker runs the connectivity probe loop in the background.
type monitorWorker struct {
	monitor netmon.Monitor
}

func NewMonitorWorker(monitor netmon.Monitor) Worker {
	return monitorWorker{monitor: monitor}
}

func (w monitorWorker) Run(ctx context.Context) {
	go w.monitor.Run(ctx)
}

// syncJobWorker starts the queue drain job. SyncJob.Start is already
// non-blocking, so no extra goroutine here.
type syncJobWorker struct {
	job service.SyncJob
}

func NewSyncJobWorker(job service.SyncJob) Worker {
	return syncJobWorker{job: job}
}

func (w syncJobWorker) Run(ctx context.Context) {
	w.job.Start(ctx)
}
