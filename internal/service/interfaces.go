// Package service implements the application's use cases on top of the store
// and the outbound adapters. The batch service is the synchronous API the UI
// layer calls; the sync engine is the background consumer of the durable work
// queue. The two never call each other directly; they meet only at the
// database.
package service

import (
	"context"
	"io"

	"github.com/pkostin/fieldsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BatchService is the UI-facing API for managing inspection batches and their
// photos. Every method works against the local store only and returns without
// waiting on the network; remote effects happen later through the sync queue.
type BatchService interface {
	// CreateBatch starts a new inspection batch for the given external
	// reference (order number or inventory id).
	CreateBatch(ctx context.Context, referenceID string) (models.Batch, error)

	// GetBatchDetails returns a batch with all of its photos.
	GetBatchDetails(ctx context.Context, batchID int64) (models.BatchDetails, error)

	// AddPhoto stores the photo blob locally, persists the photo record, and
	// enqueues its upload. Fails with store.ErrBatchNotFound when the batch
	// does not exist.
	AddPhoto(ctx context.Context, batchID int64, blob io.Reader, meta models.PhotoMeta) (models.Photo, error)

	// SavePhotoAnnotations replaces the photo's annotation overlay. If an
	// upload for the photo is still pending or failed it is coalesced so
	// only the latest version of the photo is ever sent.
	SavePhotoAnnotations(ctx context.Context, photoID string, annotations []models.Annotation) error

	// DeletePhoto removes the photo locally and withdraws any queued upload.
	// An upload already in flight is flagged for cancellation and its result
	// is discarded when it lands.
	DeletePhoto(ctx context.Context, photoID string) error

	// CompleteBatch marks the capture session finished and enqueues the
	// batch export. Fails with store.ErrIllegalBatchTransition unless the
	// batch is in progress.
	CompleteBatch(ctx context.Context, batchID int64) (models.Batch, error)

	// GetSyncStats returns per-state queue item counts.
	GetSyncStats(ctx context.Context) (models.SyncStats, error)

	// RetryFailed resets every failed queue item to pending, due
	// immediately, and wakes the sync engine. Returns the reset count.
	RetryFailed(ctx context.Context) (int64, error)

	// RetryPhoto resets a single photo out of the error state and reschedules
	// its failed upload.
	RetryPhoto(ctx context.Context, photoID string) error
}

// SyncEngine drains the durable work queue against the remote services.
type SyncEngine interface {
	// DrainOnce claims and processes every currently due queue item, then
	// returns. Individual item failures are recorded on the item and never
	// propagate; the returned error covers only queue scanning itself.
	// Returns the number of items processed.
	DrainOnce(ctx context.Context) (int, error)
}

// SyncJob runs the sync engine in the background: on a poll ticker, on
// connectivity regained, and on explicit wake-ups.
type SyncJob interface {
	// Start launches the background goroutine. Any previously running job is
	// stopped first. The goroutine exits when ctx is cancelled or Stop is
	// called.
	Start(ctx context.Context)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated. Safe to call when the job is not running.
	Stop()

	// Wake asks the job to drain the queue as soon as possible. Non-blocking;
	// redundant wake-ups collapse into one.
	Wake()
}
