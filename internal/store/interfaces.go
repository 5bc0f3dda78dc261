// SPDX-License-Identifier: Apache-2.0

// Package store is the single owner of all persisted state: batches, photos,
// and the sync queue live in one local SQLite database, and every mutation,
// whether it comes from the UI layer or from the sync engine, goes through
// this package so cross-entity writes share one transaction boundary.
package store

import (
	"context"
	"io"
	"time"

	"github.com/pkostin/fieldsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BatchRepository is the low-level batches table access.
type BatchRepository interface {
	CreateBatch(ctx context.Context, ownerUserID, referenceID string, now time.Time) (models.Batch, error)
	GetBatch(ctx context.Context, batchID int64) (models.Batch, error)
	AdvanceStatus(ctx context.Context, batchID int64, next models.BatchStatus, now time.Time) error
	SetExportedRecordID(ctx context.Context, batchID int64, recordID string, now time.Time) error
}

// PhotoRepository is the low-level photos table access.
type PhotoRepository interface {
	InsertPhoto(ctx context.Context, photo models.Photo) error
	GetPhoto(ctx context.Context, photoID string) (models.Photo, error)
	GetPhotosByBatch(ctx context.Context, batchID int64) ([]models.Photo, error)
	UpdateSyncStatus(ctx context.Context, photoID string, status models.PhotoSyncStatus, detail string, now time.Time) (models.Photo, error)
	SetRemoteRecordID(ctx context.Context, photoID, recordID string, now time.Time) error
	UpdateAnnotations(ctx context.Context, photoID string, annotations []models.Annotation, now time.Time) error
	ResetAfterError(ctx context.Context, photoID string, now time.Time) error
	DeletePhoto(ctx context.Context, photoID string) error
}

// QueueRepository is the low-level sync_queue table access.
type QueueRepository interface {
	Enqueue(ctx context.Context, kind models.QueueItemKind, targetID, payloadRef, idempotencyKey string, now time.Time) error
	GetItem(ctx context.Context, itemID int64) (models.QueueItem, error)
	ListDue(ctx context.Context, now time.Time, limit int) ([]models.QueueItem, error)
	ClaimInFlight(ctx context.Context, itemID int64, now time.Time) error
	MarkDone(ctx context.Context, itemID int64, now time.Time) error
	MarkFailed(ctx context.Context, itemID int64, nextAttemptAt time.Time, lastError string, autoRetry bool, now time.Time) error
	DeleteItem(ctx context.Context, itemID int64) error
	DeleteLiveItemsForTarget(ctx context.Context, targetID string) error
	RequestCancelForTarget(ctx context.Context, targetID string, now time.Time) error
	ResetFailed(ctx context.Context, now time.Time) (int64, error)
	ResetFailedForTarget(ctx context.Context, targetID string, now time.Time) error
	RequeueInFlight(ctx context.Context, now time.Time) (int64, error)
	CountByState(ctx context.Context) (models.SyncStats, error)
	PruneDone(ctx context.Context, cutoff time.Time) (int64, error)
}

// LocalStore is the transactional facade consumed by the service layer. Each
// method that touches more than one entity commits all of its writes in a
// single transaction; a crash mid-write leaves the store in the pre-write
// state.
type LocalStore interface {
	// CreateBatch creates a batch in InProgress. Fails with ErrValidation
	// when referenceID is empty.
	CreateBatch(ctx context.Context, ownerUserID, referenceID string) (models.Batch, error)

	// GetBatchDetails returns a batch with its photos.
	GetBatchDetails(ctx context.Context, batchID int64) (models.BatchDetails, error)

	// AddPhoto persists the photo and its pending upload queue item in one
	// transaction. Fails with ErrBatchNotFound when the batch is missing.
	AddPhoto(ctx context.Context, photo models.Photo, idempotencyKey string) (models.Photo, error)

	// GetPhoto returns one photo by id.
	GetPhoto(ctx context.Context, photoID string) (models.Photo, error)

	// UpdatePhotoSyncStatus applies a status transition; invalid successors
	// are an idempotent no-op and the current record is returned.
	UpdatePhotoSyncStatus(ctx context.Context, photoID string, status models.PhotoSyncStatus, detail string) (models.Photo, error)

	// SavePhotoAnnotations stores the overlay and coalesces the photo's
	// upload queue item (or enqueues a fresh one when the previous upload
	// already settled) in one transaction.
	SavePhotoAnnotations(ctx context.Context, photoID string, annotations []models.Annotation, idempotencyKey string) error

	// DeletePhoto removes the photo row and its live queue items; an
	// in-flight item is flagged for cancellation instead of being deleted.
	// The removed photo is returned so the caller can drop the backing blob.
	DeletePhoto(ctx context.Context, photoID string) (models.Photo, error)

	// CompleteBatch advances the batch to Completed and enqueues its
	// export_batch item in one transaction.
	CompleteBatch(ctx context.Context, batchID int64, payloadRef, idempotencyKey string) (models.Batch, error)

	// ListDueQueueItems returns dispatchable items at now; see
	// QueueRepository.ListDue for ordering and exclusion rules.
	ListDueQueueItems(ctx context.Context, now time.Time, limit int) ([]models.QueueItem, error)

	// GetQueueItem returns one queue item by id.
	GetQueueItem(ctx context.Context, itemID int64) (models.QueueItem, error)

	// ClaimInFlight performs the single-flight claim. Claiming a failed
	// upload item also resets its photo out of error, so the fresh attempt
	// can walk the status machine again.
	ClaimInFlight(ctx context.Context, itemID int64) error

	// CompleteUploadPhoto settles a successful photo upload: item done,
	// photo synced, remote record id recorded, in one transaction.
	CompleteUploadPhoto(ctx context.Context, itemID int64, photoID, recordID string) error

	// CompleteExportBatch settles a successful artifact export: item done,
	// exported record id stored on the batch, and the follow-up
	// attach_to_crm item enqueued, in one transaction.
	CompleteExportBatch(ctx context.Context, itemID, batchID int64, recordID, attachIdempotencyKey string) error

	// CompleteAttachToCrm settles a successful CRM attachment: item done and
	// the batch advanced to Exported, in one transaction.
	CompleteAttachToCrm(ctx context.Context, itemID, batchID int64) error

	// FailQueueItem records a failed attempt; autoRetry=false parks the item
	// for manual retry. Upload failures push the photo to error; terminal
	// export/attach failures push the batch to error.
	FailQueueItem(ctx context.Context, item models.QueueItem, nextAttemptAt time.Time, lastError string, autoRetry bool) error

	// FinishCancelled discards a cancelled in-flight item after its remote
	// call returned; the photo row is already gone by then.
	FinishCancelled(ctx context.Context, itemID int64) error

	// RetryFailed resets every failed item back to pending, due immediately,
	// together with the error photos and error batches those items target.
	// Returns the reset item count.
	RetryFailed(ctx context.Context) (int64, error)

	// RetryPhoto resets one photo's failed item and error status.
	RetryPhoto(ctx context.Context, photoID string) error

	// GetSyncStats returns queue item counts per state.
	GetSyncStats(ctx context.Context) (models.SyncStats, error)

	// PruneDoneQueueItems drops settled items older than cutoff.
	PruneDoneQueueItems(ctx context.Context, cutoff time.Time) (int64, error)
}

// BlobStore persists photo bytes outside the relational database.
type BlobStore interface {
	// Save streams the blob to disk under a content-addressed name and
	// returns its URI, SHA-256 content hash, and size.
	Save(ctx context.Context, r io.Reader) (uri, contentHash string, size int64, err error)

	// Open opens the blob at uri for reading.
	Open(ctx context.Context, uri string) (io.ReadSeekCloser, error)

	// Remove deletes the blob at uri. Removing a missing blob is not an
	// error.
	Remove(ctx context.Context, uri string) error
}
