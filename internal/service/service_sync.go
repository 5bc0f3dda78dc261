// SPDX-License-Identifier: Apache-2.0

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkostin/fieldsync/internal/adapter"
	"github.com/pkostin/fieldsync/internal/config"
	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/pkostin/fieldsync/internal/store"
	"github.com/pkostin/fieldsync/internal/utils"
	"github.com/pkostin/fieldsync/models"
)

// drainBatchSize bounds one queue scan so a huge backlog is worked through in
// rounds instead of loading everything at once.
const drainBatchSize = 16

// errPhotosNotSynced is a retryable condition: a batch export came due before
// all of its photos finished uploading.
var errPhotosNotSynced = fmt.Errorf("%w: photos still syncing", adapter.ErrUnavailable)

type syncEngine struct {
	localStore store.LocalStore
	blobs      store.BlobStore
	storage    adapter.StorageAdapter
	crm        adapter.CRMAdapter
	backoff    backoffSchedule
	workers    int
	logger     *logger.Logger

	// now is swappable in tests.
	now func() time.Time
}

// NewSyncEngine builds the queue consumer. Item processing is bounded by
// cfg.WorkerCount concurrent remote calls; failures are recorded on the item
// with the backoff schedule from cfg.
func NewSyncEngine(localStore store.LocalStore, blobs store.BlobStore, storageAdapter adapter.StorageAdapter, crmAdapter adapter.CRMAdapter, cfg config.Workers, log *logger.Logger) SyncEngine {
	workers := cfg.WorkerCount
	if workers < 1 {
		workers = 1
	}

	return &syncEngine{
		localStore: localStore,
		blobs:      blobs,
		storage:    storageAdapter,
		crm:        crmAdapter,
		backoff:    newBackoffSchedule(cfg),
		workers:    workers,
		logger:     log,
		now:        time.Now,
	}
}

// DrainOnce implements SyncEngine. It scans for due items in rounds and
// processes each round with bounded concurrency, until a scan comes back
// empty or nothing in a round could be claimed.
func (e *syncEngine) DrainOnce(ctx context.Context) (int, error) {
	total := 0

	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		items, err := e.localStore.ListDueQueueItems(ctx, e.now(), drainBatchSize)
		if err != nil {
			return total, fmt.Errorf("list due queue items: %w", err)
		}
		if len(items) == 0 {
			return total, nil
		}

		var (
			wg        sync.WaitGroup
			processed atomic.Int64
			sem       = make(chan struct{}, e.workers)
		)

		for _, item := range items {
			wg.Add(1)
			sem <- struct{}{}

			go func(it models.QueueItem) {
				defer wg.Done()
				defer func() { <-sem }()

				if e.processItem(ctx, it) {
					processed.Add(1)
				}
			}(item)
		}
		wg.Wait()

		total += int(processed.Load())

		// every item in the round lost its claim race: nothing to do here
		if processed.Load() == 0 {
			return total, nil
		}
	}
}

// processItem claims the item, dispatches it by kind, and settles the
// outcome. Returns false when the single-flight claim was lost.
func (e *syncEngine) processItem(ctx context.Context, item models.QueueItem) bool {
	log := e.logger.With().
		Str("func", "syncEngine.processItem").
		Int64("item_id", item.ID).
		Str("kind", string(item.Kind)).
		Str("target_id", item.TargetID).
		Logger()

	err := e.localStore.ClaimInFlight(ctx, item.ID)
	if errors.Is(err, store.ErrAlreadyInFlight) {
		return false
	}
	if err != nil {
		log.Err(err).Msg("failed to claim queue item")
		return false
	}

	switch item.Kind {
	case models.KindUploadPhoto:
		err = e.processUpload(ctx, item)
	case models.KindExportBatch:
		err = e.processExport(ctx, item)
	case models.KindAttachToCrm:
		err = e.processAttach(ctx, item)
	default:
		err = fmt.Errorf("%w: unknown queue item kind %q", adapter.ErrRejected, item.Kind)
	}

	if err != nil {
		e.failItem(ctx, item, err)
		return true
	}

	log.Debug().Msg("queue item settled")
	return true
}

// processUpload sends one photo blob to remote storage. A photo deleted while
// its item sat in the queue, or deleted while the upload was in flight, is
// discarded without error; the remote side may keep an orphan object, the
// local state stays consistent.
func (e *syncEngine) processUpload(ctx context.Context, item models.QueueItem) error {
	photo, err := e.localStore.GetPhoto(ctx, item.TargetID)
	if errors.Is(err, store.ErrPhotoNotFound) {
		return e.localStore.FinishCancelled(ctx, item.ID)
	}
	if err != nil {
		return err
	}

	if _, err = e.localStore.UpdatePhotoSyncStatus(ctx, photo.ID, models.PhotoSyncUploading, ""); err != nil {
		return err
	}

	blob, err := e.blobs.Open(ctx, photo.URI)
	if err != nil {
		// the bytes are gone; retrying cannot bring them back
		return fmt.Errorf("%w: open photo blob: %w", adapter.ErrRejected, err)
	}
	defer blob.Close()

	overlay := ""
	if len(photo.Annotations) > 0 {
		payload, marshalErr := json.Marshal(photo.Annotations)
		if marshalErr != nil {
			return fmt.Errorf("%w: encode annotations: %w", adapter.ErrRejected, marshalErr)
		}
		overlay = string(payload)
	}

	result, uploadErr := e.storage.Upload(ctx, adapter.UploadRequest{
		Body:           blob,
		ContentHash:    photo.ContentHash,
		ExternalRef:    uploadExternalRef(photo),
		IdempotencyKey: item.IdempotencyKey,
		Annotations:    overlay,
	})

	// settle writes survive a cancelled job context; an outcome that is not
	// recorded leaves the item stranded in_flight until the next restart
	settleCtx := context.WithoutCancel(ctx)

	// the photo may have been deleted while the request was on the wire;
	// its result must not resurrect local state
	current, err := e.localStore.GetQueueItem(settleCtx, item.ID)
	if err == nil && current.CancelRequested {
		return e.localStore.FinishCancelled(settleCtx, item.ID)
	}

	if uploadErr != nil {
		return uploadErr
	}

	return e.localStore.CompleteUploadPhoto(settleCtx, item.ID, photo.ID, result.RecordID)
}

// processExport uploads the batch artifact: a JSON manifest of the batch and
// its synced photos. An export that comes due before every photo is synced is
// rescheduled rather than exported incomplete.
func (e *syncEngine) processExport(ctx context.Context, item models.QueueItem) error {
	batchID, err := parseBatchTarget(item.TargetID)
	if err != nil {
		return err
	}

	details, err := e.localStore.GetBatchDetails(ctx, batchID)
	if err != nil {
		return err
	}

	manifest, err := buildExportManifest(details)
	if err != nil {
		return err
	}

	result, err := e.storage.Upload(ctx, adapter.UploadRequest{
		Body:           bytes.NewReader(manifest),
		Size:           int64(len(manifest)),
		ContentHash:    utils.HashString(string(manifest)),
		ExternalRef:    details.Batch.ReferenceID,
		IdempotencyKey: item.IdempotencyKey,
	})
	if err != nil {
		return err
	}

	attachKey := attachIdempotencyKey(item.TargetID, result.RecordID)
	return e.localStore.CompleteExportBatch(context.WithoutCancel(ctx), item.ID, batchID, result.RecordID, attachKey)
}

// processAttach links a previously exported artifact to the external business
// record in the CRM. PayloadRef carries the storage record id written by
// processExport.
func (e *syncEngine) processAttach(ctx context.Context, item models.QueueItem) error {
	batchID, err := parseBatchTarget(item.TargetID)
	if err != nil {
		return err
	}

	batch, err := e.localStore.GetBatchDetails(ctx, batchID)
	if err != nil {
		return err
	}

	_, err = e.crm.Attach(ctx, adapter.AttachRequest{
		RecordID:       item.PayloadRef,
		ExternalRef:    batch.Batch.ReferenceID,
		IdempotencyKey: item.IdempotencyKey,
	})
	if err != nil {
		return err
	}

	return e.localStore.CompleteAttachToCrm(context.WithoutCancel(ctx), item.ID, batchID)
}

// failItem records a failed attempt. Retryable failures are rescheduled on
// the backoff curve; terminal ones are parked until the user retries.
func (e *syncEngine) failItem(ctx context.Context, item models.QueueItem, cause error) {
	retryable := adapter.IsRetryable(cause)
	attemptsMade := item.AttemptCount + 1
	nextAttemptAt := e.now().Add(e.backoff.delay(attemptsMade))

	e.logger.Warn().
		Str("func", "syncEngine.failItem").
		Int64("item_id", item.ID).
		Str("kind", string(item.Kind)).
		Str("target_id", item.TargetID).
		Int("attempt", attemptsMade).
		Bool("retryable", retryable).
		Time("next_attempt_at", nextAttemptAt).
		Err(cause).
		Msg("queue item attempt failed")

	// the failure record must land even when the cause is the job context
	// being cancelled; otherwise the item stays claimed until restart
	if err := e.localStore.FailQueueItem(context.WithoutCancel(ctx), item, nextAttemptAt, cause.Error(), retryable); err != nil {
		e.logger.Err(err).
			Str("func", "syncEngine.failItem").
			Int64("item_id", item.ID).
			Msg("failed to record queue item failure")
	}
}

// exportManifest is the batch artifact uploaded to remote storage.
type exportManifest struct {
	ReferenceID string          `json:"reference_id"`
	OwnerUserID string          `json:"owner_user_id"`
	ExportedAt  time.Time       `json:"exported_at"`
	Photos      []manifestPhoto `json:"photos"`
}

type manifestPhoto struct {
	ID             string              `json:"id"`
	FileName       string              `json:"file_name,omitempty"`
	CapturedAt     time.Time           `json:"captured_at"`
	ContentHash    string              `json:"content_hash"`
	RemoteRecordID string              `json:"remote_record_id"`
	Annotations    []models.Annotation `json:"annotations,omitempty"`
}

func buildExportManifest(details models.BatchDetails) ([]byte, error) {
	photos := make([]manifestPhoto, 0, len(details.Photos))
	for _, p := range details.Photos {
		if p.SyncStatus != models.PhotoSyncSynced {
			return nil, errPhotosNotSynced
		}
		photos = append(photos, manifestPhoto{
			ID:             p.ID,
			FileName:       p.FileName,
			CapturedAt:     p.CapturedAt,
			ContentHash:    p.ContentHash,
			RemoteRecordID: p.RemoteRecordID,
			Annotations:    p.Annotations,
		})
	}

	manifest, err := json.Marshal(exportManifest{
		ReferenceID: details.Batch.ReferenceID,
		OwnerUserID: details.Batch.OwnerUserID,
		ExportedAt:  time.Now().UTC(),
		Photos:      photos,
	})
	if err != nil {
		return nil, fmt.Errorf("encode export manifest: %w", err)
	}

	return manifest, nil
}

func uploadExternalRef(photo models.Photo) string {
	name := photo.FileName
	if name == "" {
		name = photo.ID
	}
	return store.BatchTargetID(photo.BatchID) + "/" + name
}

func parseBatchTarget(targetID string) (int64, error) {
	batchID, err := strconv.ParseInt(targetID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed batch target %q: %w", adapter.ErrRejected, targetID, err)
	}
	return batchID, nil
}
