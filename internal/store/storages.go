package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/pkostin/fieldsync/internal/config"
	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/pkostin/fieldsync/models"
)

// Storages is the LocalStore implementation: it owns the SQLite handle, the
// per-table repositories, and every transaction that spans more than one of
// them.
type Storages struct {
	db      *DB
	batches *batchRepository
	photos  *photoRepository
	queue   *queueRepository
	logger  *logger.Logger
}

// NewStorages opens (and if needed creates) the local SQLite database, runs
// pending schema migrations, and wires the repositories. Items stranded
// in_flight by the previous run are returned to pending here, while no worker
// holds a claim yet.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating local storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s := newStoragesWithDB(db, log)

	requeued, err := s.queue.RequeueInFlight(context.Background(), time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("in-flight recovery failed: %w", err)
	}
	if requeued > 0 {
		log.Warn().Int64("requeued", requeued).Msg("recovered in-flight queue items from previous run")
	}

	return s, nil
}

func newStoragesWithDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		db:      db,
		batches: NewBatchRepository(db, log).(*batchRepository),
		photos:  NewPhotoRepository(db, log).(*photoRepository),
		queue:   NewQueueRepository(db, log).(*queueRepository),
		logger:  log,
	}
}

// Close closes the underlying database handle.
func (s *Storages) Close() error {
	return s.db.Close()
}

// BatchTargetID renders a batch id in the target_id form used by queue items.
func BatchTargetID(batchID int64) string {
	return strconv.FormatInt(batchID, 10)
}

func (s *Storages) CreateBatch(ctx context.Context, ownerUserID, referenceID string) (models.Batch, error) {
	if referenceID == "" {
		return models.Batch{}, fmt.Errorf("%w: empty reference id", ErrValidation)
	}
	if ownerUserID == "" {
		return models.Batch{}, fmt.Errorf("%w: empty owner user id", ErrValidation)
	}

	return s.batches.CreateBatch(ctx, ownerUserID, referenceID, time.Now().UTC())
}

func (s *Storages) GetBatchDetails(ctx context.Context, batchID int64) (models.BatchDetails, error) {
	batch, err := s.batches.GetBatch(ctx, batchID)
	if err != nil {
		return models.BatchDetails{}, err
	}

	photos, err := s.photos.GetPhotosByBatch(ctx, batchID)
	if err != nil {
		return models.BatchDetails{}, err
	}

	return models.BatchDetails{Batch: batch, Photos: photos}, nil
}

func (s *Storages) AddPhoto(ctx context.Context, photo models.Photo, idempotencyKey string) (models.Photo, error) {
	now := time.Now().UTC()
	photo.SyncStatus = models.PhotoSyncPending
	photo.CreatedAt = now
	photo.UpdatedAt = now

	err := s.db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := s.batches.inTx(tx).GetBatch(ctx, photo.BatchID); err != nil {
			return err
		}
		if err := s.photos.inTx(tx).InsertPhoto(ctx, photo); err != nil {
			return err
		}
		return s.queue.inTx(tx).Enqueue(ctx, models.KindUploadPhoto, photo.ID, photo.URI, idempotencyKey, now)
	})
	if err != nil {
		return models.Photo{}, err
	}

	return photo, nil
}

func (s *Storages) GetPhoto(ctx context.Context, photoID string) (models.Photo, error) {
	return s.photos.GetPhoto(ctx, photoID)
}

func (s *Storages) UpdatePhotoSyncStatus(ctx context.Context, photoID string, status models.PhotoSyncStatus, detail string) (models.Photo, error) {
	return s.photos.UpdateSyncStatus(ctx, photoID, status, detail, time.Now().UTC())
}

func (s *Storages) SavePhotoAnnotations(ctx context.Context, photoID string, annotations []models.Annotation, idempotencyKey string) error {
	now := time.Now().UTC()

	return s.db.withTx(ctx, func(tx *sql.Tx) error {
		photo, err := s.photos.inTx(tx).GetPhoto(ctx, photoID)
		if err != nil {
			return err
		}
		if err = s.photos.inTx(tx).UpdateAnnotations(ctx, photoID, annotations, now); err != nil {
			return err
		}
		// re-upload carries the fresh overlay; repeated edits coalesce into
		// the live item instead of growing the queue
		return s.queue.inTx(tx).Enqueue(ctx, models.KindUploadPhoto, photoID, photo.URI, idempotencyKey, now)
	})
}

func (s *Storages) DeletePhoto(ctx context.Context, photoID string) (models.Photo, error) {
	now := time.Now().UTC()

	var photo models.Photo
	err := s.db.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		photo, err = s.photos.inTx(tx).GetPhoto(ctx, photoID)
		if err != nil {
			return err
		}
		if err = s.queue.inTx(tx).DeleteLiveItemsForTarget(ctx, photoID); err != nil {
			return err
		}
		// an in-flight item races with a live network call; flag it for the
		// engine instead of deleting it out from under the worker
		if err = s.queue.inTx(tx).RequestCancelForTarget(ctx, photoID, now); err != nil {
			return err
		}
		return s.photos.inTx(tx).DeletePhoto(ctx, photoID)
	})
	if err != nil {
		return models.Photo{}, err
	}

	return photo, nil
}

func (s *Storages) CompleteBatch(ctx context.Context, batchID int64, payloadRef, idempotencyKey string) (models.Batch, error) {
	now := time.Now().UTC()

	err := s.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.batches.inTx(tx).AdvanceStatus(ctx, batchID, models.BatchCompleted, now); err != nil {
			return err
		}
		return s.queue.inTx(tx).Enqueue(ctx, models.KindExportBatch, BatchTargetID(batchID), payloadRef, idempotencyKey, now)
	})
	if err != nil {
		return models.Batch{}, err
	}

	return s.batches.GetBatch(ctx, batchID)
}

func (s *Storages) ListDueQueueItems(ctx context.Context, now time.Time, limit int) ([]models.QueueItem, error) {
	return s.queue.ListDue(ctx, now, limit)
}

func (s *Storages) GetQueueItem(ctx context.Context, itemID int64) (models.QueueItem, error) {
	return s.queue.GetItem(ctx, itemID)
}

// ClaimInFlight claims the item and, for a retried upload, resets its photo
// out of error in the same transaction. Without the reset the photo's status
// machine would silently reject the attempt's uploading and synced writes.
func (s *Storages) ClaimInFlight(ctx context.Context, itemID int64) error {
	now := time.Now().UTC()

	return s.db.withTx(ctx, func(tx *sql.Tx) error {
		item, err := s.queue.inTx(tx).GetItem(ctx, itemID)
		if err != nil {
			return err
		}
		if err = s.queue.inTx(tx).ClaimInFlight(ctx, itemID, now); err != nil {
			return err
		}
		if item.Kind == models.KindUploadPhoto {
			return s.photos.inTx(tx).ResetAfterError(ctx, item.TargetID, now)
		}
		return nil
	})
}

func (s *Storages) CompleteUploadPhoto(ctx context.Context, itemID int64, photoID, recordID string) error {
	now := time.Now().UTC()

	return s.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.queue.inTx(tx).MarkDone(ctx, itemID, now); err != nil {
			return err
		}
		if err := s.photos.inTx(tx).SetRemoteRecordID(ctx, photoID, recordID, now); err != nil {
			return err
		}
		_, err := s.photos.inTx(tx).UpdateSyncStatus(ctx, photoID, models.PhotoSyncSynced, "", now)
		return err
	})
}

func (s *Storages) CompleteExportBatch(ctx context.Context, itemID, batchID int64, recordID, attachIdempotencyKey string) error {
	now := time.Now().UTC()

	return s.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.queue.inTx(tx).MarkDone(ctx, itemID, now); err != nil {
			return err
		}
		if err := s.batches.inTx(tx).SetExportedRecordID(ctx, batchID, recordID, now); err != nil {
			return err
		}
		return s.queue.inTx(tx).Enqueue(ctx, models.KindAttachToCrm, BatchTargetID(batchID), recordID, attachIdempotencyKey, now)
	})
}

func (s *Storages) CompleteAttachToCrm(ctx context.Context, itemID, batchID int64) error {
	now := time.Now().UTC()

	return s.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.queue.inTx(tx).MarkDone(ctx, itemID, now); err != nil {
			return err
		}
		return s.batches.inTx(tx).AdvanceStatus(ctx, batchID, models.BatchExported, now)
	})
}

func (s *Storages) FailQueueItem(ctx context.Context, item models.QueueItem, nextAttemptAt time.Time, lastError string, autoRetry bool) error {
	now := time.Now().UTC()

	return s.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.queue.inTx(tx).MarkFailed(ctx, item.ID, nextAttemptAt, lastError, autoRetry, now); err != nil {
			return err
		}

		switch item.Kind {
		case models.KindUploadPhoto:
			_, err := s.photos.inTx(tx).UpdateSyncStatus(ctx, item.TargetID, models.PhotoSyncError, lastError, now)
			return err
		case models.KindExportBatch, models.KindAttachToCrm:
			if autoRetry {
				return nil
			}
			batchID, err := strconv.ParseInt(item.TargetID, 10, 64)
			if err != nil {
				return fmt.Errorf("bad batch target id %q: %w", item.TargetID, err)
			}
			return s.batches.inTx(tx).AdvanceStatus(ctx, batchID, models.BatchError, now)
		default:
			return nil
		}
	})
}

func (s *Storages) FinishCancelled(ctx context.Context, itemID int64) error {
	return s.queue.DeleteItem(ctx, itemID)
}

func (s *Storages) RetryFailed(ctx context.Context) (int64, error) {
	now := time.Now().UTC()

	var reset int64
	err := s.db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, resetErrorPhotosWithFailedItems, now); err != nil {
			return fmt.Errorf("failed to reset error photos: %w", err)
		}
		if _, err := tx.ExecContext(ctx, resetErrorBatchesWithFailedItems, now); err != nil {
			return fmt.Errorf("failed to reset error batches: %w", err)
		}
		var err error
		reset, err = s.queue.inTx(tx).ResetFailed(ctx, now)
		return err
	})
	if err != nil {
		return 0, err
	}

	return reset, nil
}

func (s *Storages) RetryPhoto(ctx context.Context, photoID string) error {
	now := time.Now().UTC()

	return s.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.photos.inTx(tx).ResetAfterError(ctx, photoID, now); err != nil {
			return err
		}
		return s.queue.inTx(tx).ResetFailedForTarget(ctx, photoID, now)
	})
}

func (s *Storages) GetSyncStats(ctx context.Context) (models.SyncStats, error) {
	return s.queue.CountByState(ctx)
}

func (s *Storages) PruneDoneQueueItems(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.queue.PruneDone(ctx, cutoff)
}
