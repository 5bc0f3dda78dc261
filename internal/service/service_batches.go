// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/pkostin/fieldsync/internal/store"
	"github.com/pkostin/fieldsync/internal/utils"
	"github.com/pkostin/fieldsync/models"
)

type batchService struct {
	localStore  store.LocalStore
	blobs       store.BlobStore
	uuid        *utils.UUIDGenerator
	ownerUserID string
	job         SyncJob
	logger      *logger.Logger
}

// NewBatchService builds the UI-facing batch service. job may be nil in
// tests; when present it is woken after every mutation that enqueues work so
// the upload starts without waiting for the next poll tick.
func NewBatchService(localStore store.LocalStore, blobs store.BlobStore, ownerUserID string, job SyncJob, log *logger.Logger) BatchService {
	return &batchService{
		localStore:  localStore,
		blobs:       blobs,
		uuid:        utils.NewUUIDGenerator(),
		ownerUserID: ownerUserID,
		job:         job,
		logger:      log,
	}
}

func (s *batchService) CreateBatch(ctx context.Context, referenceID string) (models.Batch, error) {
	if strings.TrimSpace(referenceID) == "" {
		return models.Batch{}, ErrEmptyReferenceID
	}

	return s.localStore.CreateBatch(ctx, s.ownerUserID, referenceID)
}

func (s *batchService) GetBatchDetails(ctx context.Context, batchID int64) (models.BatchDetails, error) {
	return s.localStore.GetBatchDetails(ctx, batchID)
}

// AddPhoto writes the blob to local storage first and only then records the
// photo; an interrupted call can leave an orphan blob but never a photo row
// without its bytes.
func (s *batchService) AddPhoto(ctx context.Context, batchID int64, blob io.Reader, meta models.PhotoMeta) (models.Photo, error) {
	if blob == nil {
		return models.Photo{}, ErrEmptyPhotoBlob
	}

	uri, contentHash, size, err := s.blobs.Save(ctx, blob)
	if err != nil {
		return models.Photo{}, fmt.Errorf("save photo blob: %w", err)
	}

	photo := models.Photo{
		ID:          s.uuid.Generate(),
		BatchID:     batchID,
		URI:         uri,
		ContentHash: contentHash,
		FileName:    meta.FileName,
		CapturedAt:  meta.CapturedAt,
		SyncStatus:  models.PhotoSyncPending,
	}

	saved, err := s.localStore.AddPhoto(ctx, photo, uploadIdempotencyKey(photo.ID, contentHash, nil))
	if err != nil {
		if removeErr := s.blobs.Remove(ctx, uri); removeErr != nil {
			s.logger.Err(removeErr).
				Str("func", "batchService.AddPhoto").
				Str("uri", uri).
				Msg("failed to remove orphan blob")
		}
		return models.Photo{}, err
	}

	s.logger.Debug().
		Str("func", "batchService.AddPhoto").
		Str("photo_id", saved.ID).
		Int64("batch_id", batchID).
		Int64("size", size).
		Msg("photo stored and upload enqueued")

	s.wake()
	return saved, nil
}

func (s *batchService) SavePhotoAnnotations(ctx context.Context, photoID string, annotations []models.Annotation) error {
	photo, err := s.localStore.GetPhoto(ctx, photoID)
	if err != nil {
		return err
	}

	key := uploadIdempotencyKey(photo.ID, photo.ContentHash, annotations)
	if err = s.localStore.SavePhotoAnnotations(ctx, photoID, annotations, key); err != nil {
		return err
	}

	s.wake()
	return nil
}

// DeletePhoto drops the blob only after the row and its queue items are gone;
// a crash in between leaves an orphan blob, never a photo without bytes.
func (s *batchService) DeletePhoto(ctx context.Context, photoID string) error {
	photo, err := s.localStore.DeletePhoto(ctx, photoID)
	if err != nil {
		return err
	}

	if err = s.blobs.Remove(ctx, photo.URI); err != nil {
		s.logger.Err(err).
			Str("func", "batchService.DeletePhoto").
			Str("photo_id", photoID).
			Str("uri", photo.URI).
			Msg("failed to remove photo blob")
	}

	return nil
}

func (s *batchService) CompleteBatch(ctx context.Context, batchID int64) (models.Batch, error) {
	targetID := store.BatchTargetID(batchID)
	key := utils.HashString(string(models.KindExportBatch) + "|" + targetID)

	batch, err := s.localStore.CompleteBatch(ctx, batchID, targetID, key)
	if err != nil {
		return models.Batch{}, err
	}

	s.wake()
	return batch, nil
}

func (s *batchService) GetSyncStats(ctx context.Context) (models.SyncStats, error) {
	return s.localStore.GetSyncStats(ctx)
}

func (s *batchService) RetryFailed(ctx context.Context) (int64, error) {
	n, err := s.localStore.RetryFailed(ctx)
	if err != nil {
		return 0, err
	}

	if n > 0 {
		s.logger.Info().
			Str("func", "batchService.RetryFailed").
			Int64("reset", n).
			Msg("failed queue items rescheduled")
		s.wake()
	}

	return n, nil
}

func (s *batchService) RetryPhoto(ctx context.Context, photoID string) error {
	if err := s.localStore.RetryPhoto(ctx, photoID); err != nil {
		return err
	}

	s.wake()
	return nil
}

func (s *batchService) wake() {
	if s.job != nil {
		s.job.Wake()
	}
}

// uploadIdempotencyKey derives the key sent with a photo upload. The key is
// bound to the photo content and its annotation overlay, so re-annotating an
// already-synced photo produces a distinct upload while plain retries of the
// same version stay deduplicated server-side.
func uploadIdempotencyKey(photoID, contentHash string, annotations []models.Annotation) string {
	overlay := ""
	if len(annotations) > 0 {
		if data, err := json.Marshal(annotations); err == nil {
			overlay = string(data)
		}
	}

	return utils.HashString(string(models.KindUploadPhoto) + "|" + photoID + "|" + contentHash + "|" + overlay)
}

// attachIdempotencyKey derives the key for the CRM attachment that follows a
// successful batch export.
func attachIdempotencyKey(targetID, recordID string) string {
	return utils.HashString(string(models.KindAttachToCrm) + "|" + targetID + "|" + recordID)
}
