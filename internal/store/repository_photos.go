package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/pkostin/fieldsync/models"
)

type photoRepository struct {
	db     *DB
	q      dbtx
	logger *logger.Logger
}

func NewPhotoRepository(db *DB, logger *logger.Logger) PhotoRepository {
	return &photoRepository{
		db:     db,
		q:      db.DB,
		logger: logger,
	}
}

func (r *photoRepository) inTx(tx *sql.Tx) *photoRepository {
	cp := *r
	cp.q = tx
	return &cp
}

func (r *photoRepository) InsertPhoto(ctx context.Context, photo models.Photo) error {
	log := logger.FromContext(ctx)

	annotations, err := marshalAnnotations(photo.Annotations)
	if err != nil {
		return err
	}

	_, err = r.q.ExecContext(ctx, insertPhoto,
		photo.ID,
		photo.BatchID,
		photo.URI,
		photo.ContentHash,
		photo.FileName,
		photo.CapturedAt,
		annotations,
		photo.SyncStatus,
		photo.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "photoRepository.InsertPhoto").
			Str("photo_id", photo.ID).
			Int64("batch_id", photo.BatchID).
			Msg("failed to insert photo")
		return fmt.Errorf("failed to insert photo (id=%s): %w", photo.ID, err)
	}

	return nil
}

func (r *photoRepository) GetPhoto(ctx context.Context, photoID string) (models.Photo, error) {
	log := logger.FromContext(ctx)

	row := r.q.QueryRowContext(ctx, getPhoto, photoID)
	p, err := scanPhoto(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Photo{}, fmt.Errorf("%w: id=%s", ErrPhotoNotFound, photoID)
	}
	if err != nil {
		log.Err(err).
			Str("func", "photoRepository.GetPhoto").
			Str("photo_id", photoID).
			Msg("failed to scan photo row")
		return models.Photo{}, err
	}

	return p, nil
}

func (r *photoRepository) GetPhotosByBatch(ctx context.Context, batchID int64) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	rows, err := r.q.QueryContext(ctx, getPhotosByBatch, batchID)
	if err != nil {
		log.Err(err).
			Str("func", "photoRepository.GetPhotosByBatch").
			Int64("batch_id", batchID).
			Msg("failed to query photos")
		return nil, fmt.Errorf("failed to query photos (batch_id=%d): %w", batchID, err)
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		p, scanErr := scanPhoto(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "photoRepository.GetPhotosByBatch").
				Int64("batch_id", batchID).
				Msg("failed to scan photo row")
			return nil, scanErr
		}
		photos = append(photos, p)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating photo rows: %w", rowsErr)
	}

	return photos, nil
}

// UpdateSyncStatus writes the requested status only when it is a valid
// successor of the photo's current status. The write is conditional on the
// expected current status, so a stale writer becomes a no-op instead of
// regressing the state machine. The updated (or unchanged) record is returned.
func (r *photoRepository) UpdateSyncStatus(ctx context.Context, photoID string, status models.PhotoSyncStatus, detail string, now time.Time) (models.Photo, error) {
	log := logger.FromContext(ctx)

	current, err := r.GetPhoto(ctx, photoID)
	if err != nil {
		return models.Photo{}, err
	}

	if current.SyncStatus == status || !current.SyncStatus.CanAdvanceTo(status) {
		// idempotent no-op: the requested status is not a valid successor
		return current, nil
	}

	res, err := r.q.ExecContext(ctx, updatePhotoSyncStatus, status, detail, now, photoID, current.SyncStatus)
	if err != nil {
		log.Err(err).
			Str("func", "photoRepository.UpdateSyncStatus").
			Str("photo_id", photoID).
			Str("status", string(status)).
			Msg("failed to update photo sync status")
		return models.Photo{}, fmt.Errorf("failed to update photo sync status (id=%s): %w", photoID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Photo{}, fmt.Errorf("failed to get rows affected (id=%s): %w", photoID, err)
	}
	if affected == 0 {
		// lost a race with another writer; the fresh row wins
		return r.GetPhoto(ctx, photoID)
	}

	current.SyncStatus = status
	current.SyncDetail = detail
	current.UpdatedAt = now
	return current, nil
}

func (r *photoRepository) SetRemoteRecordID(ctx context.Context, photoID, recordID string, now time.Time) error {
	log := logger.FromContext(ctx)

	res, err := r.q.ExecContext(ctx, setPhotoRemoteRecordID, recordID, now, photoID)
	if err != nil {
		log.Err(err).
			Str("func", "photoRepository.SetRemoteRecordID").
			Str("photo_id", photoID).
			Msg("failed to set remote record id")
		return fmt.Errorf("failed to set remote record id (id=%s): %w", photoID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (id=%s): %w", photoID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%s", ErrPhotoNotFound, photoID)
	}

	return nil
}

func (r *photoRepository) UpdateAnnotations(ctx context.Context, photoID string, annotations []models.Annotation, now time.Time) error {
	log := logger.FromContext(ctx)

	payload, err := marshalAnnotations(annotations)
	if err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx, updatePhotoAnnotations, payload, now, photoID)
	if err != nil {
		log.Err(err).
			Str("func", "photoRepository.UpdateAnnotations").
			Str("photo_id", photoID).
			Msg("failed to update annotations")
		return fmt.Errorf("failed to update annotations (id=%s): %w", photoID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (id=%s): %w", photoID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%s", ErrPhotoNotFound, photoID)
	}

	return nil
}

// ResetAfterError is the explicit-retry edge of the status machine: it moves
// a photo from error back to pending. Any other current status is untouched.
func (r *photoRepository) ResetAfterError(ctx context.Context, photoID string, now time.Time) error {
	log := logger.FromContext(ctx)

	_, err := r.q.ExecContext(ctx, resetPhotoAfterError, now, photoID)
	if err != nil {
		log.Err(err).
			Str("func", "photoRepository.ResetAfterError").
			Str("photo_id", photoID).
			Msg("failed to reset photo after error")
		return fmt.Errorf("failed to reset photo after error (id=%s): %w", photoID, err)
	}

	return nil
}

func (r *photoRepository) DeletePhoto(ctx context.Context, photoID string) error {
	log := logger.FromContext(ctx)

	_, err := r.q.ExecContext(ctx, deletePhoto, photoID)
	if err != nil {
		log.Err(err).
			Str("func", "photoRepository.DeletePhoto").
			Str("photo_id", photoID).
			Msg("failed to delete photo")
		return fmt.Errorf("failed to delete photo (id=%s): %w", photoID, err)
	}

	return nil
}

func marshalAnnotations(annotations []models.Annotation) (string, error) {
	if annotations == nil {
		return "[]", nil
	}
	payload, err := json.Marshal(annotations)
	if err != nil {
		return "", fmt.Errorf("failed to encode annotations: %w", err)
	}
	return string(payload), nil
}

// scanPhoto maps one photos row via the provided scan func, shared between
// single-row and multi-row reads.
func scanPhoto(scan func(dest ...any) error) (models.Photo, error) {
	var (
		p           models.Photo
		annotations string
	)

	err := scan(
		&p.ID,
		&p.BatchID,
		&p.URI,
		&p.ContentHash,
		&p.FileName,
		&p.CapturedAt,
		&annotations,
		&p.SyncStatus,
		&p.SyncDetail,
		&p.RemoteRecordID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Photo{}, err
	}
	if err != nil {
		return models.Photo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if annotations != "" && annotations != "[]" {
		if err = json.Unmarshal([]byte(annotations), &p.Annotations); err != nil {
			return models.Photo{}, fmt.Errorf("failed to decode annotations: %w", err)
		}
	}

	return p, nil
}
