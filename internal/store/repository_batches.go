package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/pkostin/fieldsync/models"
)

type batchRepository struct {
	db     *DB
	q      dbtx
	logger *logger.Logger
}

func NewBatchRepository(db *DB, logger *logger.Logger) BatchRepository {
	return &batchRepository{
		db:     db,
		q:      db.DB,
		logger: logger,
	}
}

// inTx returns a copy of the repository bound to tx, so calls compose with
// other repository writes inside one transaction.
func (r *batchRepository) inTx(tx *sql.Tx) *batchRepository {
	cp := *r
	cp.q = tx
	return &cp
}

func (r *batchRepository) CreateBatch(ctx context.Context, ownerUserID, referenceID string, now time.Time) (models.Batch, error) {
	log := logger.FromContext(ctx)

	res, err := r.q.ExecContext(ctx, insertBatch, referenceID, ownerUserID, models.BatchInProgress, now)
	if err != nil {
		log.Err(err).
			Str("func", "batchRepository.CreateBatch").
			Str("reference_id", referenceID).
			Msg("failed to insert batch")
		return models.Batch{}, fmt.Errorf("failed to insert batch (reference_id=%s): %w", referenceID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Batch{}, fmt.Errorf("failed to read inserted batch id: %w", err)
	}

	return models.Batch{
		ID:          id,
		ReferenceID: referenceID,
		OwnerUserID: ownerUserID,
		Status:      models.BatchInProgress,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (r *batchRepository) GetBatch(ctx context.Context, batchID int64) (models.Batch, error) {
	log := logger.FromContext(ctx)

	var b models.Batch
	row := r.q.QueryRowContext(ctx, getBatch, batchID)
	err := row.Scan(
		&b.ID,
		&b.ReferenceID,
		&b.OwnerUserID,
		&b.Status,
		&b.ExportedRecordID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Batch{}, fmt.Errorf("%w: id=%d", ErrBatchNotFound, batchID)
	}
	if err != nil {
		log.Err(err).
			Str("func", "batchRepository.GetBatch").
			Int64("batch_id", batchID).
			Msg("failed to scan batch row")
		return models.Batch{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return b, nil
}

// AdvanceStatus moves the batch from its current status to next. The write is
// conditional on the current status so concurrent writers cannot skip a step;
// an invalid successor returns ErrIllegalBatchTransition.
func (r *batchRepository) AdvanceStatus(ctx context.Context, batchID int64, next models.BatchStatus, now time.Time) error {
	log := logger.FromContext(ctx)

	current, err := r.GetBatch(ctx, batchID)
	if err != nil {
		return err
	}

	if current.Status == next {
		// idempotent repeat of the same write
		return nil
	}
	if !current.Status.CanAdvanceTo(next) {
		return fmt.Errorf("%w: %s -> %s (batch_id=%d)", ErrIllegalBatchTransition, current.Status, next, batchID)
	}

	res, err := r.q.ExecContext(ctx, updateBatchStatus, next, now, batchID, current.Status)
	if err != nil {
		log.Err(err).
			Str("func", "batchRepository.AdvanceStatus").
			Int64("batch_id", batchID).
			Str("next", string(next)).
			Msg("failed to update batch status")
		return fmt.Errorf("failed to update batch status (batch_id=%d): %w", batchID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (batch_id=%d): %w", batchID, err)
	}
	if affected == 0 {
		// lost a race with another status writer; re-check on next call
		return fmt.Errorf("%w: concurrent update (batch_id=%d)", ErrIllegalBatchTransition, batchID)
	}

	return nil
}

func (r *batchRepository) SetExportedRecordID(ctx context.Context, batchID int64, recordID string, now time.Time) error {
	log := logger.FromContext(ctx)

	res, err := r.q.ExecContext(ctx, setBatchExportedRecordID, recordID, now, batchID)
	if err != nil {
		log.Err(err).
			Str("func", "batchRepository.SetExportedRecordID").
			Int64("batch_id", batchID).
			Msg("failed to set exported record id")
		return fmt.Errorf("failed to set exported record id (batch_id=%d): %w", batchID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (batch_id=%d): %w", batchID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", ErrBatchNotFound, batchID)
	}

	return nil
}
