package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/pkostin/fieldsync/models"
)

var queueColumns = []string{
	"id", "kind", "target_id", "payload_ref", "idempotency_key",
	"state", "attempt_count", "next_attempt_at", "last_error",
	"auto_retry", "cancel_requested", "created_at", "updated_at",
}

type queueRepository struct {
	db     *DB
	q      dbtx
	logger *logger.Logger
}

func NewQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	return &queueRepository{
		db:     db,
		q:      db.DB,
		logger: logger,
	}
}

func (r *queueRepository) inTx(tx *sql.Tx) *queueRepository {
	cp := *r
	cp.q = tx
	return &cp
}

// Enqueue creates a pending item, or coalesces into a still-live item for the
// same (kind, target): the newer payload ref and idempotency key replace the
// old ones so repeated edits before upload do not grow the queue, and the new
// content is not deduped against the superseded attempt. Attempt count and
// schedule of a coalesced item are preserved.
func (r *queueRepository) Enqueue(ctx context.Context, kind models.QueueItemKind, targetID, payloadRef, idempotencyKey string, now time.Time) error {
	log := logger.FromContext(ctx)

	res, err := r.q.ExecContext(ctx, coalesceQueueItem, payloadRef, idempotencyKey, now, kind, targetID)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Enqueue").
			Str("kind", string(kind)).
			Str("target_id", targetID).
			Msg("failed to coalesce queue item")
		return fmt.Errorf("failed to coalesce queue item (target_id=%s): %w", targetID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (target_id=%s): %w", targetID, err)
	}
	if affected > 0 {
		return nil
	}

	_, err = r.q.ExecContext(ctx, insertQueueItem, kind, targetID, payloadRef, idempotencyKey, now)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Enqueue").
			Str("kind", string(kind)).
			Str("target_id", targetID).
			Msg("failed to insert queue item")
		return fmt.Errorf("failed to insert queue item (target_id=%s): %w", targetID, err)
	}

	return nil
}

func (r *queueRepository) GetItem(ctx context.Context, itemID int64) (models.QueueItem, error) {
	log := logger.FromContext(ctx)

	row := r.q.QueryRowContext(ctx, getQueueItem, itemID)
	item, err := scanQueueItem(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.QueueItem{}, fmt.Errorf("%w: id=%d", ErrQueueItemNotFound, itemID)
	}
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.GetItem").
			Int64("item_id", itemID).
			Msg("failed to scan queue item row")
		return models.QueueItem{}, err
	}

	return item, nil
}

// ListDue returns the items eligible for dispatch at now: pending items, plus
// failed items whose backoff has elapsed and that are still auto-retried.
// Targets that already have an in-flight item are excluded (single-flight),
// and ordering is next_attempt_at ascending with id as the FIFO tie-break.
//
// The predicate has enough moving parts that it is built with squirrel
// instead of a fifth hand-maintained SQL constant.
func (r *queueRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]models.QueueItem, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(queueColumns...).
		From("sync_queue").
		Where(sq.Or{
			sq.Eq{"state": models.QueuePending},
			sq.And{
				sq.Eq{"state": models.QueueFailed},
				sq.Eq{"auto_retry": 1},
				sq.LtOrEq{"next_attempt_at": now},
			},
		}).
		Where(`target_id NOT IN (SELECT target_id FROM sync_queue WHERE state = 'in_flight')`).
		OrderBy("next_attempt_at ASC", "id ASC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.ListDue").
			Msg("failed to query due queue items")
		return nil, fmt.Errorf("failed to query due queue items: %w", err)
	}
	defer rows.Close()

	var items []models.QueueItem
	for rows.Next() {
		item, scanErr := scanQueueItem(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "queueRepository.ListDue").
				Msg("failed to scan queue item row")
			return nil, scanErr
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating queue item rows: %w", rowsErr)
	}

	return items, nil
}

// ClaimInFlight attempts the single-flight claim on itemID. It returns
// ErrAlreadyInFlight when the claim is lost: the item was taken by another
// worker, or another item for the same target is already in flight.
func (r *queueRepository) ClaimInFlight(ctx context.Context, itemID int64, now time.Time) error {
	log := logger.FromContext(ctx)

	res, err := r.q.ExecContext(ctx, claimQueueItem, now, itemID)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.ClaimInFlight").
			Int64("item_id", itemID).
			Msg("failed to claim queue item")
		return fmt.Errorf("failed to claim queue item (id=%d): %w", itemID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (id=%d): %w", itemID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", ErrAlreadyInFlight, itemID)
	}

	return nil
}

func (r *queueRepository) MarkDone(ctx context.Context, itemID int64, now time.Time) error {
	log := logger.FromContext(ctx)

	res, err := r.q.ExecContext(ctx, markQueueItemDone, now, itemID)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.MarkDone").
			Int64("item_id", itemID).
			Msg("failed to mark queue item done")
		return fmt.Errorf("failed to mark queue item done (id=%d): %w", itemID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (id=%d): %w", itemID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", ErrQueueItemNotFound, itemID)
	}

	return nil
}

// MarkFailed records a failed attempt: it increments the attempt count,
// stores the error text, and schedules the next attempt. autoRetry=false
// parks the item for manual retry instead of rescheduling it.
func (r *queueRepository) MarkFailed(ctx context.Context, itemID int64, nextAttemptAt time.Time, lastError string, autoRetry bool, now time.Time) error {
	log := logger.FromContext(ctx)

	res, err := r.q.ExecContext(ctx, markQueueItemFailed, nextAttemptAt, lastError, autoRetry, now, itemID)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.MarkFailed").
			Int64("item_id", itemID).
			Msg("failed to mark queue item failed")
		return fmt.Errorf("failed to mark queue item failed (id=%d): %w", itemID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (id=%d): %w", itemID, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", ErrQueueItemNotFound, itemID)
	}

	return nil
}

func (r *queueRepository) DeleteItem(ctx context.Context, itemID int64) error {
	log := logger.FromContext(ctx)

	_, err := r.q.ExecContext(ctx, deleteQueueItem, itemID)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.DeleteItem").
			Int64("item_id", itemID).
			Msg("failed to delete queue item")
		return fmt.Errorf("failed to delete queue item (id=%d): %w", itemID, err)
	}

	return nil
}

func (r *queueRepository) DeleteLiveItemsForTarget(ctx context.Context, targetID string) error {
	log := logger.FromContext(ctx)

	_, err := r.q.ExecContext(ctx, deleteQueueItemsForTarget, targetID)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.DeleteLiveItemsForTarget").
			Str("target_id", targetID).
			Msg("failed to delete queue items for target")
		return fmt.Errorf("failed to delete queue items (target_id=%s): %w", targetID, err)
	}

	return nil
}

func (r *queueRepository) RequestCancelForTarget(ctx context.Context, targetID string, now time.Time) error {
	log := logger.FromContext(ctx)

	_, err := r.q.ExecContext(ctx, requestQueueItemCancel, now, targetID)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.RequestCancelForTarget").
			Str("target_id", targetID).
			Msg("failed to request queue item cancellation")
		return fmt.Errorf("failed to request cancellation (target_id=%s): %w", targetID, err)
	}

	return nil
}

func (r *queueRepository) ResetFailed(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.q.ExecContext(ctx, resetFailedQueueItems, now)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.ResetFailed").
			Msg("failed to reset failed queue items")
		return 0, fmt.Errorf("failed to reset failed queue items: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}

// RequeueInFlight returns every in_flight item to pending, due immediately.
// Called once at startup: an item stranded in_flight by a crash would
// otherwise never be scanned again, and its target would stay blocked by the
// single-flight exclusion forever.
func (r *queueRepository) RequeueInFlight(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.q.ExecContext(ctx, requeueInFlightQueueItems, now)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.RequeueInFlight").
			Msg("failed to requeue in-flight queue items")
		return 0, fmt.Errorf("failed to requeue in-flight queue items: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}

func (r *queueRepository) ResetFailedForTarget(ctx context.Context, targetID string, now time.Time) error {
	log := logger.FromContext(ctx)

	_, err := r.q.ExecContext(ctx, resetFailedQueueItemsForTarget, now, targetID)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.ResetFailedForTarget").
			Str("target_id", targetID).
			Msg("failed to reset failed queue items for target")
		return fmt.Errorf("failed to reset failed queue items (target_id=%s): %w", targetID, err)
	}

	return nil
}

func (r *queueRepository) CountByState(ctx context.Context) (models.SyncStats, error) {
	log := logger.FromContext(ctx)

	rows, err := r.q.QueryContext(ctx, countQueueItemsByState)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.CountByState").
			Msg("failed to count queue items")
		return models.SyncStats{}, fmt.Errorf("failed to count queue items: %w", err)
	}
	defer rows.Close()

	var stats models.SyncStats
	for rows.Next() {
		var (
			state models.QueueItemState
			count int
		)
		if scanErr := rows.Scan(&state, &count); scanErr != nil {
			return models.SyncStats{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		switch state {
		case models.QueuePending:
			stats.Pending = count
		case models.QueueInFlight:
			stats.InFlight = count
		case models.QueueDone:
			stats.Done = count
		case models.QueueFailed:
			stats.Failed = count
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return models.SyncStats{}, fmt.Errorf("error iterating queue count rows: %w", rowsErr)
	}

	return stats, nil
}

// PruneDone drops settled items older than cutoff; done rows are kept around
// for stats until then.
func (r *queueRepository) PruneDone(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx, pruneDoneQueueItems, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune done queue items: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}

func scanQueueItem(scan func(dest ...any) error) (models.QueueItem, error) {
	var item models.QueueItem

	err := scan(
		&item.ID,
		&item.Kind,
		&item.TargetID,
		&item.PayloadRef,
		&item.IdempotencyKey,
		&item.State,
		&item.AttemptCount,
		&item.NextAttemptAt,
		&item.LastError,
		&item.AutoRetry,
		&item.CancelRequested,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.QueueItem{}, err
	}
	if err != nil {
		return models.QueueItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}
