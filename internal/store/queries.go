// SPDX-License-Identifier: Apache-2.0

package store

const (
	insertBatch = `
		INSERT INTO batches (
			reference_id,
			owner_user_id,
			status,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $4);`

	getBatch = `
		SELECT
			id,
			reference_id,
			owner_user_id,
			status,
			exported_record_id,
			created_at,
			updated_at
		FROM batches
		WHERE id = $1;`

	updateBatchStatus = `
		UPDATE batches SET
			status     = $1,
			updated_at = $2
		WHERE id = $3 AND status = $4;`

	setBatchExportedRecordID = `
		UPDATE batches SET
			exported_record_id = $1,
			updated_at         = $2
		WHERE id = $3;`

	insertPhoto = `
		INSERT INTO photos (
			id,
			batch_id,
			uri,
			content_hash,
			file_name,
			captured_at,
			annotations,
			sync_status,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9);`

	getPhoto = `
		SELECT
			id,
			batch_id,
			uri,
			content_hash,
			file_name,
			captured_at,
			annotations,
			sync_status,
			sync_detail,
			remote_record_id,
			created_at,
			updated_at
		FROM photos
		WHERE id = $1;`

	getPhotosByBatch = `
		SELECT
			id,
			batch_id,
			uri,
			content_hash,
			file_name,
			captured_at,
			annotations,
			sync_status,
			sync_detail,
			remote_record_id,
			created_at,
			updated_at
		FROM photos
		WHERE batch_id = $1
		ORDER BY created_at ASC, id ASC;`

	updatePhotoSyncStatus = `
		UPDATE photos SET
			sync_status = $1,
			sync_detail = $2,
			updated_at  = $3
		WHERE id = $4 AND sync_status = $5;`

	setPhotoRemoteRecordID = `
		UPDATE photos SET
			remote_record_id = $1,
			updated_at       = $2
		WHERE id = $3;`

	updatePhotoAnnotations = `
		UPDATE photos SET
			annotations = $1,
			updated_at  = $2
		WHERE id = $3;`

	resetPhotoAfterError = `
		UPDATE photos SET
			sync_status = 'pending',
			sync_detail = '',
			updated_at  = $1
		WHERE id = $2 AND sync_status = 'error';`

	deletePhoto = `
		DELETE FROM photos WHERE id = $1;`

	insertQueueItem = `
		INSERT INTO sync_queue (
			kind,
			target_id,
			payload_ref,
			idempotency_key,
			state,
			attempt_count,
			next_attempt_at,
			auto_retry,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, 'pending', 0, $5, 1, $5, $5);`

	// coalesceQueueItem replaces the payload and idempotency key of a
	// still-live item for the same (kind, target) instead of inserting a
	// duplicate. The key follows the payload: a coalesced item describes new
	// content and must not dedupe against the old attempt remotely.
	coalesceQueueItem = `
		UPDATE sync_queue SET
			payload_ref     = $1,
			idempotency_key = $2,
			updated_at      = $3
		WHERE kind = $4
		  AND target_id = $5
		  AND state IN ('pending', 'failed');`

	getQueueItem = `
		SELECT
			id,
			kind,
			target_id,
			payload_ref,
			idempotency_key,
			state,
			attempt_count,
			next_attempt_at,
			last_error,
			auto_retry,
			cancel_requested,
			created_at,
			updated_at
		FROM sync_queue
		WHERE id = $1;`

	// claimQueueItem is the single-flight claim: it only succeeds when the
	// item itself is claimable AND no other item for the same target is
	// currently in flight.
	claimQueueItem = `
		UPDATE sync_queue SET
			state      = 'in_flight',
			updated_at = $1
		WHERE id = $2
		  AND state IN ('pending', 'failed')
		  AND NOT EXISTS (
			SELECT 1 FROM sync_queue q2
			WHERE q2.target_id = sync_queue.target_id
			  AND q2.state = 'in_flight'
		  );`

	markQueueItemDone = `
		UPDATE sync_queue SET
			state      = 'done',
			last_error = '',
			updated_at = $1
		WHERE id = $2 AND state = 'in_flight';`

	markQueueItemFailed = `
		UPDATE sync_queue SET
			state           = 'failed',
			attempt_count   = attempt_count + 1,
			next_attempt_at = $1,
			last_error      = $2,
			auto_retry      = $3,
			updated_at      = $4
		WHERE id = $5 AND state = 'in_flight';`

	deleteQueueItemsForTarget = `
		DELETE FROM sync_queue
		WHERE target_id = $1 AND state IN ('pending', 'failed');`

	requestQueueItemCancel = `
		UPDATE sync_queue SET
			cancel_requested = 1,
			updated_at       = $1
		WHERE target_id = $2 AND state = 'in_flight';`

	deleteQueueItem = `
		DELETE FROM sync_queue WHERE id = $1;`

	resetFailedQueueItems = `
		UPDATE sync_queue SET
			state           = 'pending',
			next_attempt_at = $1,
			auto_retry      = 1,
			updated_at      = $1
		WHERE state = 'failed';`

	// requeueInFlightQueueItems returns items stranded in_flight by a crash
	// or hard shutdown to pending, due immediately. Only safe at startup,
	// before any worker holds a claim.
	requeueInFlightQueueItems = `
		UPDATE sync_queue SET
			state           = 'pending',
			next_attempt_at = $1,
			updated_at      = $1
		WHERE state = 'in_flight';`

	resetFailedQueueItemsForTarget = `
		UPDATE sync_queue SET
			state           = 'pending',
			next_attempt_at = $1,
			auto_retry      = 1,
			updated_at      = $1
		WHERE state = 'failed' AND target_id = $2;`

	countQueueItemsByState = `
		SELECT state, COUNT(*)
		FROM sync_queue
		GROUP BY state;`

	resetErrorPhotosWithFailedItems = `
		UPDATE photos SET
			sync_status = 'pending',
			sync_detail = '',
			updated_at  = $1
		WHERE sync_status = 'error'
		  AND id IN (
			SELECT target_id FROM sync_queue
			WHERE state = 'failed' AND kind = 'upload_photo'
		  );`

	// resetErrorBatchesWithFailedItems is the batch half of a global retry:
	// an error batch whose export or attach item is being re-armed goes back
	// to completed, so the retried item can advance it again.
	resetErrorBatchesWithFailedItems = `
		UPDATE batches SET
			status     = 'completed',
			updated_at = $1
		WHERE status = 'error'
		  AND CAST(id AS TEXT) IN (
			SELECT target_id FROM sync_queue
			WHERE state = 'failed' AND kind IN ('export_batch', 'attach_to_crm')
		  );`

	pruneDoneQueueItems = `
		DELETE FROM sync_queue
		WHERE state = 'done' AND updated_at < $1;`
)
