package models

import "time"

// QueueItemKind identifies the remote operation a queue item stands for.
type QueueItemKind string

const (
	// KindUploadPhoto uploads a photo blob to object storage.
	KindUploadPhoto QueueItemKind = "upload_photo"

	// KindExportBatch uploads the batch's derived artifact to object storage.
	// Artifact generation itself is outside the core; the queue handles the
	// handoff and the result.
	KindExportBatch QueueItemKind = "export_batch"

	// KindAttachToCrm attaches a previously exported artifact to the external
	// business record identified by the batch reference.
	KindAttachToCrm QueueItemKind = "attach_to_crm"
)

// QueueItemState is the lifecycle state of one unit of outbound work.
type QueueItemState string

const (
	QueuePending  QueueItemState = "pending"
	QueueInFlight QueueItemState = "in_flight"
	QueueDone     QueueItemState = "done"
	QueueFailed   QueueItemState = "failed"
)

// QueueItem is a durable record of one pending outbound operation.
//
// TargetID is a Photo.ID or the decimal form of a Batch.ID depending on Kind.
// At most one item per TargetID may be InFlight at any instant: the
// single-flight invariant that prevents duplicate remote uploads.
// IdempotencyKey is sent on every attempt so identical retries cannot create
// a second remote record. When newer content coalesces into a live item the
// key is replaced together with the payload; a key describes content, not the
// queue row.
type QueueItem struct {
	ID              int64          `json:"id"`
	Kind            QueueItemKind  `json:"kind"`
	TargetID        string         `json:"target_id"`
	PayloadRef      string         `json:"payload_ref"`
	IdempotencyKey  string         `json:"idempotency_key"`
	State           QueueItemState `json:"state"`
	AttemptCount    int            `json:"attempt_count"`
	NextAttemptAt   time.Time      `json:"next_attempt_at"`
	LastError       string         `json:"last_error,omitempty"`
	AutoRetry       bool           `json:"auto_retry"`
	CancelRequested bool           `json:"cancel_requested"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
