package models

import "time"

// PhotoSyncStatus tracks one photo's progress through the upload pipeline.
// Transitions are monotonic per attempt: Pending -> Uploading -> Synced or
// PhotoSyncError. Error -> Pending is allowed only through an explicit
// user-triggered retry.
type PhotoSyncStatus string

const (
	PhotoSyncPending   PhotoSyncStatus = "pending"
	PhotoSyncUploading PhotoSyncStatus = "uploading"
	PhotoSyncSynced    PhotoSyncStatus = "synced"
	PhotoSyncError     PhotoSyncStatus = "error"
)

// CanAdvanceTo reports whether next is a valid successor of s within a single
// upload attempt. The explicit-retry edge (error -> pending) is intentionally
// excluded here; the store applies it only through its retry operations.
func (s PhotoSyncStatus) CanAdvanceTo(next PhotoSyncStatus) bool {
	switch s {
	case PhotoSyncPending:
		return next == PhotoSyncUploading
	case PhotoSyncUploading:
		return next == PhotoSyncSynced || next == PhotoSyncError
	default:
		return false
	}
}

// Photo is one captured image plus its metadata and optional annotation
// overlay.
//
// ID is generated client-side (UUIDv7) and globally unique, so photos created
// offline on different devices never collide. URI points at the blob in the
// local file store; ContentHash is the SHA-256 of the blob and feeds the
// idempotency key of the photo's upload queue item.
type Photo struct {
	ID             string          `json:"id"`
	BatchID        int64           `json:"batch_id"`
	URI            string          `json:"uri"`
	ContentHash    string          `json:"content_hash"`
	FileName       string          `json:"file_name,omitempty"`
	CapturedAt     time.Time       `json:"captured_at"`
	Annotations    []Annotation    `json:"annotations,omitempty"`
	SyncStatus     PhotoSyncStatus `json:"sync_status"`
	SyncDetail     string          `json:"sync_detail,omitempty"`
	RemoteRecordID string          `json:"remote_record_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// PhotoMeta carries the capture-time metadata supplied by the UI when a photo
// is added to a batch.
type PhotoMeta struct {
	FileName   string    `json:"file_name"`
	CapturedAt time.Time `json:"captured_at"`
}
