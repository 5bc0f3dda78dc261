package models

import "time"

// BatchStatus describes where a batch is in its export lifecycle.
// The status only ever advances: InProgress -> Completed -> Exported.
// BatchError is a terminal failure state reachable from any non-terminal
// status; Exported is terminal as well.
type BatchStatus string

const (
	// BatchInProgress is the initial status of a freshly created batch while
	// the user is still capturing photos for it.
	BatchInProgress BatchStatus = "in_progress"

	// BatchCompleted means the user finished the capture session and the
	// batch is waiting to be exported.
	BatchCompleted BatchStatus = "completed"

	// BatchExported means the batch artifact was uploaded and attached to the
	// external business record. Terminal.
	BatchExported BatchStatus = "exported"

	// BatchError means export or attachment failed with a non-retryable
	// error. Terminal until the user intervenes.
	BatchError BatchStatus = "error"
)

// CanAdvanceTo reports whether next is a valid successor of s.
// The same status is never a valid successor; idempotent writes are handled
// one level up by the store.
func (s BatchStatus) CanAdvanceTo(next BatchStatus) bool {
	switch s {
	case BatchInProgress:
		return next == BatchCompleted || next == BatchError
	case BatchCompleted:
		return next == BatchExported || next == BatchError
	default:
		// exported and error are terminal
		return false
	}
}

// Batch groups the photos captured during one inspection session.
//
// ID is the local autoincrement key and is meaningful only on this device.
// ReferenceID is the externally meaningful reference (order number or
// inventory id) and is NOT guaranteed unique across devices; the two must
// never be conflated.
type Batch struct {
	ID               int64       `json:"id"`
	ReferenceID      string      `json:"reference_id"`
	OwnerUserID      string      `json:"owner_user_id"`
	Status           BatchStatus `json:"status"`
	ExportedRecordID string      `json:"exported_record_id,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// BatchDetails bundles a batch with its photos for the UI layer.
type BatchDetails struct {
	Batch  Batch   `json:"batch"`
	Photos []Photo `json:"photos"`
}
