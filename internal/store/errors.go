package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrValidation is returned when a caller-supplied value fails a basic
	// invariant (for example, an empty batch reference id). Never retried.
	ErrValidation = errors.New("validation failed")

	// ErrBatchNotFound is returned when an operation targets a batch id that
	// does not exist locally.
	ErrBatchNotFound = errors.New("batch not found")

	// ErrPhotoNotFound is returned when an operation targets a photo id that
	// does not exist locally.
	ErrPhotoNotFound = errors.New("photo not found")

	// ErrQueueItemNotFound is returned when a queue operation targets an item
	// id that does not exist.
	ErrQueueItemNotFound = errors.New("queue item not found")

	// ErrAlreadyInFlight is returned when an in-flight claim loses the race:
	// either the item is no longer claimable or another item for the same
	// target is already in flight. The caller skips the item.
	ErrAlreadyInFlight = errors.New("target already has an in-flight item")

	// ErrIllegalBatchTransition is returned when a batch status write is not
	// a valid successor of the current status.
	ErrIllegalBatchTransition = errors.New("illegal batch status transition")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back at this
	// point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
