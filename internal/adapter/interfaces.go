// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the boundary between the sync engine and the
// remote systems it reconciles with: the object storage that receives photo
// and artifact blobs, and the CRM/ERP that business records are attached to.
//
// The engine never sees transport details. Implementations are responsible
// for serialisation, auth header management, idempotency-key propagation, and
// mapping transport errors onto the sentinel values in errors.go so callers
// can classify failures with [errors.Is] and [IsRetryable].
package adapter

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// UploadRequest carries one blob to object storage.
type UploadRequest struct {
	// Body is the blob content. Implementations consume it exactly once.
	Body io.Reader

	// Size is the blob length in bytes.
	Size int64

	// ContentHash is the hex SHA-256 of the body.
	ContentHash string

	// ExternalRef is the externally meaningful reference the blob belongs to
	// (the batch reference id).
	ExternalRef string

	// IdempotencyKey is the stable per-queue-item token. The same key is
	// sent on every attempt so retries cannot create duplicate remote
	// records; deduplication against (key, content hash) is the remote
	// side's responsibility.
	IdempotencyKey string

	// Annotations is the photo's annotation overlay as compact JSON, empty
	// for blobs that carry no overlay.
	Annotations string
}

// UploadResult identifies the remote record created (or found, on a
// deduplicated retry) by an upload.
type UploadResult struct {
	RecordID string
}

// AttachRequest attaches a previously uploaded artifact to a CRM business
// record.
type AttachRequest struct {
	// RecordID is the storage record id returned by a prior Upload.
	RecordID string

	// ExternalRef locates the CRM business record (order number or
	// inventory id).
	ExternalRef string

	// IdempotencyKey is the stable per-queue-item token, as for uploads.
	IdempotencyKey string
}

// AttachResult identifies the CRM attachment.
type AttachResult struct {
	AttachmentID string
}

// StorageAdapter uploads blobs to the remote object storage. Implementations
// must honour ctx cancellation and deadlines; a deadline hit is reported as a
// retryable error.
type StorageAdapter interface {
	// Upload sends one blob and returns the remote record id. Identical
	// retries (same idempotency key and content) must resolve to the same
	// record.
	Upload(ctx context.Context, req UploadRequest) (UploadResult, error)
}

// CRMAdapter attaches exported artifacts to business records in the external
// CRM/ERP system.
type CRMAdapter interface {
	// Attach links the storage record to the business record identified by
	// req.ExternalRef and returns the attachment id. Idempotent with respect
	// to the request's idempotency key.
	Attach(ctx context.Context, req AttachRequest) (AttachResult, error)
}
