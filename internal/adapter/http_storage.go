package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkostin/fieldsync/internal/config"
	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/pkostin/fieldsync/internal/utils"
)

type httpStorageAdapter struct {
	client *utils.HTTPClient
	token  string
	logger *logger.Logger
}

// NewHTTPStorageAdapter constructs an HTTP implementation of
// [StorageAdapter]. It normalises and validates the base URL from
// cfg.StorageAddress and configures the underlying client with the resolved
// base URL and per-request timeout.
//
// Returns an error if cfg.StorageAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPStorageAdapter(cfg config.Adapter, log *logger.Logger) (StorageAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.StorageAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid storage adapter address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpStorageAdapter{client: client, token: cfg.APIToken, logger: log}, nil
}

type uploadResponse struct {
	RecordID string `json:"record_id"`
}

// Upload implements [StorageAdapter]. It streams the blob to
// POST /api/objects with the idempotency key, content hash and external
// reference carried in headers, and decodes the remote record id from the
// response.
func (h *httpStorageAdapter) Upload(ctx context.Context, req UploadRequest) (UploadResult, error) {
	var result uploadResponse

	r := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader("Authorization", "Bearer "+h.token).
		SetHeader("X-Idempotency-Key", req.IdempotencyKey).
		SetHeader("X-Content-SHA256", req.ContentHash).
		SetHeader("X-External-Ref", req.ExternalRef)
	if req.Annotations != "" {
		r.SetHeader("X-Annotations", req.Annotations)
	}

	resp, err := r.
		SetContentLength(true).
		SetBody(req.Body).
		SetResult(&result).
		Post("/api/objects")
	if err != nil {
		return UploadResult{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return UploadResult{}, err
	}

	if result.RecordID == "" {
		return UploadResult{}, fmt.Errorf("%w: upload response missing record id", ErrRejected)
	}

	return UploadResult{RecordID: result.RecordID}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
