package adapter

import (
	"context"
	"fmt"

	"github.com/pkostin/fieldsync/internal/config"
	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/pkostin/fieldsync/internal/utils"
)

type httpCRMAdapter struct {
	client *utils.HTTPClient
	token  string
	logger *logger.Logger
}

// NewHTTPCRMAdapter constructs an HTTP implementation of [CRMAdapter]
// against the CRM address in cfg.
func NewHTTPCRMAdapter(cfg config.Adapter, log *logger.Logger) (CRMAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.CRMAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid crm adapter address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpCRMAdapter{client: client, token: cfg.APIToken, logger: log}, nil
}

type attachRequestBody struct {
	RecordID    string `json:"record_id"`
	ExternalRef string `json:"external_ref"`
}

type attachResponse struct {
	AttachmentID string `json:"attachment_id"`
}

// Attach implements [CRMAdapter]. It POSTs the storage record reference to
// POST /api/records/attachments with the idempotency key in a header and
// decodes the attachment id from the response.
func (h *httpCRMAdapter) Attach(ctx context.Context, req AttachRequest) (AttachResult, error) {
	var result attachResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+h.token).
		SetHeader("X-Idempotency-Key", req.IdempotencyKey).
		SetBody(attachRequestBody{RecordID: req.RecordID, ExternalRef: req.ExternalRef}).
		SetResult(&result).
		Post("/api/records/attachments")
	if err != nil {
		return AttachResult{}, fmt.Errorf("attach request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return AttachResult{}, err
	}

	if result.AttachmentID == "" {
		return AttachResult{}, fmt.Errorf("%w: attach response missing attachment id", ErrRejected)
	}

	return AttachResult{AttachmentID: result.AttachmentID}, nil
}
