package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkostin/fieldsync/internal/config"
	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/pkostin/fieldsync/internal/utils"
)

// photoBlobStorage keeps photo bytes on the local filesystem, addressed by
// their SHA-256 content hash. Content addressing makes repeated captures of
// identical bytes share one file and gives the upload path a stable hash for
// idempotency keys.
type photoBlobStorage struct {
	dir    string
	logger *logger.Logger
}

func NewPhotoBlobStorage(cfg config.Files, log *logger.Logger) (BlobStore, error) {
	if cfg.BlobDir == "" {
		return nil, fmt.Errorf("%w: empty blob dir", ErrValidation)
	}
	if err := os.MkdirAll(cfg.BlobDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob dir: %w", err)
	}

	return &photoBlobStorage{dir: cfg.BlobDir, logger: log}, nil
}

// Save implements [BlobStore]. The blob is written to a temp file first and
// renamed into place, so a crash mid-write never leaves a half-written blob
// under its final name.
func (p *photoBlobStorage) Save(ctx context.Context, r io.Reader) (string, string, int64, error) {
	tmp, err := os.CreateTemp(p.dir, "incoming-*")
	if err != nil {
		return "", "", 0, fmt.Errorf("failed to create temp blob file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	hash, size, err := utils.HashReader(io.TeeReader(r, tmp))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", "", 0, fmt.Errorf("failed to write blob: %w", err)
	}

	final := filepath.Join(p.dir, hash)
	if err = os.Rename(tmpName, final); err != nil {
		return "", "", 0, fmt.Errorf("failed to finalize blob: %w", err)
	}

	return final, hash, size, nil
}

// Open implements [BlobStore].
func (p *photoBlobStorage) Open(ctx context.Context, uri string) (io.ReadSeekCloser, error) {
	f, err := os.Open(uri)
	if err != nil {
		return nil, fmt.Errorf("failed to open blob %s: %w", uri, err)
	}
	return f, nil
}

// Remove implements [BlobStore]. A missing blob is treated as already
// removed.
func (p *photoBlobStorage) Remove(ctx context.Context, uri string) error {
	err := os.Remove(uri)
	if err != nil && !os.IsNotExist(err) {
		p.logger.Err(err).Str("uri", uri).Msg("failed to remove blob")
		return fmt.Errorf("failed to remove blob %s: %w", uri, err)
	}
	return nil
}
