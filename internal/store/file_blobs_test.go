package store

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkostin/fieldsync/internal/config"
	"github.com/pkostin/fieldsync/internal/logger"
)

func newTestBlobStorage(t *testing.T) BlobStore {
	t.Helper()

	s, err := NewPhotoBlobStorage(config.Files{BlobDir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)
	return s
}

func TestNewPhotoBlobStorage_EmptyDir(t *testing.T) {
	_, err := NewPhotoBlobStorage(config.Files{}, logger.Nop())

	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewPhotoBlobStorage_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "blobs")

	_, err := NewPhotoBlobStorage(config.Files{BlobDir: dir}, logger.Nop())

	require.NoError(t, err)
	assert.DirExists(t, dir)
}

func TestSave_ContentAddressed(t *testing.T) {
	s := newTestBlobStorage(t)
	ctx := context.Background()
	content := []byte("jpeg bytes")

	uri, hash, size, err := s.Save(ctx, bytes.NewReader(content))

	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)

	sum := sha256.Sum256(content)
	assert.Equal(t, hex.EncodeToString(sum[:]), hash)
	assert.Equal(t, hash, filepath.Base(uri))

	stored, err := os.ReadFile(uri)
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

// TestSave_IdenticalContentSharesFile verifies content addressing: saving the
// same bytes twice resolves to the same URI.
func TestSave_IdenticalContentSharesFile(t *testing.T) {
	s := newTestBlobStorage(t)
	ctx := context.Background()

	uri1, hash1, _, err := s.Save(ctx, bytes.NewReader([]byte("same bytes")))
	require.NoError(t, err)
	uri2, hash2, _, err := s.Save(ctx, bytes.NewReader([]byte("same bytes")))
	require.NoError(t, err)

	assert.Equal(t, uri1, uri2)
	assert.Equal(t, hash1, hash2)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewPhotoBlobStorage(config.Files{BlobDir: dir}, logger.Nop())
	require.NoError(t, err)

	_, _, _, err = s.Save(context.Background(), bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "incoming-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestOpen_RoundTrip(t *testing.T) {
	s := newTestBlobStorage(t)
	ctx := context.Background()
	content := []byte("jpeg bytes")

	uri, _, _, err := s.Save(ctx, bytes.NewReader(content))
	require.NoError(t, err)

	blob, err := s.Open(ctx, uri)
	require.NoError(t, err)
	defer blob.Close()

	got, err := io.ReadAll(blob)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestOpen_Missing(t *testing.T) {
	s := newTestBlobStorage(t)

	_, err := s.Open(context.Background(), filepath.Join(t.TempDir(), "nope"))

	assert.Error(t, err)
}

func TestRemove(t *testing.T) {
	s := newTestBlobStorage(t)
	ctx := context.Background()

	uri, _, _, err := s.Save(ctx, bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, uri))
	assert.NoFileExists(t, uri)

	// removing an already-removed blob is not an error
	require.NoError(t, s.Remove(ctx, uri))
}
