package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"sync"
)

// hasherPool is a package-level pool of reusable SHA-256 hash instances.
// Content hashing runs on every photo capture, so the instances are pooled to
// avoid per-call allocations on constrained devices.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// HashReader streams r through SHA-256 and returns the hex-encoded digest and
// the number of bytes consumed. Used to content-address photo blobs when they
// enter the local blob store.
func HashReader(r io.Reader) (string, int64, error) {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	n, err := io.Copy(h, r)
	if err != nil {
		hasherPool.Put(h)
		return "", 0, err
	}

	sum := h.Sum(nil)
	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum), n, nil
}

// HashString computes the hex-encoded SHA-256 digest of data. Used to derive
// stable idempotency keys from a queue item's identity and content hash.
func HashString(data string) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(data))
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}
