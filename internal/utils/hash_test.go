package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHashReader_MatchesDirectSum verifies that HashReader produces the same
// digest as hashing the full payload in one shot, and reports the byte count.
func TestHashReader_MatchesDirectSum(t *testing.T) {
	payload := "photo bytes of a rusty flange"

	sum := sha256.Sum256([]byte(payload))
	want := hex.EncodeToString(sum[:])

	got, n, err := HashReader(strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, int64(len(payload)), n)
}

// TestHashReader_Empty verifies that an empty reader hashes to the well-known
// SHA-256 empty digest.
func TestHashReader_Empty(t *testing.T) {
	got, n, err := HashReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", got)
	assert.Zero(t, n)
}

// TestHashString_Deterministic verifies that HashString is stable across calls
// and distinguishes different inputs.
func TestHashString_Deterministic(t *testing.T) {
	a := HashString("upload_photo|p1|abc")
	b := HashString("upload_photo|p1|abc")
	c := HashString("upload_photo|p2|abc")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
