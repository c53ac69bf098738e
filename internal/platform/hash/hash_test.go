package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	encoded, err := Hash("correct horse battery staple")
	require.NoError(t, err, "failed to hash password")

	assert.True(t, strings.HasPrefix(encoded, "pbkdf2:sha256:"), "unexpected encoding prefix: %s", encoded)
	assert.True(t, Verify("correct horse battery staple", encoded), "password should verify against its own hash")
	assert.False(t, Verify("wrong password", encoded), "different password must not verify")
}

func TestHash_DistinctSalts(t *testing.T) {
	t.Parallel()

	first, err := Hash("same input")
	require.NoError(t, err)
	second, err := Hash("same input")
	require.NoError(t, err)

	// Fresh salt per call: different encodings, both valid.
	assert.NotEqual(t, first, second, "two hashes of the same password should differ")
	assert.True(t, Verify("same input", first))
	assert.True(t, Verify("same input", second))
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		encoded string
	}{
		{"empty string", ""},
		{"no separators", "not-a-hash"},
		{"wrong part count", "pbkdf2:sha256:600000$saltonly"},
		{"unknown method", "scrypt:sha256:600000$salt$deadbeef"},
		{"wrong digest", "pbkdf2:sha1:600000$salt$deadbeef"},
		{"non-numeric iterations", "pbkdf2:sha256:abc$salt$deadbeef"},
		{"zero iterations", "pbkdf2:sha256:0$salt$deadbeef"},
		{"non-hex digest", "pbkdf2:sha256:600000$salt$zzzz"},
		{"empty digest", "pbkdf2:sha256:600000$salt$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.False(t, Verify("anything", tt.encoded), "malformed hash must verify false, not panic")
		})
	}
}

func TestVerify_EmbeddedIterationCount(t *testing.T) {
	t.Parallel()

	// Hashes imported from the previous deployment carry a lower
	// iteration count; the count embedded in the encoding must win over
	// the current policy.
	salt := "HlQoqL"
	key := pbkdf2.Key([]byte("secret123"), []byte(salt), 260000, 32, sha256.New)
	legacy := fmt.Sprintf("pbkdf2:sha256:260000$%s$%s", salt, hex.EncodeToString(key))

	assert.True(t, Verify("secret123", legacy))
	assert.False(t, Verify("secret124", legacy))
}
