package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_SignAndParse(t *testing.T) {
	t.Parallel()

	codec := NewCodec("test-secret", time.Hour)

	signed, err := codec.Sign("session-123")
	require.NoError(t, err, "failed to sign token")
	require.NotEmpty(t, signed)

	sid, err := codec.Parse(signed)
	require.NoError(t, err, "failed to parse token")
	assert.Equal(t, "session-123", sid)
}

func TestCodec_Parse_WrongSecret(t *testing.T) {
	t.Parallel()

	signed, err := NewCodec("secret-a", time.Hour).Sign("session-123")
	require.NoError(t, err)

	_, err = NewCodec("secret-b", time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken, "token signed with a different secret must not parse")
}

func TestCodec_Parse_Garbage(t *testing.T) {
	t.Parallel()

	codec := NewCodec("test-secret", time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "definitely-not-a-jwt"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := codec.Parse(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestCodec_Parse_Expired(t *testing.T) {
	t.Parallel()

	codec := NewCodec("test-secret", -time.Minute)
	signed, err := codec.Sign("session-123")
	require.NoError(t, err)

	_, err = codec.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken, "expired token must not parse")
}

func TestCodec_Parse_MissingSessionClaim(t *testing.T) {
	t.Parallel()

	// A validly signed token without a sid claim must be rejected.
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewCodec("test-secret", time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
