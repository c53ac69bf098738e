// Package hash provides password hashing and verification using
// PBKDF2-SHA256. The encoded form is `pbkdf2:sha256:<iterations>$<salt>$<hex>`,
// which keeps hashes produced by the previous deployment verifiable.
package hash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	iterations = 600_000
	saltLength = 16
	keyLength  = 32
)

// Hash derives an encoded password hash from the raw password.
// A fresh random salt is drawn on every call, so hashing the same
// password twice yields different encodings that both verify.
func Hash(raw string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)
	key := pbkdf2.Key([]byte(raw), []byte(saltHex), iterations, keyLength, sha256.New)
	return fmt.Sprintf("pbkdf2:sha256:%d$%s$%s", iterations, saltHex, hex.EncodeToString(key)), nil
}

// Verify reports whether raw matches the encoded hash. It recomputes
// the derivation with the salt and iteration count embedded in encoded
// and compares in constant time. Any malformed encoding returns false.
func Verify(raw, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 {
		return false
	}
	method, salt, wantHex := parts[0], parts[1], parts[2]

	methodParts := strings.Split(method, ":")
	if len(methodParts) != 3 || methodParts[0] != "pbkdf2" || methodParts[1] != "sha256" {
		return false
	}
	iter, err := strconv.Atoi(methodParts[2])
	if err != nil || iter <= 0 {
		return false
	}

	want, err := hex.DecodeString(wantHex)
	if err != nil || len(want) == 0 {
		return false
	}

	got := pbkdf2.Key([]byte(raw), []byte(salt), iter, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}
