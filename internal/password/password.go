// Package password implements salted password hashing and verification.
//
// A stored value is the concatenation of a 64-character hex salt and the
// hex-encoded PBKDF2-HMAC-SHA512 digest of the password. The format is
// self-describing enough to verify: the salt length and digest parameters
// are fixed, so Verify can split the value deterministically.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// saltHexLen is the length of the hex-encoded salt prefix.
	saltHexLen = 64

	// iterations is a security parameter, not a protocol detail. Raising it
	// invalidates nothing: verification always re-derives with the current
	// value, and stored digests were produced with it.
	iterations = 100_000

	digestLen = 64
)

// Hash derives a keyed digest of password under a fresh random salt and
// returns the opaque stored form (hex salt + hex digest).
func Hash(password string) (string, error) {
	seed := make([]byte, 60)
	if _, err := rand.Read(seed); err != nil {
		return "", err
	}

	sum := sha256.Sum256(seed)
	salt := hex.EncodeToString(sum[:])

	digest := pbkdf2.Key([]byte(password), []byte(salt), iterations, digestLen, sha512.New)
	return salt + hex.EncodeToString(digest), nil
}

// Verify reports whether candidate matches the stored hash. A malformed
// stored value yields false, never an error. The digest comparison runs in
// constant time.
func Verify(stored, candidate string) bool {
	if len(stored) != saltHexLen+digestLen*2 {
		return false
	}

	salt := stored[:saltHexLen]
	digest := pbkdf2.Key([]byte(candidate), []byte(salt), iterations, digestLen, sha512.New)

	return subtle.ConstantTimeCompare([]byte(stored[saltHexLen:]), []byte(hex.EncodeToString(digest))) == 1
}
