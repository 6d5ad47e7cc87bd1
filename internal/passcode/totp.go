// Package passcode implements time-windowed one-time passcodes (RFC 6238)
// bound to a per-account secret.
//
// The issuer is stateless: a passcode is a pure function of the secret and
// the current time bucket, so nothing marks a code as consumed. Replay of a
// valid code within the same window verifies again; callers that need
// single-use semantics must gate it themselves (the account lifecycle does,
// by its status predicate).
package passcode

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"hash"
	"time"
)

const (
	DefaultDigits = 8
	DefaultWindow = time.Hour
)

// Issuer derives numeric passcodes from a secret and the current time bucket.
type Issuer struct {
	digits int
	digest func() hash.Hash
	window time.Duration
	now    func() time.Time
}

// Option configures an Issuer.
type Option func(*Issuer)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) {
		i.now = now
	}
}

// NewIssuer builds an Issuer with the given passcode length, hash
// constructor and time window. Zero values fall back to the defaults
// (8 digits, SHA-256, 1 hour).
func NewIssuer(digits int, digest func() hash.Hash, window time.Duration, opts ...Option) *Issuer {
	if digits <= 0 {
		digits = DefaultDigits
	}
	if digest == nil {
		digest = sha256.New
	}
	if window <= 0 {
		window = DefaultWindow
	}

	i := &Issuer{digits: digits, digest: digest, window: window, now: time.Now}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Key returns the secret in the standard base-32 key alphabet, the key
// space the passcode algorithm is defined over. The label identifies the
// account the key belongs to in provisioning contexts; it does not enter
// the derivation.
func (i *Issuer) Key(secret []byte, label string) string {
	_ = label
	return base32.StdEncoding.EncodeToString(secret)
}

// Issue returns the passcode for the current time bucket. Calls within the
// same bucket produce the same code; adjacent buckets almost certainly
// differ.
func (i *Issuer) Issue(secret []byte, label string) string {
	return i.passcode(i.Key(secret, label), i.bucket())
}

// Verify recomputes the passcode for the current bucket only (no clock-skew
// tolerance across adjacent windows) and compares in constant time.
func (i *Issuer) Verify(secret []byte, label string, candidate string) bool {
	expected := i.Issue(secret, label)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(candidate)) == 1
}

func (i *Issuer) bucket() uint64 {
	return uint64(i.now().Unix() / int64(i.window/time.Second))
}

// passcode computes the HOTP value for a base-32 key and counter:
// HMAC over the big-endian counter, dynamic truncation, mod 10^digits.
func (i *Issuer) passcode(key string, counter uint64) string {
	raw, err := base32.StdEncoding.DecodeString(key)
	if err != nil {
		// Key produced the encoding; a failure here means a programming error.
		panic(err)
	}

	mac := hmac.New(i.digest, raw)
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	code := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	mod := uint32(1)
	for range i.digits {
		mod *= 10
	}

	return fmt.Sprintf("%0*d", i.digits, code%mod)
}
