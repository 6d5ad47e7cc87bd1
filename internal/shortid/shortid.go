// Package shortid generates the fixed-length opaque identifiers used as
// account primary keys.
package shortid

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Length is the identifier length in characters.
const Length = 12

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// New returns a fresh random identifier. 12 characters over a 62-symbol
// alphabet give ~71 bits of entropy, enough that collisions are a storage
// constraint concern rather than a practical one.
func New() (string, error) {
	return gonanoid.Generate(alphabet, Length)
}
