package objects

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/KostasZigo/commitlint/internal/constants"
)

// Hash decoding errors.
var (
	ErrInvalidLength = errors.New("invalid hash length")
	ErrInvalidDigit  = errors.New("invalid hex digit")
)

// Hash is the SHA-1 id of a git object.
// It is a value type; the zero Hash is all zero bytes.
type Hash [constants.HashByteLength]byte

// ParseHash decodes exactly 40 hex characters into a Hash.
func ParseHash(s []byte) (Hash, error) {
	var h Hash
	if len(s) != constants.HashStringLength {
		return h, fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidLength, constants.HashStringLength, len(s))
	}

	if _, err := hex.Decode(h[:], s); err != nil {
		return Hash{}, fmt.Errorf("%w: %v", ErrInvalidDigit, err)
	}

	return h, nil
}

// MustParseHash is like ParseHash but panics on malformed input.
// Intended for constants in tests.
func MustParseHash(s string) Hash {
	h, err := ParseHash([]byte(s))
	if err != nil {
		panic(err)
	}
	return h
}

// String returns the lowercase 40-character hex form.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}
