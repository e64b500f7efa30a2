package token

import (
	"crypto/rand"
	"encoding/hex"
)

// New returns a 128-bit random token as 32 lowercase hex characters,
// suitable for session identifiers.
func New() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
