package render

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the SHA-256 of the markup as a 64-character hex string.
// Since Render is deterministic, equal digests mean equal icons.
func Digest(svg string) string {
	sum := sha256.Sum256([]byte(svg))
	return hex.EncodeToString(sum[:])
}
