package processor

import (
	"crypto/sha256"
	"encoding/hex"
)

// ipHashLength is the number of hex characters kept from the digest
const ipHashLength = 16

// HashIP returns the first 16 hex characters of sha256(ip + secret).
// The raw address is never stored.
func HashIP(ip, secret string) string {
	sum := sha256.Sum256([]byte(ip + secret))
	return hex.EncodeToString(sum[:])[:ipHashLength]
}
