package processor

import (
	"crypto/rand"
	"math/big"
)

const (
	// TokenLength is the number of characters in a session credential
	TokenLength = 64

	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var tokenAlphabetSize = big.NewInt(int64(len(tokenAlphabet)))

// GenerateToken returns a fresh session credential of TokenLength characters,
// each drawn uniformly from [A-Za-z0-9]. It panics only if the system
// randomness source fails.
func GenerateToken() string {
	token := make([]byte, TokenLength)
	for i := range token {
		n, err := rand.Int(rand.Reader, tokenAlphabetSize)
		if err != nil {
			panic("auth: failed to read random bytes: " + err.Error())
		}
		token[i] = tokenAlphabet[n.Int64()]
	}
	return string(token)
}
