package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the hex SHA-256 digest of the input string.
func Hash(input string) string {
	hasher := sha256.New()
	hasher.Write([]byte(input))
	return hex.EncodeToString(hasher.Sum(nil))
}

// ShortHash returns the first n hex characters of the digest. Post IDs use
// 16, which is plenty for a single user's history.
func ShortHash(input string, n int) string {
	h := Hash(input)
	if n > len(h) {
		n = len(h)
	}
	return h[:n]
}
