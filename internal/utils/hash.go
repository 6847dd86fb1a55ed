package utils

import (
	"crypto/sha256"
	"encoding/base64"
)

// HashToken digests a raw session token so only the hash is ever stored.
func HashToken(raw string) string {
	hasher := sha256.New()
	hasher.Write([]byte(raw))
	return base64.URLEncoding.EncodeToString(hasher.Sum(nil))
}
