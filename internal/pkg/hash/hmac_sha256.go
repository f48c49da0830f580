package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HMACSHA256 derives keyed, deterministic digests. It backs session tokens:
// the database keeps only the digest, so a leaked sessions table cannot be
// replayed without the key. Unlike Argon2id the output is reproducible,
// which allows lookup by token.
type HMACSHA256 struct {
	key []byte
}

// NewHMACSHA256 creates a hasher keyed with key.
func NewHMACSHA256(key string) *HMACSHA256 {
	return &HMACSHA256{key: []byte(key)}
}

// Hash returns the hex-encoded HMAC-SHA256 digest of plaintext.
func (h *HMACSHA256) Hash(plaintext string) ([]byte, error) {
	return h.digest(plaintext), nil
}

// Verify reports whether plaintext produces the given digest. The comparison
// is constant time.
func (h *HMACSHA256) Verify(hashed, plaintext string) bool {
	return subtle.ConstantTimeCompare([]byte(hashed), h.digest(plaintext)) == 1
}

func (h *HMACSHA256) digest(plaintext string) []byte {
	mac := hmac.New(sha256.New, h.key)
	mac.Write([]byte(plaintext))
	sum := mac.Sum(nil)

	out := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(out, sum)
	return out
}
