package hash

// Hash hashes plaintext secrets and verifies plaintext against a stored hash.
type Hash interface {
	// Hash returns the encoded hash of the plaintext.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the encoded hash.
	Verify(hashed, plaintext string) bool
}
