package uid

import "github.com/google/uuid"

// UUID generates RFC 4122 UUID strings. Version 7 ids are time-ordered,
// which keeps inserts into a unique column from scattering across the index.
type UUID struct{}

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUIDv7 string, falling back to v4 when the
// randomness source fails.
func (u *UUID) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
