package uid

// StringID generates opaque string identifiers.
type StringID interface {
	// Generate returns a new identifier.
	Generate() string
}

// NumberID generates 64-bit integer identifiers.
type NumberID interface {
	// Generate returns a new identifier.
	Generate() int64
}
