package clock

import "time"

// Fake is a deterministic clock for tests. It always reports the instant
// it was constructed with.
type Fake struct {
	t time.Time
}

// NewFake returns a Fake frozen at t.
func NewFake(t time.Time) *Fake {
	return &Fake{t: t}
}

// Now returns the frozen instant.
func (f *Fake) Now() time.Time {
	return f.t
}
