package clock

import "time"

// Clocker is the single source of "now" for code that compares against the
// current time. An operation should read it once and pass the value along,
// so one request sees one consistent instant.
type Clocker interface {
	Now() time.Time
}

// TimeClocker reads the real system clock.
type TimeClocker struct{}

// New returns the production clock.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now returns the current system time.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}
