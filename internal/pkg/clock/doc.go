// Package clock abstracts the current time behind the Clocker interface.
//
// Anything that depends on "today" (age calculation, future-date checks,
// session expiry, response timestamps) takes a Clocker instead of calling
// time.Now() directly, and tests freeze it with a Fake.
package clock
