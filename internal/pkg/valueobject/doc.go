// Package valueobject holds the smart constructors that turn untrusted
// external input into validated, immutable domain values.
//
// Each constructor either returns a value that already satisfies all of its
// invariants or an apperror taxonomy error; a partially-validated value can
// never exist. All constructors are pure and safe for concurrent use.
package valueobject
