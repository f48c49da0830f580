// Package apperror defines the application's closed error taxonomy.
//
// Every failure in the system is expressed as one of nine kinds, each with
// a fixed HTTP status code. Errors are created once at the failure site and
// flow unchanged to the transport boundary, where ToResponse renders them:
// client errors keep their detail, server errors are redacted and only
// logged. FromPostgres classifies database errors into the same taxonomy so
// persistence failures and validation failures share a single channel.
package apperror
