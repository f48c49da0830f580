// Package validator validates request and input structs against their
// `validate` tags.
//
// Use cases depend on the Validator interface; the concrete implementation
// wraps go-playground/validator v10 with English translations, snake_case
// field keys, and the custom password rule. Validation failures come back as
// a field-to-message map that renders directly into an error response detail.
package validator
