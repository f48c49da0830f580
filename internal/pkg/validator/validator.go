package validator

// Validator validates a struct and reports all rule violations at once.
type Validator interface {
	// Validate checks data against its struct tags. It returns nil when the
	// value is valid and an error describing every failed field otherwise.
	Validate(data any) error
}
