package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind enumerates the closed set of failure categories used across the
// application. Every fallible operation reports one of these; nothing
// outside this list is ever surfaced to the transport layer.
type Kind int

const (
	// KindBadRequest indicates a malformed or incomplete request.
	KindBadRequest Kind = iota
	// KindUnauthorized indicates missing or invalid credentials.
	KindUnauthorized
	// KindForbidden indicates the caller is not allowed to do this.
	KindForbidden
	// KindNotFound indicates the requested resource does not exist.
	KindNotFound
	// KindRequestTimeout indicates the operation timed out.
	KindRequestTimeout
	// KindConflict indicates a state conflict (e.g. duplicate resource).
	KindConflict
	// KindTeapotUnsupported indicates a request this server refuses to brew.
	KindTeapotUnsupported
	// KindUnprocessableContent indicates input that is well-formed but invalid.
	KindUnprocessableContent
	// KindInternalServerError indicates a server-side failure.
	KindInternalServerError
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "BAD_REQUEST"
	case KindUnauthorized:
		return "UNAUTHORIZED"
	case KindForbidden:
		return "FORBIDDEN"
	case KindNotFound:
		return "NOT_FOUND"
	case KindRequestTimeout:
		return "REQUEST_TIMEOUT"
	case KindConflict:
		return "CONFLICT"
	case KindTeapotUnsupported:
		return "TEAPOT_UNSUPPORTED"
	case KindUnprocessableContent:
		return "UNPROCESSABLE_CONTENT"
	case KindInternalServerError:
		return "INTERNAL_SERVER_ERROR"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

// StatusCode maps the kind to its fixed HTTP status code.
func (k Kind) StatusCode() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindRequestTimeout:
		return http.StatusRequestTimeout
	case KindConflict:
		return http.StatusConflict
	case KindTeapotUnsupported:
		return http.StatusTeapot
	case KindUnprocessableContent:
		return http.StatusUnprocessableEntity
	case KindInternalServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Error is the structured failure value used across the application.
//
// It carries the failure kind, an optional human-readable detail, and an
// optional underlying cause. Values are constructed once at the failure
// site and propagated unchanged to the transport boundary.
type Error struct {
	kind   Kind
	detail string
	err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.detail != "" {
		return e.detail
	}

	if e.err != nil {
		return e.err.Error()
	}

	return http.StatusText(e.kind.StatusCode())
}

// String returns a verbose representation for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Kind: %s, Status: %d, Detail: %s, Underlying Error: %v",
		e.kind.String(),
		e.kind.StatusCode(),
		e.detail,
		e.err,
	)
}

// Kind returns the failure kind.
func (e *Error) Kind() Kind {
	return e.kind
}

// Detail returns the human-readable detail, if set.
func (e *Error) Detail() string {
	return e.detail
}

// StatusCode maps the error to its fixed HTTP status code.
func (e *Error) StatusCode() int {
	return e.kind.StatusCode()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// New creates a taxonomy error of the given kind with a detail message.
func New(kind Kind, detail string) error {
	return &Error{kind: kind, detail: detail}
}

// Newf creates a taxonomy error with a formatted detail message.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{kind: kind, detail: fmt.Sprintf(format, args...)}
}

// Wrap creates a taxonomy error that keeps the underlying cause for logs.
func Wrap(err error, kind Kind, detail string) error {
	return &Error{kind: kind, detail: detail, err: err}
}

// Is reports whether err is (or wraps) a taxonomy error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}

	return e.kind == kind
}
