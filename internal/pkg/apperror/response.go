package apperror

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Body is the wire representation of a failed request.
//
// Detail is populated only for client errors; server errors never leak
// their detail outward. Instance is reserved and currently always omitted.
type Body struct {
	Status    int     `json:"status"`
	Message   string  `json:"message"`
	Detail    string  `json:"detail,omitempty"`
	Instance  *string `json:"instance,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

// ToResponse converts any error into an HTTP status code and response body.
//
// The full error value is always logged: server errors at error severity,
// client errors at warning severity. A server-error body carries only the
// canonical reason phrase so internal diagnostics never reach the client.
// Errors outside the taxonomy are treated as internal server errors.
func ToResponse(ctx context.Context, err error, now time.Time) (int, Body) {
	var e *Error
	if !errors.As(err, &e) {
		e = &Error{kind: KindInternalServerError, err: err}
	}

	status := e.StatusCode()
	body := Body{
		Status:    status,
		Message:   reasonPhrase(status),
		Timestamp: now.Unix(),
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(ctx, "internal server error", "error", e.String())
		return status, body
	}

	slog.WarnContext(ctx, "client error", "error", e.String())
	body.Detail = e.Detail()

	return status, body
}

func reasonPhrase(status int) string {
	if phrase := http.StatusText(status); phrase != "" {
		return phrase
	}

	return "Internal Server Error"
}
