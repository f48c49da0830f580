package apperror

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes classified by FromPostgres. Codes outside this table
// degrade to a generic internal error; extend the table instead of relying
// on the substring fallback when a new constraint class shows up.
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
	pgCodeNotNullViolation    = "23502"
	pgCodeCheckViolation      = "23514"
)

// FromPostgres classifies a database error into the taxonomy.
//
// It is called exactly once, at the boundary where a database call's error
// surfaces into domain code. The original cause stays wrapped so operator
// logs keep the engine diagnostics even when the client response does not.
func FromPostgres(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return Wrap(err, KindNotFound, "Resource not found")
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return Wrap(err, KindRequestTimeout, "")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCodeUniqueViolation:
			return Wrap(err, KindConflict, "Resource already exists")
		case pgCodeForeignKeyViolation:
			return Wrap(err, KindConflict, "Resource reference is invalid")
		case pgCodeNotNullViolation:
			return Wrap(err, KindBadRequest, "Required value is missing")
		case pgCodeCheckViolation:
			return Wrap(err, KindUnprocessableContent, "Value violates a data constraint")
		default:
			return Wrap(err, KindInternalServerError, fmt.Sprintf("database error code %s: %s", pgErr.Code, pgErr.Message))
		}
	}

	// Best-effort fallback for drivers and pools that only report timeouts
	// through their message text. Deliberately case-sensitive.
	if strings.Contains(err.Error(), "timeout") {
		return Wrap(err, KindRequestTimeout, "")
	}

	return Wrap(err, KindInternalServerError, err.Error())
}
