package valueobject

import "github.com/shandysiswandi/goident/internal/pkg/apperror"

// UserID is a strictly positive 64-bit account identifier.
type UserID struct {
	value int64
}

// NewUserID validates that v is strictly positive.
//
// A non-positive id reaching this constructor is an internal invariant
// violation (corrupted session, bad internal call), never user input, so
// the failure is a server error rather than a client error.
func NewUserID(v int64) (UserID, error) {
	if v <= 0 {
		return UserID{}, apperror.New(apperror.KindInternalServerError, "user id must be a positive integer")
	}

	return UserID{value: v}, nil
}

// Int64 returns the wrapped identifier.
func (id UserID) Int64() int64 {
	return id.value
}
