package entity

import (
	"time"

	"github.com/shandysiswandi/goident/internal/pkg/valueobject"
)

type Account struct {
	ID        valueobject.UserID
	PublicID  string
	UserName  string
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	BirthDate *valueobject.BirthDate
	Randomart string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewAccount struct {
	ID        int64
	PublicID  string
	UserName  string
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	BirthDate *valueobject.BirthDate
	Randomart string
}

type AccountAuthInfo struct {
	ID        valueobject.UserID
	PublicID  string
	Password  string // argon2id encoded
	Randomart string
}

type Session struct {
	ID        int64
	AccountID int64
	Token     string // hmac of the opaque session id, never the id itself
	ExpiresAt time.Time
}
