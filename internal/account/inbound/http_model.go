package inbound

import (
	"net/http"
	"time"
)

type RegisterRequest struct {
	UserName  string `json:"user_name"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
}

type RegisterResponse struct {
	PublicID  string `json:"public_id"`
	Randomart string `json:"randomart"`
}

func (RegisterResponse) StatusCode() int {
	return http.StatusCreated
}

type AuthRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

type AuthResponse struct {
	PublicID  string `json:"public_id"`
	SessionID string `json:"session_id"`
	Randomart string `json:"randomart"`
}

type ProfileResponse struct {
	ID        int64     `json:"id,string"`
	PublicID  string    `json:"public_id"`
	UserName  string    `json:"user_name"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	BirthDate string    `json:"birth_date,omitempty"` // YYYYMMDD
	Age       *int      `json:"age,omitempty"`
	Randomart string    `json:"randomart"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
