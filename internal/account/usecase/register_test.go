package usecase

import (
	"context"
	"testing"

	"github.com/shandysiswandi/goident/internal/pkg/apperror"
	"github.com/shandysiswandi/goident/internal/pkg/idempotency"
	"github.com/shandysiswandi/goident/internal/pkg/randomart"
)

func TestRegister(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	in := RegisterInput{
		UserName:  "  ｊｏｈｎ.ｄｏｅ  ",
		Password:  "Secret123!",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "John.Doe@Example.COM",
		Phone:     "+6281234567890",
		BirthDate: "20000229",
	}

	// Act
	out, err := env.uc.Register(context.Background(), in)

	// Assert
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if out.PublicID != "public-id-1" {
		t.Errorf("PublicID = %q, want %q", out.PublicID, "public-id-1")
	}

	if want := randomart.Generate("public-id-1"); out.Randomart != want {
		t.Errorf("Randomart = %q, want %q", out.Randomart, want)
	}

	if len(env.repoDB.createdAccounts) != 1 {
		t.Fatalf("created %d accounts, want 1", len(env.repoDB.createdAccounts))
	}

	acc := env.repoDB.createdAccounts[0]
	if acc.UserName != "john.doe" {
		t.Errorf("UserName = %q, want %q (full-width folded, trimmed)", acc.UserName, "john.doe")
	}

	if acc.Email == nil || *acc.Email != "john.doe@example.com" {
		t.Errorf("Email = %v, want john.doe@example.com", acc.Email)
	}

	if acc.FirstName == nil || *acc.FirstName != "John" {
		t.Errorf("FirstName = %v, want John", acc.FirstName)
	}

	if acc.BirthDate == nil || acc.BirthDate.String() != "20000229" {
		t.Errorf("BirthDate = %v, want 20000229", acc.BirthDate)
	}

	if got := env.repoDB.createdHashes[0]; got != "argon2id:Secret123!" {
		t.Errorf("stored password hash = %q, want the argon2id output", got)
	}

	if len(env.idemp.keys) != 1 || env.idemp.keys[0] != "account_register:john.doe" {
		t.Errorf("idempotency keys = %v, want [account_register:john.doe]", env.idemp.keys)
	}

	if err := env.goroutine.Wait(); err != nil {
		t.Fatalf("goroutine wait error = %v", err)
	}

	events := env.repoMsg.published()
	if len(events) != 1 {
		t.Fatalf("published %d events, want 1", len(events))
	}

	if events[0].AccountID != acc.ID || events[0].PublicID != "public-id-1" || events[0].UserName != "john.doe" {
		t.Errorf("published event = %+v", events[0])
	}
}

func TestRegisterOptionalFieldsAbsent(t *testing.T) {
	// Arrange
	env := newTestEnv(t)

	// Act
	out, err := env.uc.Register(context.Background(), RegisterInput{
		UserName: "minimal",
		Password: "Secret123!",
	})

	// Assert
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if out == nil || out.PublicID == "" {
		t.Fatalf("Register() output = %+v", out)
	}

	acc := env.repoDB.createdAccounts[0]
	if acc.FirstName != nil || acc.LastName != nil || acc.Email != nil || acc.Phone != nil || acc.BirthDate != nil {
		t.Errorf("optional fields should stay absent, got %+v", acc)
	}
}

func TestRegisterInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   RegisterInput
	}{
		{
			name: "missing user name",
			in:   RegisterInput{Password: "Secret123!"},
		},
		{
			name: "user name too short",
			in:   RegisterInput{UserName: "ab", Password: "Secret123!"},
		},
		{
			name: "password too short",
			in:   RegisterInput{UserName: "johndoe", Password: "short"},
		},
		{
			name: "invalid email",
			in:   RegisterInput{UserName: "johndoe", Password: "Secret123!", Email: "not-an-email"},
		},
		{
			name: "invalid phone",
			in:   RegisterInput{UserName: "johndoe", Password: "Secret123!", Phone: "call-me"},
		},
		{
			name: "birth date wrong format",
			in:   RegisterInput{UserName: "johndoe", Password: "Secret123!", BirthDate: "2000-02-29"},
		},
		{
			name: "birth date in the future",
			in:   RegisterInput{UserName: "johndoe", Password: "Secret123!", BirthDate: "20990101"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			_, err := env.uc.Register(context.Background(), tc.in)

			if !apperror.Is(err, apperror.KindUnprocessableContent) {
				t.Errorf("Register() error = %v, want unprocessable content", err)
			}

			if len(env.repoDB.createdAccounts) != 0 {
				t.Errorf("created %d accounts, want 0", len(env.repoDB.createdAccounts))
			}
		})
	}
}

func TestRegisterDuplicateAttempt(t *testing.T) {
	tests := []struct {
		name  string
		state error
	}{
		{name: "in progress", state: idempotency.ErrAlreadyInProgress},
		{name: "completed", state: idempotency.ErrAlreadyCompleted},
		{name: "failed", state: idempotency.ErrAlreadyFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.idemp.fixedErr = tc.state

			_, err := env.uc.Register(context.Background(), RegisterInput{
				UserName: "johndoe",
				Password: "Secret123!",
			})

			if !apperror.Is(err, apperror.KindConflict) {
				t.Errorf("Register() error = %v, want conflict", err)
			}
		})
	}
}

func TestRegisterStoreConflict(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	env.repoDB.createAccountErr = apperror.New(apperror.KindConflict, "Resource already exists")

	// Act
	_, err := env.uc.Register(context.Background(), RegisterInput{
		UserName: "johndoe",
		Password: "Secret123!",
	})

	// Assert
	if !apperror.Is(err, apperror.KindConflict) {
		t.Fatalf("Register() error = %v, want conflict", err)
	}

	if err := env.goroutine.Wait(); err != nil {
		t.Fatalf("goroutine wait error = %v", err)
	}

	if got := env.repoMsg.published(); len(got) != 0 {
		t.Errorf("published %d events after failed create, want 0", len(got))
	}
}
