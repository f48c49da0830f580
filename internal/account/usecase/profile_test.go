package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shandysiswandi/goident/internal/account/entity"
	"github.com/shandysiswandi/goident/internal/pkg/apperror"
	"github.com/shandysiswandi/goident/internal/pkg/valueobject"
)

func TestProfile(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	firstName := "John"
	birthDate := valueobject.BirthDateFrom(time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC))
	env.repoDB.account = &entity.Account{
		ID:        mustUserID(t, 42),
		PublicID:  "pub-42",
		UserName:  "johndoe",
		FirstName: &firstName,
		BirthDate: &birthDate,
		Randomart: "art-42",
		CreatedAt: testNow.Add(-time.Hour),
		UpdatedAt: testNow.Add(-time.Minute),
	}

	// Act
	out, err := env.uc.Profile(context.Background(), ProfileInput{ID: 42})

	// Assert
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}

	if out.ID != 42 || out.PublicID != "pub-42" || out.UserName != "johndoe" {
		t.Errorf("Profile() output = %+v", out)
	}

	if out.FirstName == nil || *out.FirstName != "John" {
		t.Errorf("FirstName = %v, want John", out.FirstName)
	}

	if out.LastName != nil || out.Email != nil || out.Phone != nil {
		t.Errorf("absent fields should stay nil, got %+v", out)
	}

	if out.BirthDate == nil || *out.BirthDate != "20000229" {
		t.Errorf("BirthDate = %v, want 20000229", out.BirthDate)
	}

	// Leap-day birthday with a non-leap current year: the Feb 28 anniversary
	// counts, so on 2025-02-28 the age is already 25.
	if out.Age == nil || *out.Age != 25 {
		t.Errorf("Age = %v, want 25", out.Age)
	}
}

func TestProfileWithoutBirthDate(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	env.repoDB.account = &entity.Account{
		ID:       mustUserID(t, 7),
		PublicID: "pub-7",
		UserName: "minimal",
	}

	// Act
	out, err := env.uc.Profile(context.Background(), ProfileInput{ID: 7})

	// Assert
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}

	if out.BirthDate != nil || out.Age != nil {
		t.Errorf("BirthDate = %v, Age = %v, want both nil", out.BirthDate, out.Age)
	}
}

func TestProfileNotFound(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	env.repoDB.accountErr = apperror.New(apperror.KindNotFound, "Resource not found")

	// Act
	_, err := env.uc.Profile(context.Background(), ProfileInput{ID: 999})

	// Assert
	if !apperror.Is(err, apperror.KindNotFound) {
		t.Errorf("Profile() error = %v, want not found", err)
	}
}
