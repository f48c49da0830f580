package usecase

import (
	"context"
	"log/slog"
	"time"
)

type ProfileInput struct {
	ID int64
}

type ProfileOutput struct {
	ID        int64
	PublicID  string
	UserName  string
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	BirthDate *string // YYYYMMDD
	Age       *int
	Randomart string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Usecase) Profile(ctx context.Context, in ProfileInput) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	acc, err := s.repoDB.GetAccountByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	out := &ProfileOutput{
		ID:        acc.ID.Int64(),
		PublicID:  acc.PublicID,
		UserName:  acc.UserName,
		FirstName: acc.FirstName,
		LastName:  acc.LastName,
		Email:     acc.Email,
		Phone:     acc.Phone,
		Randomart: acc.Randomart,
		CreatedAt: acc.CreatedAt,
		UpdatedAt: acc.UpdatedAt,
	}

	if acc.BirthDate != nil {
		age, err := acc.BirthDate.AgeOn(s.clock.Now())
		if err != nil {
			slog.ErrorContext(ctx, "failed to compute age", "account_id", acc.ID.Int64(), "error", err)
			return nil, err
		}

		bd := acc.BirthDate.String()
		out.BirthDate = &bd
		out.Age = &age
	}

	return out, nil
}
