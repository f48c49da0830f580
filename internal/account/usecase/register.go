package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/goident/internal/account/entity"
	"github.com/shandysiswandi/goident/internal/pkg/apperror"
	"github.com/shandysiswandi/goident/internal/pkg/idempotency"
	"github.com/shandysiswandi/goident/internal/pkg/randomart"
	"github.com/shandysiswandi/goident/internal/pkg/valueobject"
)

type RegisterInput struct {
	UserName  string
	Password  string `validate:"required,password"`
	FirstName string
	LastName  string
	Email     string `validate:"omitempty,email"`
	Phone     string `validate:"omitempty,e164"`
	BirthDate string
}

type RegisterOutput struct {
	PublicID  string
	Randomart string
}

func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	userName, err := normalizeUserName(in.UserName)
	if err != nil {
		return nil, err
	}

	firstName, err := valueobject.Normalize(in.FirstName, valueobject.TextRule{
		Label: "first_name", MinLen: 1, MaxLen: 64,
	})
	if err != nil {
		return nil, err
	}

	lastName, err := valueobject.Normalize(in.LastName, valueobject.TextRule{
		Label: "last_name", MinLen: 1, MaxLen: 64,
	})
	if err != nil {
		return nil, err
	}

	email, err := valueobject.Normalize(in.Email, valueobject.TextRule{
		Label: "email", MaxLen: 254,
	})
	if err != nil {
		return nil, err
	}

	phone, err := valueobject.Normalize(in.Phone, valueobject.TextRule{
		Label: "phone", MaxLen: 32,
	})
	if err != nil {
		return nil, err
	}

	birthDate, err := valueobject.ParseBirthDate(in.BirthDate, false, s.clock.Now())
	if err != nil {
		return nil, err
	}

	// The validator sees canonical values, so a full-width address passes the
	// email rule the same way its ASCII form does.
	in.UserName = userName.String()
	in.Email = ""
	if email != nil {
		in.Email = strings.ToLower(email.String())
	}
	in.Phone = ""
	if phone != nil {
		in.Phone = phone.String()
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, apperror.Wrap(err, apperror.KindUnprocessableContent, err.Error())
	}

	var out *RegisterOutput
	key := "account_register:" + userName.String()
	err = s.idemp.Exec(ctx, key, func(ctx context.Context) error {
		hashedPassword, err := s.argon2id.Hash(in.Password)
		if err != nil {
			slog.ErrorContext(ctx, "failed to hash password", "error", err)
			return err
		}

		publicID := s.uuid.Generate()
		acc := entity.NewAccount{
			ID:        s.uid.Generate(),
			PublicID:  publicID,
			UserName:  userName.String(),
			FirstName: textPtr(firstName),
			LastName:  textPtr(lastName),
			Email:     strPtr(in.Email),
			Phone:     strPtr(in.Phone),
			BirthDate: birthDate,
			Randomart: randomart.Generate(publicID),
		}

		if err := s.repoDB.CreateAccount(ctx, acc, string(hashedPassword)); err != nil {
			slog.ErrorContext(ctx, "failed to repo create account", "user_name", acc.UserName, "error", err)
			return err
		}

		s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
			if err := s.repoMessaging.PublishAccountRegistration(ctx, AccountRegistrationEvent{
				AccountID: acc.ID,
				PublicID:  acc.PublicID,
				UserName:  acc.UserName,
				Email:     in.Email,
			}); err != nil {
				slog.ErrorContext(ctx, "failed to publish account registration", "account_id", acc.ID, "error", err)
			}
			return nil
		})

		out = &RegisterOutput{PublicID: acc.PublicID, Randomart: acc.Randomart}
		return nil
	}, idempotency.WithStateTTL(s.cfg.GetMinute("modules.account.registration_guard_ttl_minutes")))

	switch {
	case errors.Is(err, idempotency.ErrAlreadyInProgress),
		errors.Is(err, idempotency.ErrAlreadyCompleted),
		errors.Is(err, idempotency.ErrAlreadyFailed):
		slog.WarnContext(ctx, "duplicate registration attempt", "user_name", userName.String())
		return nil, apperror.Wrap(err, apperror.KindConflict, "registration for this user name was already attempted")
	case err != nil:
		return nil, err
	}

	return out, nil
}

func textPtr(t *valueobject.NormalizedText) *string {
	if t == nil {
		return nil
	}

	v := t.String()

	return &v
}

func strPtr(v string) *string {
	if v == "" {
		return nil
	}

	return &v
}
