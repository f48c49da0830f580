package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/goident/internal/account/entity"
	"github.com/shandysiswandi/goident/internal/pkg/apperror"
)

type AuthInput struct {
	UserName string
	Password string `validate:"required,password"`
}

type AuthOutput struct {
	PublicID  string
	SessionID string
	Randomart string
}

// Auth verifies a user name and password pair and opens a session.
//
// A missing account and a wrong password produce the same response, so the
// endpoint cannot be used to probe which user names exist.
func (s *Usecase) Auth(ctx context.Context, in AuthInput) (*AuthOutput, error) {
	ctx, span := s.startSpan(ctx, "Auth")
	defer span.End()

	userName, err := normalizeUserName(in.UserName)
	if err != nil {
		return nil, err
	}
	in.UserName = userName.String()

	if err := s.validator.Validate(in); err != nil {
		return nil, apperror.Wrap(err, apperror.KindUnprocessableContent, err.Error())
	}

	acc, err := s.repoDB.GetAccountAuthInfo(ctx, in.UserName)
	if apperror.Is(err, apperror.KindNotFound) {
		slog.WarnContext(ctx, "account not found", "user_name", in.UserName)
		return nil, apperror.Wrap(err, apperror.KindUnauthorized, "invalid user name or password")
	}
	if err != nil {
		return nil, err
	}

	if !s.argon2id.Verify(acc.Password, in.Password) {
		slog.WarnContext(ctx, "password does not match", "account_id", acc.ID.Int64())
		return nil, apperror.New(apperror.KindUnauthorized, "invalid user name or password")
	}

	sessionID := s.oid.Generate()
	sessionHash, err := s.hmac.Hash(sessionID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash session id", "account_id", acc.ID.Int64(), "error", err)
		return nil, apperror.Wrap(err, apperror.KindInternalServerError, "")
	}

	if err := s.repoDB.CreateSession(ctx, entity.Session{
		ID:        s.uid.Generate(),
		AccountID: acc.ID.Int64(),
		Token:     string(sessionHash),
		ExpiresAt: s.clock.Now().Add(s.cfg.GetHour("modules.account.session_ttl_hours")),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create session", "account_id", acc.ID.Int64(), "error", err)
		return nil, err
	}

	return &AuthOutput{
		PublicID:  acc.PublicID,
		SessionID: sessionID,
		Randomart: acc.Randomart,
	}, nil
}
