package db

import (
	"context"
	"time"

	"github.com/shandysiswandi/goident/internal/account/entity"
	"github.com/shandysiswandi/goident/internal/pkg/apperror"
)

const queryCreateAccount = `
INSERT INTO accounts (id, public_id, user_name, password, first_name, last_name, email, phone, birth_date, randomart)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (s *DB) CreateAccount(ctx context.Context, acc entity.NewAccount, passwordHash string) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAccount")
	defer func() { s.endSpan(span, err) }()

	var birthDate *time.Time
	if acc.BirthDate != nil {
		d := acc.BirthDate.Date()
		birthDate = &d
	}

	_, err = s.conn.Exec(ctx, queryCreateAccount,
		acc.ID, acc.PublicID, acc.UserName, passwordHash,
		acc.FirstName, acc.LastName, acc.Email, acc.Phone,
		birthDate, acc.Randomart,
	)
	err = apperror.FromPostgres(err)

	return err
}

const queryCreateSession = `
INSERT INTO sessions (id, account_id, token, expires_at)
VALUES ($1, $2, $3, $4)`

func (s *DB) CreateSession(ctx context.Context, sess entity.Session) (err error) {
	ctx, span := s.startSpan(ctx, "CreateSession")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateSession,
		sess.ID, sess.AccountID, sess.Token, sess.ExpiresAt,
	)
	err = apperror.FromPostgres(err)

	return err
}
