package db

import (
	"context"
	"time"

	"github.com/shandysiswandi/goident/internal/account/entity"
	"github.com/shandysiswandi/goident/internal/pkg/apperror"
	"github.com/shandysiswandi/goident/internal/pkg/valueobject"
)

const queryGetAccountAuthInfo = `
SELECT id, public_id, password, randomart
FROM accounts
WHERE user_name = $1`

func (s *DB) GetAccountAuthInfo(ctx context.Context, userName string) (_ *entity.AccountAuthInfo, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountAuthInfo")
	defer func() { s.endSpan(span, err) }()

	var (
		id        int64
		publicID  string
		password  string
		randomart string
	)
	if err = s.conn.QueryRow(ctx, queryGetAccountAuthInfo, userName).
		Scan(&id, &publicID, &password, &randomart); err != nil {
		err = apperror.FromPostgres(err)
		return nil, err
	}

	accountID, err := valueobject.NewUserID(id)
	if err != nil {
		return nil, err
	}

	return &entity.AccountAuthInfo{
		ID:        accountID,
		PublicID:  publicID,
		Password:  password,
		Randomart: randomart,
	}, nil
}

const queryGetAccountByID = `
SELECT id, public_id, user_name, first_name, last_name, email, phone, birth_date, randomart, created_at, updated_at
FROM accounts
WHERE id = $1`

func (s *DB) GetAccountByID(ctx context.Context, id int64) (_ *entity.Account, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountByID")
	defer func() { s.endSpan(span, err) }()

	var (
		rawID     int64
		publicID  string
		userName  string
		firstName *string
		lastName  *string
		email     *string
		phone     *string
		birthDate *time.Time
		randomart string
		createdAt time.Time
		updatedAt time.Time
	)
	if err = s.conn.QueryRow(ctx, queryGetAccountByID, id).Scan(
		&rawID, &publicID, &userName, &firstName, &lastName,
		&email, &phone, &birthDate, &randomart, &createdAt, &updatedAt,
	); err != nil {
		err = apperror.FromPostgres(err)
		return nil, err
	}

	accountID, err := valueobject.NewUserID(rawID)
	if err != nil {
		return nil, err
	}

	acc := &entity.Account{
		ID:        accountID,
		PublicID:  publicID,
		UserName:  userName,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		Randomart: randomart,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if birthDate != nil {
		bd := valueobject.BirthDateFrom(*birthDate)
		acc.BirthDate = &bd
	}

	return acc, nil
}
