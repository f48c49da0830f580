package account

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/goident/internal/account/inbound"
	"github.com/shandysiswandi/goident/internal/account/outbound/db"
	"github.com/shandysiswandi/goident/internal/account/outbound/mq"
	"github.com/shandysiswandi/goident/internal/account/usecase"
	"github.com/shandysiswandi/goident/internal/pkg/clock"
	"github.com/shandysiswandi/goident/internal/pkg/config"
	"github.com/shandysiswandi/goident/internal/pkg/goroutine"
	"github.com/shandysiswandi/goident/internal/pkg/hash"
	"github.com/shandysiswandi/goident/internal/pkg/idempotency"
	"github.com/shandysiswandi/goident/internal/pkg/instrument"
	"github.com/shandysiswandi/goident/internal/pkg/messaging"
	"github.com/shandysiswandi/goident/internal/pkg/router"
	"github.com/shandysiswandi/goident/internal/pkg/uid"
	"github.com/shandysiswandi/goident/internal/pkg/validator"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Goroutine   *goroutine.Manager         `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	UUID        uid.StringID               `validate:"required"`
	OID         uid.StringID               `validate:"required"`
	HMAC        hash.Hash                  `validate:"required"`
	Argon2ID    hash.Hash                  `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        repoDB,
		RepoMessaging: repoMsg,
		Idempotency:   dep.Idempotency,
		Validator:     dep.Validator,
		Config:        dep.Config,
		HMAC:          dep.HMAC,
		Argon2ID:      dep.Argon2ID,
		UID:           dep.UID,
		UUID:          dep.UUID,
		OID:           dep.OID,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
