package usecase

import (
	"context"

	"github.com/shandysiswandi/goident/internal/account/entity"
	"github.com/shandysiswandi/goident/internal/pkg/clock"
	"github.com/shandysiswandi/goident/internal/pkg/config"
	"github.com/shandysiswandi/goident/internal/pkg/goroutine"
	"github.com/shandysiswandi/goident/internal/pkg/hash"
	"github.com/shandysiswandi/goident/internal/pkg/idempotency"
	"github.com/shandysiswandi/goident/internal/pkg/instrument"
	"github.com/shandysiswandi/goident/internal/pkg/uid"
	"github.com/shandysiswandi/goident/internal/pkg/validator"
	"github.com/shandysiswandi/goident/internal/pkg/valueobject"
	"go.opentelemetry.io/otel/trace"
)

type AccountRegistrationEvent struct {
	AccountID int64
	PublicID  string
	UserName  string
	Email     string
}

type repoMessaging interface {
	PublishAccountRegistration(ctx context.Context, msg AccountRegistrationEvent) error
}

type repoDB interface {
	GetAccountAuthInfo(ctx context.Context, userName string) (*entity.AccountAuthInfo, error)
	GetAccountByID(ctx context.Context, id int64) (*entity.Account, error)

	CreateAccount(ctx context.Context, acc entity.NewAccount, passwordHash string) error
	CreateSession(ctx context.Context, sess entity.Session) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	idemp         idempotency.Idempotency
	validator     validator.Validator
	cfg           config.Config
	hmac          hash.Hash
	argon2id      hash.Hash
	uid           uid.NumberID
	uuid          uid.StringID
	oid           uid.StringID
	clock         clock.Clocker
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Config        config.Config
	HMAC          hash.Hash
	Argon2ID      hash.Hash
	UID           uid.NumberID
	UUID          uid.StringID
	OID           uid.StringID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		cfg:           dep.Config,
		hmac:          dep.HMAC,
		argon2id:      dep.Argon2ID,
		uid:           dep.UID,
		uuid:          dep.UUID,
		oid:           dep.OID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("account.usecase").Start(ctx, name)
}

// normalizeUserName is shared by registration and authentication so lookups
// always see the same canonical form that was stored.
func normalizeUserName(raw string) (*valueobject.NormalizedText, error) {
	return valueobject.Normalize(raw, valueobject.TextRule{
		Label:    "user_name",
		Required: true,
		MinLen:   3,
		MaxLen:   32,
	})
}
