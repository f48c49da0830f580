package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shandysiswandi/goident/internal/account/entity"
	"github.com/shandysiswandi/goident/internal/pkg/clock"
	"github.com/shandysiswandi/goident/internal/pkg/config"
	"github.com/shandysiswandi/goident/internal/pkg/goroutine"
	"github.com/shandysiswandi/goident/internal/pkg/idempotency"
	"github.com/shandysiswandi/goident/internal/pkg/instrument"
	"github.com/shandysiswandi/goident/internal/pkg/validator"
	"github.com/shandysiswandi/goident/internal/pkg/valueobject"
)

const testConfigYAML = `
modules:
  account:
    session_ttl_hours: 24
    registration_guard_ttl_minutes: 10
`

var testNow = time.Date(2025, time.February, 28, 12, 0, 0, 0, time.UTC)

type fakeRepoDB struct {
	mu sync.Mutex

	authInfo   *entity.AccountAuthInfo
	authErr    error
	account    *entity.Account
	accountErr error

	createAccountErr error
	createSessionErr error

	createdAccounts []entity.NewAccount
	createdHashes   []string
	createdSessions []entity.Session
}

func (f *fakeRepoDB) GetAccountAuthInfo(_ context.Context, _ string) (*entity.AccountAuthInfo, error) {
	return f.authInfo, f.authErr
}

func (f *fakeRepoDB) GetAccountByID(_ context.Context, _ int64) (*entity.Account, error) {
	return f.account, f.accountErr
}

func (f *fakeRepoDB) CreateAccount(_ context.Context, acc entity.NewAccount, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createAccountErr != nil {
		return f.createAccountErr
	}

	f.createdAccounts = append(f.createdAccounts, acc)
	f.createdHashes = append(f.createdHashes, passwordHash)

	return nil
}

func (f *fakeRepoDB) CreateSession(_ context.Context, sess entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createSessionErr != nil {
		return f.createSessionErr
	}

	f.createdSessions = append(f.createdSessions, sess)

	return nil
}

type fakeRepoMessaging struct {
	mu     sync.Mutex
	err    error
	events []AccountRegistrationEvent
}

func (f *fakeRepoMessaging) PublishAccountRegistration(_ context.Context, msg AccountRegistrationEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	f.events = append(f.events, msg)

	return nil
}

func (f *fakeRepoMessaging) published() []AccountRegistrationEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]AccountRegistrationEvent(nil), f.events...)
}

type fakeIdempotency struct {
	keys     []string
	fixedErr error
}

func (f *fakeIdempotency) Acquire(_ context.Context, _ string, _ time.Duration) (idempotency.State, error) {
	return idempotency.StateNone, nil
}

func (f *fakeIdempotency) MarkCompleted(_ context.Context, _ string, _ time.Duration) error {
	return nil
}

func (f *fakeIdempotency) MarkFailed(_ context.Context, _ string, _ time.Duration) error {
	return nil
}

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	f.keys = append(f.keys, key)
	if f.fixedErr != nil {
		return f.fixedErr
	}

	return fn(ctx)
}

type fakeHash struct {
	prefix  string
	hashErr error
	verify  bool
}

func (f *fakeHash) Hash(plaintext string) ([]byte, error) {
	if f.hashErr != nil {
		return nil, f.hashErr
	}

	return []byte(f.prefix + plaintext), nil
}

func (f *fakeHash) Verify(_, _ string) bool {
	return f.verify
}

type fakeNumberID struct {
	next int64
}

func (f *fakeNumberID) Generate() int64 {
	f.next++

	return f.next
}

type fakeStringID struct {
	value string
}

func (f *fakeStringID) Generate() string {
	return f.value
}

type testEnv struct {
	uc        *Usecase
	repoDB    *fakeRepoDB
	repoMsg   *fakeRepoMessaging
	idemp     *fakeIdempotency
	argon2id  *fakeHash
	hmac      *fakeHash
	goroutine *goroutine.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}
	t.Cleanup(func() { _ = cfg.Close() })

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	env := &testEnv{
		repoDB:    &fakeRepoDB{},
		repoMsg:   &fakeRepoMessaging{},
		idemp:     &fakeIdempotency{},
		argon2id:  &fakeHash{prefix: "argon2id:", verify: true},
		hmac:      &fakeHash{prefix: "hmac:"},
		goroutine: goroutine.NewManager(4),
	}

	env.uc = New(Dependency{
		RepoDB:        env.repoDB,
		RepoMessaging: env.repoMsg,
		Idempotency:   env.idemp,
		Validator:     v10,
		Config:        cfg,
		HMAC:          env.hmac,
		Argon2ID:      env.argon2id,
		UID:           &fakeNumberID{},
		UUID:          &fakeStringID{value: "public-id-1"},
		OID:           &fakeStringID{value: "opaque-session-1"},
		Clock:         clock.NewFake(testNow),
		Instrument:    instrument.NewNoop(),
		Goroutine:     env.goroutine,
	})

	return env
}

func mustUserID(t *testing.T, v int64) valueobject.UserID {
	t.Helper()

	id, err := valueobject.NewUserID(v)
	if err != nil {
		t.Fatalf("failed to build user id: %v", err)
	}

	return id
}
