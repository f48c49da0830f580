// Package idempotency guards an operation so concurrent or repeated attempts
// with the same key run it at most once per state window.
//
// The tracker stores a small state machine in redis: a key is absent, in
// progress, completed, or failed. Exec acquires the key, runs the function,
// and records the outcome; later attempts inside the TTL surface a sentinel
// error instead of running again. Registration uses this keyed by the
// normalized user name.
package idempotency

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Sentinels reported by Exec when the key is already claimed.
var (
	ErrAlreadyInProgress = errors.New("operation already in progress")
	ErrAlreadyCompleted  = errors.New("operation already completed")
	ErrAlreadyFailed     = errors.New("operation already failed")
	ErrInvalidState      = errors.New("invalid state")
)

// State is the lifecycle stage recorded for a key.
type State string

const (
	StateNone       State = "none"        // key free, operation can proceed
	StateInProgress State = "in_progress" // another attempt holds the key
	StateCompleted  State = "completed"   // a previous attempt succeeded
	StateFailed     State = "failed"      // a previous attempt failed
	StateError      State = "error"       // the tracker itself failed
)

func (s State) String() string {
	return string(s)
}

// Idempotency tracks operation state by key.
type Idempotency interface {
	Acquire(ctx context.Context, key string, lockDuration time.Duration) (State, error)
	MarkCompleted(ctx context.Context, key string, ttl time.Duration) error
	MarkFailed(ctx context.Context, key string, ttl time.Duration) error
	Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error
}

// StateTracker implements Idempotency on a redis client.
type StateTracker struct {
	client *redis.Client
	prefix string
}

// New returns a tracker that namespaces its keys under "idempotency:".
func New(client *redis.Client) *StateTracker {
	return &StateTracker{
		client: client,
		prefix: "idempotency:",
	}
}

const (
	defaultLockDuration = time.Minute
	defaultStateTTL     = time.Minute
)

// Option adjusts Exec's lock and state windows.
type Option func(*execOptions)

type execOptions struct {
	lockDuration time.Duration
	stateTTL     time.Duration
}

// WithLockDuration bounds how long the in-progress claim survives a crash.
func WithLockDuration(lockDuration time.Duration) Option {
	return func(o *execOptions) {
		o.lockDuration = lockDuration
	}
}

// WithStateTTL bounds how long a completed or failed outcome blocks retries.
func WithStateTTL(stateTTL time.Duration) Option {
	return func(o *execOptions) {
		o.stateTTL = stateTTL
	}
}

// Acquire claims key for a new attempt. StateNone means the claim succeeded
// and the caller owns the operation; any other state reports what is already
// recorded for the key.
func (s *StateTracker) Acquire(ctx context.Context, key string, lockDuration time.Duration) (State, error) {
	fk := s.prefix + key

	acquired, err := s.client.SetNX(ctx, fk, StateInProgress.String(), lockDuration).Result()
	if err != nil {
		return StateError, err
	}
	if acquired {
		return StateNone, nil
	}

	value, err := s.client.Get(ctx, fk).Result()
	if errors.Is(err, redis.Nil) {
		// The key expired between SetNX and Get; claim it once more.
		acquired, err = s.client.SetNX(ctx, fk, StateInProgress.String(), lockDuration).Result()
		if err != nil {
			return StateError, err
		}
		if acquired {
			return StateNone, nil
		}
		return StateError, ErrInvalidState
	}
	if err != nil {
		return StateError, err
	}

	state, ok := stateFromValue(value)
	if !ok {
		return StateError, ErrInvalidState
	}
	return state, nil
}

func stateFromValue(value string) (State, bool) {
	switch value {
	case StateInProgress.String():
		return StateInProgress, true
	case StateCompleted.String():
		return StateCompleted, true
	case StateFailed.String():
		return StateFailed, true
	default:
		return StateError, false
	}
}

// MarkCompleted records a successful outcome for key.
func (s *StateTracker) MarkCompleted(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, StateCompleted.String(), ttl).Err()
}

// MarkFailed records a failed outcome for key.
func (s *StateTracker) MarkFailed(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, StateFailed.String(), ttl).Err()
}

// Exec runs fn under the key's claim. When the key already carries a state,
// fn is not run and the matching sentinel is returned; otherwise fn's own
// error (or nil) passes through unchanged after the outcome is recorded.
func (s *StateTracker) Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error {
	execOpt := &execOptions{
		lockDuration: defaultLockDuration,
		stateTTL:     defaultStateTTL,
	}
	for _, opt := range opts {
		opt(execOpt)
	}
	if execOpt.lockDuration <= 0 {
		execOpt.lockDuration = defaultLockDuration
	}
	if execOpt.stateTTL <= 0 {
		execOpt.stateTTL = defaultStateTTL
	}

	state, err := s.Acquire(ctx, key, execOpt.lockDuration)
	if err != nil {
		return err
	}

	switch state {
	case StateInProgress:
		return ErrAlreadyInProgress
	case StateCompleted:
		return ErrAlreadyCompleted
	case StateFailed:
		return ErrAlreadyFailed
	}

	if err := fn(ctx); err != nil {
		if markErr := s.MarkFailed(ctx, key, execOpt.stateTTL); markErr != nil {
			return markErr
		}
		return err
	}

	return s.MarkCompleted(ctx, key, execOpt.stateTTL)
}
