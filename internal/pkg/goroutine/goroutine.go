// Package goroutine runs fire-and-forget work, like event publishes after a
// write has committed, under a bounded concurrency limit with panic recovery.
package goroutine

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/shandysiswandi/goident/internal/pkg/stacktrace"
)

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine int = 100

// Manager runs functions in goroutines with a concurrency cap. Errors from
// tasks are collected and reported by Wait during shutdown.
type Manager struct {
	mu      sync.Mutex
	errs    []error
	wg      sync.WaitGroup
	sema    chan struct{}
	stateMu sync.RWMutex
	closed  bool
}

// NewManager creates a Manager that runs at most maxGoroutine tasks at once.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = runtime.NumCPU() * DefaultMaxGoroutine
	}

	return &Manager{
		sema: make(chan struct{}, maxGoroutine),
	}
}

// Go schedules f when capacity is available; at the limit the task is dropped
// with a warning rather than queued. A task whose parent context is already
// done is skipped, so callers that must outlive the request detach with
// context.WithoutCancel first.
func (m *Manager) Go(pCtx context.Context, f func(ctx context.Context) error) {
	if m == nil {
		return
	}

	m.stateMu.RLock()
	if m.closed {
		m.stateMu.RUnlock()
		slog.WarnContext(pCtx, "goroutine manager is closed, skipping new goroutine")
		return
	}

	select {
	case m.sema <- struct{}{}:
		// The read lock is released inside the task so Wait cannot flip
		// closed between the check above and the goroutine starting.
		m.wg.Go(func() {
			m.stateMu.RUnlock()
			defer func() {
				<-m.sema

				if rvr := recover(); rvr != nil {
					stack := debug.Stack()
					paths := stacktrace.InternalPaths(stack)
					if len(paths) == 0 {
						slog.ErrorContext(pCtx, "panic occurred in goroutine", "stack", string(stack))
					} else {
						slog.ErrorContext(pCtx, "panic occurred in goroutine", "stack", paths)
					}
				}
			}()

			select {
			case <-pCtx.Done():
				slog.WarnContext(pCtx, "goroutine canceled", "because", pCtx.Err())
			default:
				if err := f(pCtx); err != nil {
					m.mu.Lock()
					m.errs = append(m.errs, err)
					m.mu.Unlock()
				}
			}
		})

	default:
		m.stateMu.RUnlock()
		slog.WarnContext(pCtx, "maximum goroutine limit reached, failed to start new goroutine")
	}
}

// Wait closes the manager to new work, blocks until running tasks finish,
// and returns their collected errors joined.
func (m *Manager) Wait() error {
	if m == nil {
		return nil
	}

	m.stateMu.Lock()
	if !m.closed {
		m.closed = true
	}
	m.stateMu.Unlock()

	m.wg.Wait()

	return errors.Join(m.errs...)
}
