package pkgroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
)

// DefaultMaxGoroutine is used when NewManager receives a non-positive limit.
const DefaultMaxGoroutine int = 10

// ErrPanic wraps the value recovered from a panicking task.
var ErrPanic = errors.New("task panicked")

// Manager runs named background tasks (listeners, watchers) with a
// concurrency limit.
//
// Errors returned by tasks, and panics converted to errors, are collected and
// returned by Wait.
type Manager struct {
	mu      sync.Mutex
	errs    []error
	running map[string]int
	wg      *sync.WaitGroup
	sema    chan struct{}
}

// NewManager creates a new Manager with the provided maximum concurrency.
func NewManager(maxGoroutine int) *Manager {
	if maxGoroutine < 1 {
		maxGoroutine = DefaultMaxGoroutine
	}

	return &Manager{
		running: map[string]int{},
		wg:      &sync.WaitGroup{},
		sema:    make(chan struct{}, maxGoroutine),
	}
}

// Go runs f in a goroutine once a slot is free. It gives up without running f
// if pCtx is done first.
func (g *Manager) Go(pCtx context.Context, name string, f func(ctx context.Context) error) {
	select {
	case g.sema <- struct{}{}:
	case <-pCtx.Done():
		slog.WarnContext(pCtx, "task canceled before start", "task", name, "because", pCtx.Err())
		return
	}

	g.wg.Add(1)
	g.track(name, 1)
	go func() {
		defer g.wg.Done()
		defer func() {
			<-g.sema
			g.track(name, -1)

			if rvr := recover(); rvr != nil {
				slog.ErrorContext(pCtx, "panic occurred in task", "task", name, "stack", string(debug.Stack()))
				g.collect(fmt.Errorf("%s: %w: %v", name, ErrPanic, rvr))
			}
		}()

		if err := pCtx.Err(); err != nil {
			slog.WarnContext(pCtx, "task canceled", "task", name, "because", err)
			return
		}
		if err := f(pCtx); err != nil {
			g.collect(fmt.Errorf("%s: %w", name, err))
		}
	}()
}

// Running reports how many tasks with the given name are in flight.
func (g *Manager) Running(name string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running[name]
}

// Wait blocks until all scheduled tasks finish and returns the collected errors.
func (g *Manager) Wait() error {
	g.wg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	return errors.Join(g.errs...)
}

func (g *Manager) track(name string, delta int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.running[name] += delta
	if g.running[name] <= 0 {
		delete(g.running, name)
	}
}

func (g *Manager) collect(err error) {
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}
