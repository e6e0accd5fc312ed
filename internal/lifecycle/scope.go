// Package lifecycle scopes timers and subscriptions to the lifetime of a component.
//
// A Scope is opened when the component starts and closed on teardown. Everything started
// through the scope is cancelled by Close, and no callback runs after Close returns.
package lifecycle

import (
	"context"
	"sync"
	"time"
)

// Scope owns cancellable work tied to one component lifetime.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	timers []*time.Timer
}

// NewScope opens a scope that also ends when parent is cancelled.
func NewScope(parent context.Context) *Scope {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Context is cancelled when the scope closes.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Closed reports whether Close has been called.
func (s *Scope) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// After runs fn once, d after the call, unless the scope closes first.
// fn runs while the scope is locked and must not call back into the scope.
// Returns false if the scope is already closed.
func (s *Scope) After(d time.Duration, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	var once sync.Once
	t := time.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || s.ctx.Err() != nil {
			return
		}
		once.Do(fn)
	})
	s.timers = append(s.timers, t)
	return true
}

// Sleep blocks for d. It returns true if the full delay elapsed while the scope stayed
// open, false if the scope closed first.
func (s *Scope) Sleep(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return s.ctx.Err() == nil
	case <-s.ctx.Done():
		return false
	}
}

// Close cancels the scope and stops every pending timer. Safe to call more than once.
func (s *Scope) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}
