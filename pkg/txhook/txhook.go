// Package txhook attaches a post-commit callback queue to a context.
//
// A transaction manager calls Begin when it opens a transaction, Run after a
// successful commit and Discard after a rollback. Code running inside the
// transaction calls Register to defer work until the commit point.
package txhook

import (
	"context"
	"sync"
)

// Hook is a callback executed after the owning transaction commits.
type Hook func(ctx context.Context)

// Hooks is the queue of callbacks for one unit of work.
type Hooks struct {
	mu     sync.Mutex
	hooks  []Hook
	closed bool
}

type ctxKey struct{}

// Begin attaches a new, empty hook queue to ctx.
func Begin(ctx context.Context) (context.Context, *Hooks) {
	h := &Hooks{}
	return context.WithValue(ctx, ctxKey{}, h), h
}

// FromCtx returns the hook queue attached to ctx, if any.
func FromCtx(ctx context.Context) (*Hooks, bool) {
	h, ok := ctx.Value(ctxKey{}).(*Hooks)
	return h, ok && h != nil
}

// Register queues fn on the unit of work carried by ctx.
// It returns false when ctx has no open unit of work (none attached, or it
// has already been committed or rolled back); the caller then decides what
// to do with fn, typically running it immediately.
func Register(ctx context.Context, fn Hook) bool {
	h, ok := FromCtx(ctx)
	if !ok || fn == nil {
		return false
	}
	return h.add(fn)
}

func (h *Hooks) add(fn Hook) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.hooks = append(h.hooks, fn)
	return true
}

// Len returns the number of queued hooks.
func (h *Hooks) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.hooks)
}

// Run drains the queue in registration order. Subsequent calls are no-ops.
func (h *Hooks) Run(ctx context.Context) {
	for _, fn := range h.drain() {
		fn(ctx)
	}
}

// Discard drops every queued hook without running it.
func (h *Hooks) Discard() {
	h.drain()
}

func (h *Hooks) drain() []Hook {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	hooks := h.hooks
	h.hooks = nil
	return hooks
}
