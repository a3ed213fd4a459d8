// Package eventbus delivers domain events to registered side-effect handlers.
//
// Publish called inside a transaction opened by postgres.TxManager queues the
// event on that transaction; it is dispatched after commit and dropped on
// rollback. Outside a transaction the event is dispatched immediately.
//
// Dispatch runs the handlers registered for the event kind in registration
// order. Every invocation gets its own transaction, timeout and panic
// recovery, so one failing handler never affects another. Failures are
// logged and not retried.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/groupbuy-backend/internal/domain"
	"github.com/heartmarshall/groupbuy-backend/pkg/ctxutil"
	"github.com/heartmarshall/groupbuy-backend/pkg/txhook"
)

// DefaultHandlerTimeout bounds a handler invocation when Options leaves it unset.
const DefaultHandlerTimeout = 5 * time.Second

// ErrHandlerPanic wraps a panic recovered from a handler.
var ErrHandlerPanic = errors.New("handler panicked")

// HandlerFunc computes one side effect for one event.
type HandlerFunc func(ctx context.Context, ev domain.Event) error

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options tunes dispatch.
type Options struct {
	HandlerTimeout time.Duration
}

type subscription struct {
	name string
	fn   HandlerFunc
}

// Bus routes events to handlers. The zero value is not usable; call New.
type Bus struct {
	log     *slog.Logger
	tx      txRunner
	timeout time.Duration

	mu       sync.RWMutex
	handlers map[domain.EventKind][]subscription
}

// New creates a Bus that runs each handler invocation inside tx.
func New(logger *slog.Logger, tx txRunner, opts Options) *Bus {
	timeout := opts.HandlerTimeout
	if timeout <= 0 {
		timeout = DefaultHandlerTimeout
	}
	return &Bus{
		log:      logger.With("component", "eventbus"),
		tx:       tx,
		timeout:  timeout,
		handlers: make(map[domain.EventKind][]subscription),
	}
}

// Subscribe registers fn under name for each of kinds. Handlers for a kind run
// in the order they were subscribed. Subscribe is meant for startup wiring and
// panics on an empty name, a nil fn or an unknown kind.
func (b *Bus) Subscribe(name string, fn HandlerFunc, kinds ...domain.EventKind) {
	if name == "" || fn == nil {
		panic("eventbus: Subscribe requires a name and a handler")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, k := range kinds {
		if !k.IsValid() {
			panic(fmt.Sprintf("eventbus: handler %q subscribed to unknown event kind %q", name, k))
		}
		b.handlers[k] = append(b.handlers[k], subscription{name: name, fn: fn})
	}
}

// Handlers returns the names of the handlers registered for kind, in dispatch order.
func (b *Bus) Handlers(kind domain.EventKind) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	subs := b.handlers[kind]
	names := make([]string, len(subs))
	for i, s := range subs {
		names[i] = s.name
	}
	return names
}

// Publish hands ev to the bus. It never fails: side-effect errors are the
// bus's concern, not the publisher's.
func (b *Bus) Publish(ctx context.Context, ev domain.Event) {
	if txhook.Register(ctx, func(hctx context.Context) { b.Dispatch(hctx, ev) }) {
		b.log.DebugContext(ctx, "event queued until commit",
			slog.String("event_id", ev.ID.String()),
			slog.String("event_kind", ev.Kind().String()),
		)
		return
	}
	b.Dispatch(ctx, ev)
}

// HandlerResult is the outcome of one handler invocation.
type HandlerResult struct {
	Handler  string
	Err      error
	Duration time.Duration
}

// DispatchReport lists the handler outcomes for one event, in dispatch order.
type DispatchReport struct {
	Event   domain.Event
	Results []HandlerResult
}

// Err joins the failures of the dispatch, nil if every handler succeeded.
func (r DispatchReport) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.Handler, res.Err))
		}
	}
	return errors.Join(errs...)
}

// Dispatch delivers ev to every handler registered for its kind and reports
// the outcome. Handler failures are logged here and never propagate.
func (b *Bus) Dispatch(ctx context.Context, ev domain.Event) DispatchReport {
	b.mu.RLock()
	subs := b.handlers[ev.Kind()]
	b.mu.RUnlock()

	report := DispatchReport{Event: ev, Results: make([]HandlerResult, 0, len(subs))}
	if len(subs) == 0 {
		b.log.DebugContext(ctx, "no handlers for event",
			slog.String("event_id", ev.ID.String()),
			slog.String("event_kind", ev.Kind().String()),
		)
		return report
	}

	for _, s := range subs {
		start := time.Now()
		err := b.invoke(ctx, s, ev)
		res := HandlerResult{Handler: s.name, Err: err, Duration: time.Since(start)}
		report.Results = append(report.Results, res)

		if err != nil {
			b.log.Log(ctx, failureLevel(err), "event handler failed",
				slog.String("event_id", ev.ID.String()),
				slog.String("event_kind", ev.Kind().String()),
				slog.String("handler", s.name),
				slog.String("error", err.Error()),
			)
			continue
		}
		b.log.DebugContext(ctx, "event handled",
			slog.String("event_id", ev.ID.String()),
			slog.String("event_kind", ev.Kind().String()),
			slog.String("handler", s.name),
			slog.Duration("duration", res.Duration),
		)
	}

	return report
}

// failureLevel logs missing preconditions (a referenced row is gone) at WARN
// and everything else at ERROR.
func failureLevel(err error) slog.Level {
	if errors.Is(err, domain.ErrNotFound) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// invoke runs one handler in its own transaction and waits at most b.timeout.
// A handler that outlives the timeout is abandoned; its context is cancelled
// so its database work fails and rolls back.
func (b *Bus) invoke(ctx context.Context, s subscription, ev domain.Event) error {
	hctx, cancel := context.WithTimeout(ctxutil.WithEventID(ctx, ev.ID), b.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- b.run(hctx, s, ev)
	}()

	select {
	case err := <-done:
		return err
	case <-hctx.Done():
		select {
		case err := <-done:
			return err
		default:
		}
		return fmt.Errorf("handler %s: %w", s.name, hctx.Err())
	}
}

func (b *Bus) run(ctx context.Context, s subscription, ev domain.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()

	return b.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.fn(txCtx, ev)
	})
}
