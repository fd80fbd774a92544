package hostid

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// defaultLoopBuffer is the number of completions a [Loop] holds before
// workers block waiting for the caller to drain it.
const defaultLoopBuffer = 64

// Completion receives the result of an asynchronous lookup. err is non-nil
// only when the worker step faulted, in which case outcome is [Absent].
// An absent identifier is not an error.
type Completion func(outcome Outcome, err error)

// Dispatcher runs completions on the caller's execution context.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatcherFunc adapts an ordinary function to [Dispatcher].
type DispatcherFunc func(fn func())

// Dispatch calls f(fn).
func (f DispatcherFunc) Dispatch(fn func()) {
	f(fn)
}

// Immediate runs completions on the worker goroutine as soon as the worker
// step has finished.
var Immediate Dispatcher = DispatcherFunc(func(fn func()) { fn() })

// Loop is a caller-owned execution context. Workers post completions to it
// and the goroutine that calls [Loop.Run] or [Loop.RunOnce] executes them.
type Loop struct {
	tasks chan func()
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{tasks: make(chan func(), defaultLoopBuffer)}
}

// Dispatch queues fn. It blocks while the loop's buffer is full.
func (l *Loop) Dispatch(fn func()) {
	l.tasks <- fn
}

// RunOnce executes one queued completion, waiting for it if necessary.
func (l *Loop) RunOnce(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case fn := <-l.tasks:
		fn()

		return nil
	}
}

// Run executes queued completions until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := l.RunOnce(ctx); err != nil {
			return err
		}
	}
}

// AsyncRunner performs lookups on worker goroutines and delivers each result
// exactly once through a [Dispatcher].
type AsyncRunner struct {
	resolver   PlatformResolver
	dispatcher Dispatcher
	logger     *slog.Logger
	workers    errgroup.Group
}

// NewAsyncRunner creates a runner. A nil dispatcher means [Immediate].
func NewAsyncRunner(resolver PlatformResolver, dispatcher Dispatcher, logger *slog.Logger) *AsyncRunner {
	if dispatcher == nil {
		dispatcher = Immediate
	}

	return &AsyncRunner{
		resolver:   resolver,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Run schedules one lookup and returns without waiting for it. It returns
// [ErrInvalidArgument] without scheduling anything when done is nil.
// Scheduled lookups cannot be cancelled; done is always called once.
func (r *AsyncRunner) Run(done Completion) error {
	if done == nil {
		return ErrInvalidArgument
	}

	c := &completion{done: done}

	r.workers.Go(func() error {
		outcome, err := r.resolve()
		r.dispatcher.Dispatch(func() {
			c.deliver(outcome, err)
		})

		return nil
	})

	return nil
}

// Wait blocks until every scheduled lookup has been handed to the
// dispatcher. With a [Loop] dispatcher the completions may still be queued.
func (r *AsyncRunner) Wait() {
	_ = r.workers.Wait()
}

// resolve runs the worker step, converting a panic into a [FaultError].
func (r *AsyncRunner) resolve() (outcome Outcome, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			logWarn(r.logger, "machine ID lookup faulted", "panic", recovered)

			outcome, err = Absent, &FaultError{Recovered: recovered}
		}
	}()

	return r.resolver.Resolve(), nil
}

// completion guards a callback so it fires at most once.
type completion struct {
	done      Completion
	delivered atomic.Bool
}

func (c *completion) deliver(outcome Outcome, err error) {
	if !c.delivered.CompareAndSwap(false, true) {
		return
	}

	c.done(outcome, err)
}
