// Package futures provides an implementation of a Future which represents an asynchronous computation.
// A Future can be created and then passed around and read by multiple consumers.  This is the key difference
// between a Future and using a channel for an asynchronous computation as a channel value can only be read once.
//
// Futures compose: Map, FlatMap, Combine and friends build new Futures from
// existing ones by registering continuations that fire when the upstream
// resolves.  Continuations registered before resolution fire in registration
// order, exactly once each; continuations registered after resolution fire
// immediately in the calling goroutine.
package futures

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrAlreadyResolved is reported when Complete, Fail or Cancel is called on
	// a Future that has already been resolved.  The first outcome is kept.
	ErrAlreadyResolved = errors.New("future already resolved")

	// ErrCanceled is the error a Future fails with when Cancel is called.
	ErrCanceled = errors.New("future canceled")
)

// FutureFunc is the function signature required to create a Future via FromFunc
type FutureFunc[T any] func() (T, error)

// Executor runs a unit of work concurrently.  No ordering is guaranteed
// between unrelated submissions.  Implementations live in the executors
// package; tests can inject a synchronous executor for determinism.
type Executor interface {
	Submit(task func()) error
}

// Future is a structure that represents an asynchronous computation.
// A Future should be created by calling New() or using the FromFunc convenience function.
// Once a future has been created it can be resolved exactly once.  The transition from
// pending to resolved is one-way: a resolved Future never changes its outcome.
//
// Complete and Fail resolve a future manually and report ErrAlreadyResolved if
// it was already resolved, so races in manual completion surface instead of
// silently losing a result.  Combinators resolve their output futures through
// an internal first-wins path where a lost race is expected (see
// CompleteOnTimeout) and absorbed.
//
// Get is used to extract the value and an error from the Future.  If the future has not been
// resolved calling Get will block until the future resolves or until the context is canceled.
// Get can be called by multiple goroutines simultaneously and they will all receive the same value.
type Future[T any] struct {
	mu        sync.Mutex
	resolved  bool
	value     T
	err       error
	callbacks []func(T, error)

	// closed exactly once, when the future resolves
	done chan struct{}
}

// New creates a new unresolved Future that will eventually contain a value of type T.
// This future must be resolved manually by calling Complete, Fail, or Cancel.
func New[T any]() *Future[T] {
	return &Future[T]{
		done: make(chan struct{}),
	}
}

// FromFunc creates a new unresolved Future that will eventually contain the return value
// of the provided function.  The function is submitted to the provided executor when this
// function is invoked; if the executor rejects the submission the returned Future fails
// with the submission error.
func FromFunc[T any](exec Executor, do FutureFunc[T]) *Future[T] {
	f := New[T]()

	if err := exec.Submit(func() {
		t, err := do()
		f.tryResolve(t, err)
	}); err != nil {
		f.tryResolve(*new(T), err)
	}

	return f
}

// Completed returns a Future that is already resolved with the provided value.
func Completed[T any](value T) *Future[T] {
	f := New[T]()
	f.tryResolve(value, nil)
	return f
}

// Failed returns a Future that is already resolved with the provided error.
func Failed[T any](err error) *Future[T] {
	f := New[T]()
	f.tryResolve(*new(T), err)
	return f
}

// Complete resolves this Future with the provided value.  If the future has already
// been resolved the prior outcome is kept and ErrAlreadyResolved is returned.
func (f *Future[T]) Complete(value T) error {
	if !f.tryResolve(value, nil) {
		return ErrAlreadyResolved
	}
	return nil
}

// Fail resolves this Future with the provided error.  If the future has already
// been resolved the prior outcome is kept and ErrAlreadyResolved is returned.
func (f *Future[T]) Fail(err error) error {
	if !f.tryResolve(*new(T), err) {
		return ErrAlreadyResolved
	}
	return nil
}

// Cancel resolves this Future with the ErrCanceled error.  If the future has already
// been resolved the prior outcome is kept and ErrAlreadyResolved is returned.
func (f *Future[T]) Cancel() error {
	return f.Fail(ErrCanceled)
}

// tryResolve performs the one-way pending to resolved transition.  The first
// caller wins and reports true; all later callers report false and the stored
// outcome is untouched.  Registered callbacks run after the lock is released,
// in registration order, with the winning outcome.
func (f *Future[T]) tryResolve(value T, err error) bool {
	f.mu.Lock()
	if f.resolved {
		f.mu.Unlock()
		return false
	}
	f.resolved = true
	f.value = value
	f.err = err
	cbs := f.callbacks
	f.callbacks = nil
	close(f.done)
	f.mu.Unlock()

	for _, cb := range cbs {
		cb(value, err)
	}
	return true
}

// subscribe registers cb to run exactly once when the future resolves.  If the
// future is already resolved cb runs immediately in the calling goroutine.
func (f *Future[T]) subscribe(cb func(T, error)) {
	f.mu.Lock()
	if f.resolved {
		value, err := f.value, f.err
		f.mu.Unlock()
		cb(value, err)
		return
	}
	f.callbacks = append(f.callbacks, cb)
	f.mu.Unlock()
}

// Get retrieves the value of this Future.  If the future is not yet resolved this call
// will block until the future resolves or until the provided context is canceled.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}

// Done returns a channel that is closed when the future resolves, for use in
// select statements.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// IsResolved reports whether the future has resolved without blocking.
func (f *Future[T]) IsResolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
