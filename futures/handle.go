package futures

import "time"

// Recover returns a Future that resolves with fn applied to f's error when f
// fails, and passes a success through unchanged.  fn is never invoked on the
// success path.  If fn returns an error the returned Future fails with it.
func (f *Future[T]) Recover(fn func(error) (T, error)) *Future[T] {
	out := New[T]()
	f.subscribe(func(v T, err error) {
		if err == nil {
			out.tryResolve(v, nil)
			return
		}
		out.tryResolve(fn(err))
	})
	return out
}

// Handle returns a Future resolved from fn, which is invoked exactly once with
// f's outcome: (value, nil) on success, (zero, err) on failure.  Handle
// converts failure into success unless fn itself returns an error.
func Handle[A, B any](f *Future[A], fn func(A, error) (B, error)) *Future[B] {
	out := New[B]()
	f.subscribe(func(a A, err error) {
		out.tryResolve(fn(a, err))
	})
	return out
}

// WhenComplete registers a side-effecting observer invoked exactly once with
// f's outcome.  The returned Future resolves with the same value or error as
// f.  A non-nil error returned by the observer fails only the returned Future;
// f itself is never affected.
func (f *Future[T]) WhenComplete(observer func(T, error) error) *Future[T] {
	out := New[T]()
	f.subscribe(func(v T, err error) {
		if oerr := observer(v, err); oerr != nil {
			out.tryResolve(*new(T), oerr)
			return
		}
		out.tryResolve(v, err)
	})
	return out
}

// CompleteOnTimeout returns a Future that adopts f's outcome if f resolves
// within d, and otherwise resolves with fallback when d expires.  Whichever of
// the two writes first wins; the loser's write is silently absorbed.  An
// outcome of f arriving after the fallback has been delivered is discarded.
// The timer is stopped when f wins the race.
func (f *Future[T]) CompleteOnTimeout(fallback T, d time.Duration) *Future[T] {
	out := New[T]()

	timer := time.AfterFunc(d, func() {
		out.tryResolve(fallback, nil)
	})

	f.subscribe(func(v T, err error) {
		timer.Stop()
		out.tryResolve(v, err)
	})

	return out
}
