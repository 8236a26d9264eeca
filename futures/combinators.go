package futures

import "sync"

// Map returns a Future that resolves to fn applied to f's value.  fn runs in
// whatever context resolves f, or immediately if f is already resolved.  If f
// fails, fn is skipped and the failure propagates unchanged.  If fn returns an
// error the returned Future fails with it.
func Map[A, B any](f *Future[A], fn func(A) (B, error)) *Future[B] {
	out := New[B]()
	f.subscribe(func(a A, err error) {
		if err != nil {
			out.tryResolve(*new(B), err)
			return
		}
		out.tryResolve(fn(a))
	})
	return out
}

// MapOn is Map with the transform dispatched on the provided executor instead
// of running in the context that resolves f.  Use it to keep an expensive
// transform off the resolving goroutine.
func MapOn[A, B any](f *Future[A], exec Executor, fn func(A) (B, error)) *Future[B] {
	out := New[B]()
	f.subscribe(func(a A, err error) {
		if err != nil {
			out.tryResolve(*new(B), err)
			return
		}
		if serr := exec.Submit(func() {
			out.tryResolve(fn(a))
		}); serr != nil {
			out.tryResolve(*new(B), serr)
		}
	})
	return out
}

// FlatMap returns a Future that adopts the outcome of the Future produced by
// fn, flattening one level of nesting.  Failure of f, of fn, or of the inner
// Future propagates to the result unchanged.
func FlatMap[A, B any](f *Future[A], fn func(A) (*Future[B], error)) *Future[B] {
	out := New[B]()
	f.subscribe(func(a A, err error) {
		if err != nil {
			out.tryResolve(*new(B), err)
			return
		}
		inner, err := fn(a)
		if err != nil {
			out.tryResolve(*new(B), err)
			return
		}
		inner.subscribe(func(b B, err error) {
			out.tryResolve(b, err)
		})
	})
	return out
}

// Combine returns a Future that resolves once both f and g have resolved,
// applying fn to both values.  If either input fails the result fails with
// whichever failure is observed first.
func Combine[A, B, C any](f *Future[A], g *Future[B], fn func(A, B) (C, error)) *Future[C] {
	out := New[C]()

	var (
		mu      sync.Mutex
		a       A
		b       B
		pending = 2
	)

	f.subscribe(func(v A, err error) {
		if err != nil {
			out.tryResolve(*new(C), err)
			return
		}
		mu.Lock()
		a = v
		pending--
		last := pending == 0
		mu.Unlock()
		if last {
			out.tryResolve(fn(a, b))
		}
	})

	g.subscribe(func(v B, err error) {
		if err != nil {
			out.tryResolve(*new(C), err)
			return
		}
		mu.Lock()
		b = v
		pending--
		last := pending == 0
		mu.Unlock()
		if last {
			out.tryResolve(fn(a, b))
		}
	})

	return out
}

// All returns a Future that resolves once every input has resolved, with the
// values in input order regardless of completion order.  It fails as soon as
// any input fails, with that input's error; the remaining inputs keep running
// on their own.  An empty input resolves immediately with an empty slice.
func All[T any](fs []*Future[T]) *Future[[]T] {
	out := New[[]T]()

	if len(fs) == 0 {
		out.tryResolve([]T{}, nil)
		return out
	}

	var mu sync.Mutex
	vals := make([]T, len(fs))
	pending := len(fs)

	for i, f := range fs {
		i := i
		f.subscribe(func(v T, err error) {
			if err != nil {
				out.tryResolve(nil, err)
				return
			}
			mu.Lock()
			vals[i] = v
			pending--
			last := pending == 0
			mu.Unlock()
			if last {
				out.tryResolve(vals, nil)
			}
		})
	}

	return out
}

// Any returns a Future that adopts the outcome of whichever input resolves
// first, success or failure.  A first-to-complete failure wins even if a later
// input would have succeeded.  An empty input never resolves.
func Any[T any](fs []*Future[T]) *Future[T] {
	out := New[T]()
	for _, f := range fs {
		f.subscribe(func(v T, err error) {
			out.tryResolve(v, err)
		})
	}
	return out
}

// Either applies fn to the value of whichever of f and g resolves first.  If
// the first to resolve failed, the result fails with that error and fn is
// skipped.
func Either[A, B any](f, g *Future[A], fn func(A) (B, error)) *Future[B] {
	first := New[A]()
	adopt := func(v A, err error) {
		first.tryResolve(v, err)
	}
	f.subscribe(adopt)
	g.subscribe(adopt)
	return Map(first, fn)
}
