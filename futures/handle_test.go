package futures

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	require := require.New(t)

	recovered := Failed[string](ErrTest).Recover(func(err error) (string, error) {
		return "recovered", nil
	})

	v, err := recovered.Get(context.Background())
	require.NoError(err)
	require.Equal("recovered", v)
}

func TestRecoverSkipsFnOnSuccess(t *testing.T) {
	require := require.New(t)

	var calls int32
	passed := Completed("value").Recover(func(err error) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "recovered", nil
	})

	v, err := passed.Get(context.Background())
	require.NoError(err)
	require.Equal("value", v)
	require.Equal(int32(0), atomic.LoadInt32(&calls))
}

func TestRecoverFnError(t *testing.T) {
	require := require.New(t)

	errOther := errors.New("other")
	recovered := Failed[string](ErrTest).Recover(func(err error) (string, error) {
		return "", errOther
	})

	_, err := recovered.Get(context.Background())
	require.ErrorIs(err, errOther)
}

func TestHandle(t *testing.T) {
	require := require.New(t)

	handled := Handle(Failed[string](ErrTest), func(v string, err error) (string, error) {
		if err != nil {
			return "handled:" + err.Error(), nil
		}
		return v, nil
	})

	v, err := handled.Get(context.Background())
	require.NoError(err)
	require.Equal("handled:test error", v)

	handled = Handle(Completed("value"), func(v string, err error) (string, error) {
		require.NoError(err)
		return v, nil
	})

	v, err = handled.Get(context.Background())
	require.NoError(err)
	require.Equal("value", v)
}

func TestHandleFnError(t *testing.T) {
	require := require.New(t)

	handled := Handle(Completed(1), func(int, error) (int, error) {
		return 0, ErrTest
	})

	_, err := handled.Get(context.Background())
	require.ErrorIs(err, ErrTest)
}

func TestWhenComplete(t *testing.T) {
	require := require.New(t)

	var calls int32
	side := Completed("value").WhenComplete(func(v string, err error) error {
		atomic.AddInt32(&calls, 1)
		require.NoError(err)
		require.Equal("value", v)
		return nil
	})

	v, err := side.Get(context.Background())
	require.NoError(err)
	require.Equal("value", v)
	require.Equal(int32(1), atomic.LoadInt32(&calls))
}

func TestWhenCompleteFailurePassThrough(t *testing.T) {
	require := require.New(t)

	var observed error
	side := Failed[string](ErrTest).WhenComplete(func(v string, err error) error {
		observed = err
		return nil
	})

	_, err := side.Get(context.Background())
	require.ErrorIs(err, ErrTest)
	require.ErrorIs(observed, ErrTest)
}

func TestWhenCompleteObserverError(t *testing.T) {
	require := require.New(t)

	errObserver := errors.New("observer failed")

	f := Completed("value")
	side := f.WhenComplete(func(string, error) error {
		return errObserver
	})

	// the observer error surfaces only on the returned future
	_, err := side.Get(context.Background())
	require.ErrorIs(err, errObserver)

	v, err := f.Get(context.Background())
	require.NoError(err)
	require.Equal("value", v)
}

func TestCompleteOnTimeoutFallback(t *testing.T) {
	require := require.New(t)

	f := New[string]()
	out := f.CompleteOnTimeout("default", 50*time.Millisecond)

	start := time.Now()
	v, err := out.Get(context.Background())
	require.NoError(err)
	require.Equal("default", v)
	require.Less(time.Since(start), 500*time.Millisecond)

	// the source resolving after the fallback is absorbed, not an error
	require.NoError(f.Complete("late"))

	v, err = out.Get(context.Background())
	require.NoError(err)
	require.Equal("default", v)
}

func TestCompleteOnTimeoutSourceWins(t *testing.T) {
	require := require.New(t)

	f := New[string]()
	out := f.CompleteOnTimeout("default", 100*time.Millisecond)

	require.NoError(f.Complete("value"))

	v, err := out.Get(context.Background())
	require.NoError(err)
	require.Equal("value", v)

	// a later timer expiry must have no effect
	time.Sleep(150 * time.Millisecond)
	v, err = out.Get(context.Background())
	require.NoError(err)
	require.Equal("value", v)
}

func TestCompleteOnTimeoutFailurePassThrough(t *testing.T) {
	require := require.New(t)

	f := New[string]()
	out := f.CompleteOnTimeout("default", 100*time.Millisecond)

	require.NoError(f.Fail(ErrTest))

	_, err := out.Get(context.Background())
	require.ErrorIs(err, ErrTest)
}
