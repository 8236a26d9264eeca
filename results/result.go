// Package results provides a small value type pairing the value of a
// computation with its error.
package results

type Result[R any] struct {
	Val R
	Err error
}

func New[R any](val R, err error) Result[R] {
	return Result[R]{Val: val, Err: err}
}

func Success[T any](val T) Result[T] {
	return Result[T]{Val: val}
}

func Failure[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// Unpack returns the result as an ordinary (value, error) pair.
func (r Result[R]) Unpack() (R, error) {
	return r.Val, r.Err
}

// IsSuccess reports whether the result carries no error.
func (r Result[R]) IsSuccess() bool {
	return r.Err == nil
}
