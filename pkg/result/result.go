// Package result provides a success/failure container returned by the
// account use-cases, so expected failures travel as data instead of panics.
package result

import "errors"

// ErrNilFailure is carried by a Result built with Fail(nil).
var ErrNilFailure = errors.New("failure without error")

// Result holds either a value or an error, never both.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result carrying v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail returns a failed Result carrying err.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return Result[T]{err: err}
}

// IsOk reports whether the Result is a success.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsFail reports whether the Result is a failure.
func (r Result[T]) IsFail() bool { return r.err != nil }

// Value returns the carried value; the zero value for failures.
func (r Result[T]) Value() T { return r.value }

// Err returns the carried error, nil for successes.
func (r Result[T]) Err() error { return r.err }

// Unwrap returns the value and error as a conventional Go pair.
func (r Result[T]) Unwrap() (T, error) { return r.value, r.err }

// Map applies f to the value of a successful Result. Failures pass through.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return Ok(f(r.value))
}
