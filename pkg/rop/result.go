package rop

import "fmt"

// Tag is the discriminant of a Result.
type Tag string

const (
	TagSuccess Tag = "success"
	TagFailure Tag = "failure"
)

// Result holds either a success value of type T or a failure cause of type E.
// The zero value is a Success holding the zero T. Results are never mutated;
// two Results compare equal with == when T and E are comparable.
type Result[T, E any] struct {
	value  T
	cause  E
	failed bool
}

func Succeed[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value}
}

func Fail[T, E any](cause E) Result[T, E] {
	return Result[T, E]{cause: cause, failed: true}
}

func (r Result[T, E]) Tag() Tag {
	if r.failed {
		return TagFailure
	}
	return TagSuccess
}

func (r Result[T, E]) IsSuccess() bool {
	return !r.failed
}

func (r Result[T, E]) IsFailure() bool {
	return r.failed
}

// Value returns the success value, ok is false for a Failure.
func (r Result[T, E]) Value() (value T, ok bool) {
	if r.failed {
		return value, false
	}
	return r.value, true
}

// Cause returns the failure cause, ok is false for a Success.
func (r Result[T, E]) Cause() (cause E, ok bool) {
	if !r.failed {
		return cause, false
	}
	return r.cause, true
}

func (r Result[T, E]) String() string {
	if r.failed {
		return fmt.Sprintf("failure(%v)", r.cause)
	}
	return fmt.Sprintf("success(%v)", r.value)
}

func IsSuccess[T, E any](r Result[T, E]) bool {
	return r.IsSuccess()
}

func IsFailure[T, E any](r Result[T, E]) bool {
	return r.IsFailure()
}

// Unwrap returns the success value. On a Failure it panics with r itself, so
// a recovering caller gets back the exact Failure it passed in.
func Unwrap[T, E any](r Result[T, E]) T {
	if r.failed {
		panic(r)
	}
	return r.value
}

// UnwrapOr returns the success value or fallback on a Failure.
func UnwrapOr[T, E any](r Result[T, E], fallback T) T {
	if r.failed {
		return fallback
	}
	return r.value
}
