package rop

import "fmt"

// FailureError carries a failure cause across into error-returning code.
type FailureError[E any] struct {
	Cause E
}

func (e *FailureError[E]) Error() string {
	if err, ok := any(e.Cause).(error); ok && !IsNil(err) {
		return "rop: failure: " + err.Error()
	}
	return fmt.Sprintf("rop: failure: %v", e.Cause)
}

// Unwrap exposes the cause when it is itself an error.
func (e *FailureError[E]) Unwrap() error {
	if err, ok := any(e.Cause).(error); ok && !IsNil(err) {
		return err
	}
	return nil
}

// Err returns nil for a Success and a *FailureError holding the cause for a
// Failure.
func Err[T, E any](r Result[T, E]) error {
	if cause, failed := r.Cause(); failed {
		return &FailureError[E]{Cause: cause}
	}
	return nil
}

// Get mirrors the (value, error) convention; see Err.
func Get[T, E any](r Result[T, E]) (T, error) {
	return r.value, Err(r)
}
