package solo

import "github.com/ib-77/ropres/pkg/rop"

// Map applies onSuccess to the value of a Success. A Failure is returned with
// its cause untouched and onSuccess is not called.
func Map[T, U, E any](input rop.Result[T, E], onSuccess func(v T) U) rop.Result[U, E] {
	if v, ok := input.Value(); ok {
		return rop.Succeed[U, E](onSuccess(v))
	}
	cause, _ := input.Cause()
	return rop.Fail[U](cause)
}

// MapError turns a Failure into a Success holding onFailure(cause). A Success
// is returned unchanged and onFailure is not called.
func MapError[T, E any](input rop.Result[T, E], onFailure func(cause E) T) rop.Result[T, E] {
	if cause, failed := input.Cause(); failed {
		return rop.Succeed[T, E](onFailure(cause))
	}
	return input
}

// MapCause replaces the cause of a Failure with onFailure(cause). Unlike
// MapError the result stays a Failure.
func MapCause[T, E, F any](input rop.Result[T, E], onFailure func(cause E) F) rop.Result[T, F] {
	if cause, failed := input.Cause(); failed {
		return rop.Fail[T](onFailure(cause))
	}
	v, _ := input.Value()
	return rop.Succeed[T, F](v)
}

// FlatMap returns onSuccess(value) for a Success. A Failure is returned with
// its cause untouched and onSuccess is not called.
func FlatMap[T, U, E any](input rop.Result[T, E], onSuccess func(v T) rop.Result[U, E]) rop.Result[U, E] {
	if v, ok := input.Value(); ok {
		return onSuccess(v)
	}
	cause, _ := input.Cause()
	return rop.Fail[U](cause)
}

// FlatMapError returns onFailure(cause) for a Failure. A Success is returned
// with its value untouched and onFailure is not called.
func FlatMapError[T, E, F any](input rop.Result[T, E], onFailure func(cause E) rop.Result[T, F]) rop.Result[T, F] {
	if cause, failed := input.Cause(); failed {
		return onFailure(cause)
	}
	v, _ := input.Value()
	return rop.Succeed[T, F](v)
}

// TryCatch calls successFn and wraps its return value in a Success. If
// successFn panics, the recovered value is handed to failureFn and its return
// value is wrapped in a Failure. failureFn is never called when successFn
// returns normally.
func TryCatch[T, V any](successFn func() T, failureFn func(fault any) V) (out rop.Result[T, V]) {
	fault, panicked := Catch(func() { out = rop.Succeed[T, V](successFn()) })
	if panicked {
		return rop.Fail[T](failureFn(fault))
	}
	return out
}

// Catch runs fn and returns the value it panicked with.
func Catch(fn func()) (fault any, panicked bool) {
	panicked = true
	defer func() {
		if panicked {
			fault = recover()
		}
	}()
	fn()
	panicked = false
	return nil, false
}

// Try calls fn and converts a non-nil error into a Failure via onErr.
func Try[T, E any](fn func() (T, error), onErr func(err error) E) rop.Result[T, E] {
	v, err := fn()
	if err != nil {
		return rop.Fail[T](onErr(err))
	}
	return rop.Succeed[T, E](v)
}

// Tee calls onSuccess with the value of a Success and returns input as is.
func Tee[T, E any](input rop.Result[T, E], onSuccess func(v T)) rop.Result[T, E] {
	if v, ok := input.Value(); ok {
		onSuccess(v)
	}
	return input
}

// Finally reduces input to a single value.
func Finally[T, E, Out any](input rop.Result[T, E],
	onSuccess func(v T) Out,
	onFailure func(cause E) Out) Out {

	if cause, failed := input.Cause(); failed {
		return onFailure(cause)
	}
	v, _ := input.Value()
	return onSuccess(v)
}
