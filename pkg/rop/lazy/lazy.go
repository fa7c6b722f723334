package lazy

import (
	"github.com/ib-77/ropres/pkg/rop"
	"github.com/ib-77/ropres/pkg/rop/async"
	"github.com/ib-77/ropres/pkg/rop/solo"
)

// Transformer maps one Result to another.
type Transformer[T, E, U, F any] func(input rop.Result[T, E]) rop.Result[U, F]

func Map[T, U, E any](onSuccess func(T) U) Transformer[T, E, U, E] {
	return func(input rop.Result[T, E]) rop.Result[U, E] {
		return solo.Map(input, onSuccess)
	}
}

func MapError[T, E any](onFailure func(E) T) Transformer[T, E, T, E] {
	return func(input rop.Result[T, E]) rop.Result[T, E] {
		return solo.MapError(input, onFailure)
	}
}

func MapCause[T, E, F any](onFailure func(E) F) Transformer[T, E, T, F] {
	return func(input rop.Result[T, E]) rop.Result[T, F] {
		return solo.MapCause(input, onFailure)
	}
}

func FlatMap[T, U, E any](onSuccess func(T) rop.Result[U, E]) Transformer[T, E, U, E] {
	return func(input rop.Result[T, E]) rop.Result[U, E] {
		return solo.FlatMap(input, onSuccess)
	}
}

func FlatMapError[T, E, F any](onFailure func(E) rop.Result[T, F]) Transformer[T, E, T, F] {
	return func(input rop.Result[T, E]) rop.Result[T, F] {
		return solo.FlatMapError(input, onFailure)
	}
}

func Tee[T, E any](onSuccess func(T)) Transformer[T, E, T, E] {
	return func(input rop.Result[T, E]) rop.Result[T, E] {
		return solo.Tee(input, onSuccess)
	}
}

// Pipe composes transformers that keep the value and cause types.
func Pipe[T, E any](steps ...Transformer[T, E, T, E]) Transformer[T, E, T, E] {
	return func(input rop.Result[T, E]) rop.Result[T, E] {
		for _, step := range steps {
			input = step(input)
		}
		return input
	}
}

func TryCatch[T, V any](fn func() T, failureFn func(fault any) V) func() rop.Result[T, V] {
	return func() rop.Result[T, V] {
		return solo.TryCatch(fn, failureFn)
	}
}

func TryCatch1[A, T, V any](fn func(A) T, failureFn func(fault any) V) func(A) rop.Result[T, V] {
	return func(a A) rop.Result[T, V] {
		return solo.TryCatch(func() T { return fn(a) }, failureFn)
	}
}

func TryCatch2[A, B, T, V any](fn func(A, B) T, failureFn func(fault any) V) func(A, B) rop.Result[T, V] {
	return func(a A, b B) rop.Result[T, V] {
		return solo.TryCatch(func() T { return fn(a, b) }, failureFn)
	}
}

func TryCatchAsync[T, V any](fn func() async.Thenable[T],
	failureFn func(fault any) V) func() *async.Future[rop.Result[T, V]] {
	return func() *async.Future[rop.Result[T, V]] {
		return async.TryCatchAsync(fn, failureFn)
	}
}

func TryCatchAsync1[A, T, V any](fn func(A) async.Thenable[T],
	failureFn func(fault any) V) func(A) *async.Future[rop.Result[T, V]] {
	return func(a A) *async.Future[rop.Result[T, V]] {
		return async.TryCatchAsync(func() async.Thenable[T] { return fn(a) }, failureFn)
	}
}

func TryCatchAsync2[A, B, T, V any](fn func(A, B) async.Thenable[T],
	failureFn func(fault any) V) func(A, B) *async.Future[rop.Result[T, V]] {
	return func(a A, b B) *async.Future[rop.Result[T, V]] {
		return async.TryCatchAsync(func() async.Thenable[T] { return fn(a, b) }, failureFn)
	}
}
