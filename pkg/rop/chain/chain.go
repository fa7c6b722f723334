package chain

import (
	"github.com/ib-77/ropres/pkg/rop"
	"github.com/ib-77/ropres/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[T, E any] struct {
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T, E any](result rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](value T) *Chain[T, E] {
	return Start(rop.Succeed[T, E](value))
}

// FromCause creates a new chain from a failure cause
func FromCause[T, E any](cause E) *Chain[T, E] {
	return Start(rop.Fail[T](cause))
}

// Result returns the underlying rop.Result
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

func (c *Chain[T, E]) Map(onSuccess func(T) T) *Chain[T, E] {
	return Start(solo.Map(c.result, onSuccess))
}

func (c *Chain[T, E]) FlatMap(onSuccess func(T) rop.Result[T, E]) *Chain[T, E] {
	return Start(solo.FlatMap(c.result, onSuccess))
}

func (c *Chain[T, E]) MapError(onFailure func(E) T) *Chain[T, E] {
	return Start(solo.MapError(c.result, onFailure))
}

func (c *Chain[T, E]) FlatMapError(onFailure func(E) rop.Result[T, E]) *Chain[T, E] {
	return Start(solo.FlatMapError(c.result, onFailure))
}

// Tee performs a side effect without changing the result
func (c *Chain[T, E]) Tee(onSuccess func(T)) *Chain[T, E] {
	return Start(solo.Tee(c.result, onSuccess))
}

// Unwrap returns the value or panics with the Failure, see rop.Unwrap
func (c *Chain[T, E]) Unwrap() T {
	return rop.Unwrap(c.result)
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(T) rop.Result[U, E]) *Chain[U, E] {
	return Start(solo.FlatMap(c.result, onSuccess))
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(T) U) *Chain[U, E] {
	return Start(solo.Map(c.result, onSuccess))
}

// MapCause replaces the failure cause, the chain stays failed
func MapCause[T, E, F any](c *Chain[T, E], onFailure func(E) F) *Chain[T, F] {
	return Start(solo.MapCause(c.result, onFailure))
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, E, Out any](c *Chain[T, E], onSuccess func(T) Out, onFailure func(E) Out) Out {
	return solo.Finally(c.result, onSuccess, onFailure)
}
