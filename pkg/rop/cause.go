package rop

import "fmt"

// TypedCause is a failure payload discriminated by Kind. Declaring K as a
// named string type with a fixed set of constants gives call sites a closed
// set of failure kinds to switch over. Detail is None when no detail was
// supplied, never a zero placeholder.
type TypedCause[K ~string, V any] struct {
	Kind   K
	Detail Option[V]
}

// Typed builds a TypedCause. It takes at most one detail.
func Typed[V any, K ~string](kind K, detail ...V) TypedCause[K, V] {
	switch len(detail) {
	case 0:
		return TypedCause[K, V]{Kind: kind, Detail: None[V]()}
	case 1:
		return TypedCause[K, V]{Kind: kind, Detail: Some(detail[0])}
	default:
		panic("rop: Typed takes at most one detail")
	}
}

// FailTyped returns a Failure whose cause is Typed(kind, detail...).
func FailTyped[T, V any, K ~string](kind K, detail ...V) Result[T, TypedCause[K, V]] {
	return Fail[T](Typed(kind, detail...))
}

func (c TypedCause[K, V]) HasDetail() bool {
	return c.Detail.IsSuccess()
}

func (c TypedCause[K, V]) Error() string {
	if d, ok := c.Detail.Value(); ok {
		return fmt.Sprintf("%s: %v", c.Kind, d)
	}
	return string(c.Kind)
}

// Kind is the discriminant used by the stock causes below.
type Kind string

const (
	KindNotFound Kind = "notfound"
	KindUnknown  Kind = "unknown"
)

type NotFoundCause = TypedCause[Kind, Unit]

type UnknownCause = TypedCause[Kind, string]

// FailNotFound returns a Failure of kind "notfound" without detail.
func FailNotFound[T any]() Result[T, NotFoundCause] {
	return FailTyped[T, Unit](KindNotFound)
}

// Unknown builds a cause of kind "unknown" carrying message.
func Unknown(message string) UnknownCause {
	return Typed(KindUnknown, message)
}
