package rop

// Unit is the empty failure payload of an Option.
type Unit struct{}

// Option models a value that may be absent without a reason.
type Option[T any] = Result[T, Unit]

func Some[T any](value T) Option[T] {
	return Succeed[T, Unit](value)
}

func None[T any]() Option[T] {
	return Fail[T](Unit{})
}
