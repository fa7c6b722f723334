// Package rop defines Result[T, E], a value that is either a Success holding a
// T or a Failure holding a cause E, together with its constructors, predicates
// and the Unwrap escape hatch.
//
// Failures are ordinary values: they flow through the combinators in package
// solo (or its curried and fluent forms in lazy and chain) without panicking.
// For closed sets of failure kinds use TypedCause:
//
//	type userKind string
//
//	const (
//		userMissing userKind = "missing"
//		userBanned  userKind = "banned"
//	)
//
//	func load(id int) rop.Result[User, rop.TypedCause[userKind, int]] {
//		return rop.FailTyped[User](userMissing, id)
//	}
//
// Highlights:
// - Succeed/Fail/FailTyped: construct Result[T, E]
// - IsSuccess/IsFailure: exact complements, see also Value and Cause
// - Unwrap: return the value or panic with the Failure itself
// - Some/None: Option[T], a Result whose failure carries no information
// - FailNotFound/Unknown: stock typed causes
package rop
