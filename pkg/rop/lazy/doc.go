// Package lazy provides curried forms of the solo combinators: each call takes
// the transform and returns a reusable function awaiting a Result. TryCatch and
// TryCatchAsync wrap a function of arguments and return a function with the
// same arguments that yields a Result instead of panicking.
//
// Common usage:
//
//	parse := lazy.TryCatch1(mustParse, func(any) rop.UnknownCause {
//		return rop.Unknown("bad input")
//	})
//	double := lazy.Map[int, int, rop.UnknownCause](func(v int) int { return v * 2 })
//	out := double(parse("21"))
//
// Go has no variadic type parameters, so the wrappers come in arities 0, 1
// and 2; wrap larger argument lists in a struct.
package lazy
