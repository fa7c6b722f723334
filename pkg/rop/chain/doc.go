// Package chain provides a fluent wrapper around rop.Result[T, E] for building
// synchronous chains out of solo primitives.
//
// Methods keep the value and cause types fixed; the package-level Then, Map
// and MapCause change them. All of them forward to package solo.
//
// Key operations:
// - Start/FromValue/FromCause: begin a chain from a Result, a value or a cause
// - Map/FlatMap: transform or chain the success value
// - MapError/FlatMapError: recover from a Failure
// - Tee: run side effects on success without changing the result
// - Finally/Unwrap: leave the chain
package chain
