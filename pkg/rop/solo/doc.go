// Package solo contains the direct-argument combinators over rop.Result. Every
// other call convention in this module (lazy, chain, async) forwards here.
//
// Highlights:
// - Map/FlatMap: transform or chain the success value, failures pass through
// - MapError: recover a Failure into a Success with a replacement value
// - MapCause: transform the cause and stay a Failure
// - FlatMapError: let a function decide the outcome of a Failure
// - TryCatch: run a function and convert a panic into a Failure
// - Try: convert a (T, error) call into a Result
// - Tee/Finally: side effects and final reduction
package solo
