// Package async bridges panicking or error-returning asynchronous work into
// rop.Result values.
//
// A pending computation is anything that implements Thenable, a single method
// for attaching continuations. Future is the implementation shipped here;
// values from other promise libraries can be adapted with ThenFunc.
//
// Highlights:
// - Run/Go/Resolve/Reject/FromChan: build a Future
// - Future.Then/Await/Done: observe a Future
// - TryCatchAsync: Thenable[T] -> Future[Result[T, V]]
// - TryCatch: detect a Thenable structurally, settle plain values immediately
//
// Package async does not schedule retries, impose timeouts or cancel work.
// Await stops waiting when its context ends; the computation keeps running.
package async
