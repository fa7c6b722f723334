package async

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/ropres/pkg/rop"
	"github.com/ib-77/ropres/pkg/rop/solo"
)

var (
	ErrClosed      = errors.New("async: channel closed before a value was sent")
	ErrNilThenable = errors.New("async: nil thenable")
)

// Thenable is a pending computation. Then registers continuations; exactly one
// of them is called once the computation settles.
type Thenable[T any] interface {
	Then(onValue func(T), onFault func(fault any))
}

// ThenFunc adapts a plain function to Thenable.
type ThenFunc[T any] func(onValue func(T), onFault func(fault any))

func (f ThenFunc[T]) Then(onValue func(T), onFault func(fault any)) {
	f(onValue, onFault)
}

// Future is a value that settles once, either with a value or with a fault.
type Future[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	once      sync.Once
	done      chan struct{}
	value     T
	fault     any
	faulted   bool
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

// settle is a no-op after the first call.
func (f *Future[T]) settle(value T, fault any, faulted bool) {
	f.once.Do(func() {
		f.value, f.fault, f.faulted = value, fault, faulted
		close(f.done)
	})
}

func (f *Future[T]) resolve(value T) {
	f.settle(value, nil, false)
}

func (f *Future[T]) reject(fault any) {
	var zero T
	f.settle(zero, fault, true)
}

func Resolve[T any](value T) *Future[T] {
	f := newFuture[T]()
	f.resolve(value)
	return f
}

func Reject[T any](fault any) *Future[T] {
	f := newFuture[T]()
	f.reject(fault)
	return f
}

// Run calls fn on a new goroutine. A panic in fn rejects the Future with the
// recovered value.
func Run[T any](fn func() T) *Future[T] {
	f := newFuture[T]()
	go func() {
		var v T
		if fault, panicked := solo.Catch(func() { v = fn() }); panicked {
			f.reject(fault)
			return
		}
		f.resolve(v)
	}()
	return f
}

// Go calls fn on a new goroutine. A non-nil error, or a panic, rejects the
// Future. ctx is handed to fn unchanged.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		var (
			v   T
			err error
		)
		if fault, panicked := solo.Catch(func() { v, err = fn(ctx) }); panicked {
			f.reject(fault)
			return
		}
		if err != nil {
			f.reject(err)
			return
		}
		f.resolve(v)
	}()
	return f
}

// FromChan settles with the first value received from ch. If ch is closed
// first the Future is rejected with ErrClosed.
func FromChan[T any](ch <-chan T) *Future[T] {
	f := newFuture[T]()
	go func() {
		v, ok := <-ch
		if !ok {
			f.reject(ErrClosed)
			return
		}
		f.resolve(v)
	}()
	return f
}

func (f *Future[T]) Id() uuid.UUID {
	return f.id
}

// CreatedAt time creation (UTC)
func (f *Future[T]) CreatedAt() time.Time {
	return f.createdAt
}

// Done is closed once the Future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Then calls onValue or onFault on a new goroutine after f settles. A nil
// continuation is skipped. The goroutine waits for as long as f is pending,
// so it never exits if f never settles.
func (f *Future[T]) Then(onValue func(T), onFault func(fault any)) {
	go func() {
		<-f.done
		if f.faulted {
			if onFault != nil {
				onFault(f.fault)
			}
			return
		}
		if onValue != nil {
			onValue(f.value)
		}
	}()
}

// Await blocks until f settles or ctx is done. A fault is returned as a
// *FaultError, an ended context as ctx.Err().
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		if f.faulted {
			var zero T
			return zero, &FaultError{Fault: f.fault}
		}
		return f.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// FaultError reports the fault a Future was rejected with.
type FaultError struct {
	Fault any
}

func (e *FaultError) Error() string {
	if err, ok := e.Fault.(error); ok && !rop.IsNil(err) {
		return "async: fault: " + err.Error()
	}
	return fmt.Sprintf("async: fault: %v", e.Fault)
}

func (e *FaultError) Unwrap() error {
	if err, ok := e.Fault.(error); ok && !rop.IsNil(err) {
		return err
	}
	return nil
}
