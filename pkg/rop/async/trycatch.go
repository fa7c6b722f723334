package async

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/ib-77/ropres/pkg/rop"
	"github.com/ib-77/ropres/pkg/rop/solo"
)

// TryCatchAsync calls successFn and waits on the Thenable it returns. A value
// settles the returned Future with a Success. A fault, including a panic in
// successFn or in the Thenable's Then, settles it with a Failure holding
// failureFn(fault). Only the first continuation call counts; failureFn is
// never called once a value has arrived. If failureFn itself panics the
// returned Future is rejected.
func TryCatchAsync[T, V any](successFn func() Thenable[T], failureFn func(fault any) V) *Future[rop.Result[T, V]] {
	out := newFuture[rop.Result[T, V]]()

	var settled atomic.Bool
	onValue := func(v T) {
		if settled.CompareAndSwap(false, true) {
			out.resolve(rop.Succeed[T, V](v))
		}
	}
	onFault := func(fault any) {
		if !settled.CompareAndSwap(false, true) {
			return
		}
		var r rop.Result[T, V]
		if f, panicked := solo.Catch(func() { r = rop.Fail[T](failureFn(fault)) }); panicked {
			out.reject(f)
			return
		}
		out.resolve(r)
	}

	var pending Thenable[T]
	if fault, panicked := solo.Catch(func() { pending = successFn() }); panicked {
		onFault(fault)
		return out
	}
	if rop.IsNil(pending) {
		onFault(ErrNilThenable)
		return out
	}

	if fault, panicked := solo.Catch(func() { pending.Then(onValue, onFault) }); panicked {
		onFault(fault)
	}
	return out
}

// TryCatch calls successFn and inspects what it returns. A Thenable[T] is
// awaited as in TryCatchAsync; a T, or nil, settles the Future at once. A
// value with a Then method of another element type, or any other value, is a
// fault of type *TypeMismatchError. The returned Future always settles to a
// Result, never to a Result holding a pending value.
func TryCatch[T, V any](successFn func() any, failureFn func(fault any) V) *Future[rop.Result[T, V]] {
	return TryCatchAsync(func() Thenable[T] {
		v := successFn()
		if pending, ok := v.(Thenable[T]); ok {
			return pending
		}
		if canThen(v) {
			panic(&TypeMismatchError{Want: reflect.TypeFor[T](), Got: reflect.TypeOf(v)})
		}
		switch v := v.(type) {
		case T:
			return Resolve(v)
		case nil:
			var zero T
			return Resolve(zero)
		default:
			panic(&TypeMismatchError{Want: reflect.TypeFor[T](), Got: reflect.TypeOf(v)})
		}
	}, failureFn)
}

// canThen reports whether v has a Then method taking two functions, the shape
// of a Thenable of any element type.
func canThen(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return false
	}
	m := rv.MethodByName("Then")
	if !m.IsValid() {
		return false
	}
	mt := m.Type()
	return mt.NumIn() == 2 && mt.In(0).Kind() == reflect.Func && mt.In(1).Kind() == reflect.Func
}

// TypeMismatchError is the fault TryCatch reports when successFn returns
// neither a T nor a Thenable[T].
type TypeMismatchError struct {
	Want reflect.Type
	Got  reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("async: want %v or a Thenable of it, got %v", e.Want, e.Got)
}
