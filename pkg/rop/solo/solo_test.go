package solo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/ropres/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spy counts how many times the wrapped function was called.
type spy struct{ calls int }

func spyOn[A, B any](s *spy, fn func(A) B) func(A) B {
	return func(a A) B {
		s.calls++
		return fn(a)
	}
}

func inc(v int) int { return v + 1 }

func onlyOne(v int) rop.Result[int, string] {
	if v == 1 {
		return rop.Succeed[int, string](v + 1)
	}
	return rop.Fail[int]("error")
}

func TestMap_Success(t *testing.T) {
	t.Parallel()

	s := &spy{}
	out := Map(rop.Succeed[int, string](1), spyOn(s, inc))

	assert.Equal(t, rop.Succeed[int, string](2), out)
	assert.Equal(t, 1, s.calls)
}

func TestMap_ChangesType(t *testing.T) {
	t.Parallel()

	out := Map(rop.Succeed[int, string](12), strconv.Itoa)
	assert.Equal(t, rop.Succeed[string, string]("12"), out)
}

func TestMap_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()

	s := &spy{}
	out := Map(rop.Fail[int]("error"), spyOn(s, inc))

	assert.Equal(t, rop.Fail[int]("error"), out)
	assert.Zero(t, s.calls)
}

func TestMapError_Failure(t *testing.T) {
	t.Parallel()

	s := &spy{}
	out := MapError(rop.Fail[int](1), spyOn(s, inc))

	assert.Equal(t, rop.Succeed[int, int](2), out)
	assert.Equal(t, 1, s.calls)
}

func TestMapError_ShortCircuitOnSuccess(t *testing.T) {
	t.Parallel()

	s := &spy{}
	out := MapError(rop.Succeed[int, int](1), spyOn(s, inc))

	assert.Equal(t, rop.Succeed[int, int](1), out)
	assert.Zero(t, s.calls)
}

func TestMapCause(t *testing.T) {
	t.Parallel()

	s := &spy{}
	out := MapCause(rop.Fail[string](404), spyOn(s, strconv.Itoa))
	assert.Equal(t, rop.Fail[string]("404"), out)
	assert.Equal(t, 1, s.calls)

	out = MapCause(rop.Succeed[string, int]("ok"), spyOn(s, strconv.Itoa))
	assert.Equal(t, rop.Succeed[string, string]("ok"), out)
	assert.Equal(t, 1, s.calls)
}

func TestFlatMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Succeed[int, string](2), FlatMap(rop.Succeed[int, string](1), onlyOne))
	assert.Equal(t, rop.Fail[int]("error"), FlatMap(rop.Succeed[int, string](2), onlyOne))

	s := &spy{}
	assert.Equal(t, rop.Fail[int]("first"), FlatMap(rop.Fail[int]("first"), spyOn(s, onlyOne)))
	assert.Zero(t, s.calls)
}

func TestFlatMapError(t *testing.T) {
	t.Parallel()

	recoverOne := func(c int) rop.Result[int, string] {
		if c == 1 {
			return rop.Succeed[int, string](c + 1)
		}
		return rop.Fail[int]("error")
	}

	s := &spy{}
	assert.Equal(t, rop.Succeed[int, string](1), FlatMapError(rop.Succeed[int, int](1), spyOn(s, recoverOne)))
	assert.Zero(t, s.calls)

	assert.Equal(t, rop.Succeed[int, string](2), FlatMapError(rop.Fail[int](1), spyOn(s, recoverOne)))
	assert.Equal(t, rop.Fail[int]("error"), FlatMapError(rop.Fail[int](2), spyOn(s, recoverOne)))
	assert.Equal(t, 2, s.calls)
}

func TestTryCatch_Success(t *testing.T) {
	t.Parallel()

	failed := false
	out := TryCatch(func() int { return 1 + 1 }, func(any) string {
		failed = true
		return "err"
	})

	assert.Equal(t, rop.Succeed[int, string](2), out)
	assert.False(t, failed)
}

func TestTryCatch_Panic(t *testing.T) {
	t.Parallel()

	var fault any
	out := TryCatch(func() int { panic(1) }, func(f any) string {
		fault = f
		return "err"
	})

	assert.Equal(t, rop.Fail[int]("err"), out)
	assert.Equal(t, 1, fault)
}

func TestTryCatch_PanicWithError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	out := TryCatch(func() string { panic(boom) }, func(f any) error { return f.(error) })

	cause, failed := out.Cause()
	require.True(t, failed)
	assert.ErrorIs(t, cause, boom)
}

func TestCatch(t *testing.T) {
	t.Parallel()

	fault, panicked := Catch(func() {})
	assert.False(t, panicked)
	assert.Nil(t, fault)

	fault, panicked = Catch(func() { panic("x") })
	assert.True(t, panicked)
	assert.Equal(t, "x", fault)
}

func TestTry(t *testing.T) {
	t.Parallel()

	wrap := func(err error) string { return "wrapped: " + err.Error() }

	assert.Equal(t, rop.Succeed[int, string](42), Try(func() (int, error) { return strconv.Atoi("42") }, wrap))

	out := Try(func() (int, error) { return 0, errors.New("bad") }, wrap)
	assert.Equal(t, rop.Fail[int]("wrapped: bad"), out)
}

func TestTee(t *testing.T) {
	t.Parallel()

	seen := []int{}
	record := func(v int) { seen = append(seen, v) }

	in := rop.Succeed[int, string](5)
	assert.Equal(t, in, Tee(in, record))
	assert.Equal(t, rop.Fail[int]("x"), Tee(rop.Fail[int]("x"), record))
	assert.Equal(t, []int{5}, seen)
}

func TestFinally(t *testing.T) {
	t.Parallel()

	render := func(r rop.Result[int, rop.NotFoundCause]) string {
		return Finally(r,
			func(v int) string { return "val:" + strconv.Itoa(v) },
			func(c rop.NotFoundCause) string { return string(c.Kind) })
	}

	assert.Equal(t, "val:3", render(rop.Succeed[int, rop.NotFoundCause](3)))
	assert.Equal(t, "notfound", render(rop.FailNotFound[int]()))
}
