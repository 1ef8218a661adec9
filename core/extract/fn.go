package extract

import (
	"fmt"

	"github.com/npillmayer/extract/core/option"
	"github.com/npillmayer/extract/core/pattern"
)

// Func is an extraction function for values of type V.
// Calling it performs one evaluation as described for ExtractIf.
type Func[V, R any] func(V) option.Type[R]

// CaptureMode selects how an extraction function attaches state of its
// enclosing scope.
type CaptureMode int

const (
	// CaptureShared aliases caller-owned state; the function reads its current
	// value on every call.
	CaptureShared CaptureMode = iota
	// CaptureMove transfers the state into the function, which owns it from
	// then on.
	CaptureMove
)

func (m CaptureMode) String() string {
	switch m {
	case CaptureShared:
		return "shared"
	case CaptureMove:
		return "move"
	}
	return "unknown"
}

// Fn creates an extraction function from a pattern, an optional guard and a
// destination, i.e. f(v) equals ExtractIf(p, guard, dest, v) for every v.
//
// Variables of the enclosing scope referenced by guard or dest are aliased by
// Go's closure semantics; every call observes their current value.
//
// Fn panics if p or dest is nil.
func Fn[V, B, R any](p pattern.P[V, B], guard func(B) bool, dest func(B) R) Func[V, R] {
	mustBuild(p != nil, dest != nil)
	return func(v V) option.Type[R] {
		return ExtractIf(p, guard, dest, v)
	}
}

// Shared creates an extraction function with read access to caller-owned
// state env. On every call guard and dest receive a copy of the current value
// of *env; env itself is never written to.
//
// The copy is shallow. If S holds maps, slices or pointers, guard and dest
// reach the caller's data through them; use SharedWith to copy such state.
//
// The function must not be called after the state env points to has been
// given up by its owner. Shared panics if env, p or dest is nil.
func Shared[S, V, B, R any](env *S, p pattern.P[V, B], guard func(S, B) bool, dest func(S, B) R) Func[V, R] {
	return SharedWith(env, nil, p, guard, dest)
}

// SharedWith is Shared with a clone function, which is called on every
// evaluation after a successful match to copy the current value of *env.
// A nil clone yields a shallow copy.
func SharedWith[S, V, B, R any](env *S, clone func(S) S, p pattern.P[V, B],
	guard func(S, B) bool, dest func(S, B) R) Func[V, R] {
	//
	mustBuild(p != nil, dest != nil)
	if env == nil {
		panic(errBuild("shared capture of nil state"))
	}
	var g func(*S, B) bool
	if guard != nil {
		g = func(st *S, b B) bool { return guard(*st, b) }
	}
	d := func(st *S, b B) R { return dest(*st, b) }
	return BuildWith(CaptureShared, env, clone, p, g, d)
}

// Move creates an Extractor which owns a copy of env. Guard and destination
// receive a pointer to the Extractor's state and may mutate it; changes are
// kept between calls.
//
// The copy is shallow: maps, slices and pointers contained in env remain
// shared with the caller. Use MoveWith to give the Extractor sole ownership
// of such state.
//
// Move panics if p or dest is nil.
func Move[S, V, B, R any](env S, p pattern.P[V, B], guard func(*S, B) bool, dest func(*S, B) R) *Extractor[S, V, R] {
	return MoveWith(env, nil, p, guard, dest)
}

// MoveWith is Move with a clone function, which is called once to create the
// Extractor's state from env. With a deep-copying clone, no reference to the
// Extractor's state exists outside of it. A nil clone yields a shallow copy.
func MoveWith[S, V, B, R any](env S, clone func(S) S, p pattern.P[V, B],
	guard func(*S, B) bool, dest func(*S, B) R) *Extractor[S, V, R] {
	//
	mustBuild(p != nil, dest != nil)
	if clone != nil {
		env = clone(env)
	}
	x := &Extractor[S, V, R]{state: env}
	x.eval = func(st *S, v V) option.Type[R] {
		return evalWith(p, guard, dest, func() *S { return st }, v)
	}
	tracer().Debugf("extract: moved %T into extractor", env)
	return x
}

// Build creates an extraction function with state env, attached according
// to mode. For CaptureShared, guard and dest operate on a per-call copy of
// *env. For CaptureMove, *env is copied once (a nil env yields the zero value
// of S) and guard and dest operate on the function's own copy.
// Copies are shallow; see BuildWith.
//
// Build panics if p or dest is nil, or if env is nil for CaptureShared.
func Build[S, V, B, R any](mode CaptureMode, env *S, p pattern.P[V, B],
	guard func(*S, B) bool, dest func(*S, B) R) Func[V, R] {
	//
	return BuildWith(mode, env, nil, p, guard, dest)
}

// BuildWith is Build with a clone function used for every copy of *env.
// A nil clone yields shallow copies.
func BuildWith[S, V, B, R any](mode CaptureMode, env *S, clone func(S) S, p pattern.P[V, B],
	guard func(*S, B) bool, dest func(*S, B) R) Func[V, R] {
	//
	mustBuild(p != nil, dest != nil)
	tracer().Debugf("extract: building %s extraction function for %T", mode, env)
	switch mode {
	case CaptureShared:
		if env == nil {
			panic(errBuild("shared capture of nil state"))
		}
		return func(v V) option.Type[R] {
			return evalWith(p, guard, dest, func() *S {
				st := *env
				if clone != nil {
					st = clone(st)
				}
				return &st
			}, v)
		}
	case CaptureMove:
		var st S
		if env != nil {
			st = *env
		}
		return MoveWith(st, clone, p, guard, dest).Func()
	}
	panic(errBuild(fmt.Sprintf("unknown capture mode %d", int(mode))))
}

func mustBuild(hasPattern, hasDest bool) {
	if !hasPattern {
		panic(errBuild("pattern is nil"))
	}
	if !hasDest {
		panic(errBuild("destination is nil"))
	}
}

// --- Extractor -------------------------------------------------------------

// Extractor is an extraction function owning its state. Create it with
// Move or MoveWith; calling a zero Extractor panics with an error of code
// core.EINVALID.
//
// An Extractor is not safe for concurrent use if its guard or destination
// mutate the state.
type Extractor[S, V, R any] struct {
	state S
	eval  func(*S, V) option.Type[R]
}

// Call performs one evaluation for v.
func (x *Extractor[S, V, R]) Call(v V) option.Type[R] {
	if x == nil || x.eval == nil {
		panic(errBuild("extractor has not been created by Move"))
	}
	return x.eval(&x.state, v)
}

// Func returns x as a Func.
func (x *Extractor[S, V, R]) Func() Func[V, R] {
	return x.Call
}
