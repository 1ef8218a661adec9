package extract

import (
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/npillmayer/extract/core/option"
)

// First combines extraction functions into one which returns the result of
// the first function producing a set result. Functions after that one are
// not called.
func First[V, R any](fns ...Func[V, R]) Func[V, R] {
	return func(v V) option.Type[R] {
		for _, f := range fns {
			if r := f(v); r.IsSome() {
				return r
			}
		}
		return option.Nothing[R]()
	}
}

// Switch is a list of cases, tried in order until one of them matches.
// Cases are extraction functions, usually created with Fn.
//
//     sw := extract.NewSwitch[FooBar, string]().
//         Case(extract.Fn(foo, nil, fooToString)).
//         Case(extract.Fn(bar, nil, barToString))
//     s := sw.Match(x)
//
type Switch[V, R any] struct {
	cases *arraylist.List
	deflt func(V) R
}

// NewSwitch creates an empty Switch. The zero value of Switch is an empty
// Switch as well. Matching an empty Switch without a default case yields an unset result.
func NewSwitch[V, R any]() *Switch[V, R] {
	return &Switch[V, R]{cases: arraylist.New()}
}

// Case appends a case.
func (sw *Switch[V, R]) Case(f Func[V, R]) *Switch[V, R] {
	if f == nil {
		panic(errBuild("switch case is nil"))
	}
	if sw.cases == nil {
		sw.cases = arraylist.New()
	}
	sw.cases.Add(f)
	return sw
}

// Default sets a function to call when no case matches.
func (sw *Switch[V, R]) Default(dest func(V) R) *Switch[V, R] {
	sw.deflt = dest
	return sw
}

// Len returns the number of cases, not counting the default.
func (sw *Switch[V, R]) Len() int {
	if sw.cases == nil {
		return 0
	}
	return sw.cases.Size()
}

// Match tries the cases in order and returns the first set result.
// If no case matches, the default is called, if present.
func (sw *Switch[V, R]) Match(v V) option.Type[R] {
	if sw.cases != nil {
		it := sw.cases.Iterator()
		for it.Next() {
			f := it.Value().(Func[V, R])
			if r := f(v); r.IsSome() {
				tracer().Debugf("switch: case #%d matched", it.Index())
				return r
			}
		}
	}
	if sw.deflt != nil {
		return option.Something(sw.deflt(v))
	}
	return option.Nothing[R]()
}

// Func returns sw as a Func.
func (sw *Switch[V, R]) Func() Func[V, R] {
	return sw.Match
}
