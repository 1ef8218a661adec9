/*
Package pattern implements structural patterns for Go values.

A pattern P[V, B] inspects a value of type V. If the value has the expected
shape, the pattern binds a value of type B and reports a match. Bindings are
plain return values; they are visible only to the code consuming a single
match result and never leak into an enclosing scope.

Patterns compose. Sum types are modelled as sealed interfaces, with one
struct type per variant; Variant narrows to a variant type, Field selects a
struct field, All2…All4 destructure several fields of the same value and
T2…T4 destructure tuples:

    type Shape interface{ isShape() }
    type Circle struct{ R float64 }
    type Rect struct{ W, H float64 }

    // matches Rect{W: w, H: h} and binds (w, h)
    p := pattern.Variant[Shape](pattern.All2(
        pattern.Field(func(r Rect) float64 { return r.W }, pattern.Bind[float64]()),
        pattern.Field(func(r Rect) float64 { return r.H }, pattern.Bind[float64]()),
    ))
    wh, ok := p(Rect{W: 2, H: 3})   // wh = (2, 3), ok = true
    _, ok = p(Circle{R: 1})         // ok = false

Wildcard positions are expressed with Wildcard, which binds Unit.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pattern

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'extract.pattern'.
func tracer() tracing.Trace {
	return tracing.Select("extract.pattern")
}
