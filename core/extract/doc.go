/*
Package extract turns a structural match against a value into an optional
result.

ExtractIf applies a pattern to a value. If the value matches and the guard (if
any) accepts the bindings, the destination function is called with the
bindings and its result is returned as a set option.Type; otherwise the
result is unset:

    type FooBar interface{ isFooBar() }
    type Foo uint8
    type Bar string

    foo := pattern.Variant[FooBar](pattern.Bind[Foo]())
    s := extract.Extract(foo, func(x Foo) string { return strconv.Itoa(int(x)) }, FooBar(Foo(8)))
    // s = Some("8")

Evaluation is strictly ordered: the pattern is applied first, the guard is
called only after a successful match and the destination is called only after
the guard passed. Each of them is called at most once per evaluation. A
mismatch is not an error; it is the unset result.

Fn, Shared, Move and Build wrap the same evaluation into a reusable function
value. They differ in the way they attach state of the enclosing scope:

■ Fn relies on ordinary Go closures: guard and destination alias any variable
they reference.

■ Shared attaches a pointer to caller-owned state. Every call works on a copy
of the state's current value, so the function observes updates by the caller
but cannot reassign the caller's state.

■ Move copies the state into an Extractor, which owns it from then on. Guard
and destination may mutate it, and changes persist from call to call.

Copies are shallow. State holding maps, slices or pointers still shares the
referenced data with the caller; SharedWith, MoveWith and BuildWith accept a
clone function to copy such state, e.g. maps.Clone:

    x := extract.MoveWith(seen, maps.Clone[map[string]int], p, nil, count)

Neither kind of function synchronizes access to its state; concurrent calls of
one Extractor have to be serialized by the client.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package extract

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'extract'.
func tracer() tracing.Trace {
	return tracing.Select("extract")
}
