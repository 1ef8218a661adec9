/*
Package option implements a generic optional value, the result type of every
extraction in this module.

An optional value is either set (“Some”) or unset (“None”):

    x := option.Something(42)
    y := option.Nothing[int]()

Clients will usually ask for the value with Get, Expect or UnwrapOr, or they
dispatch on the two cases:

    s, err := option.Match(x, option.Maybe[int, string]{
        Some: func(n int) string { return strconv.Itoa(n) },
        None: func() string { return "nothing" },
    })

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'extract.option'.
func tracer() tracing.Trace {
	return tracing.Select("extract.option")
}
