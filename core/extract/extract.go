package extract

import (
	"github.com/npillmayer/extract/core"
	"github.com/npillmayer/extract/core/option"
	"github.com/npillmayer/extract/core/pattern"
)

// Extract matches v against p. On a match, dest is called with the bindings
// and its result is returned. Otherwise the result is unset and dest is not
// called.
func Extract[V, B, R any](p pattern.P[V, B], dest func(B) R, v V) option.Type[R] {
	return ExtractIf(p, nil, dest, v)
}

// ExtractIf matches v against p and, on a match, asks guard whether to
// accept the bindings. A nil guard accepts any bindings. If the bindings are
// accepted, dest is called exactly once and its result is returned.
// Otherwise the result is unset.
//
// Neither guard nor dest is called if p does not match, and dest is not
// called if guard rejects the bindings. Panics raised by guard or dest are
// not recovered.
func ExtractIf[V, B, R any](p pattern.P[V, B], guard func(B) bool, dest func(B) R, v V) option.Type[R] {
	b, ok := p(v)
	if !ok {
		tracer().Debugf("extract: %T does not match", v)
		return option.Nothing[R]()
	}
	if guard != nil && !guard(b) {
		tracer().Debugf("extract: guard rejected %v", b)
		return option.Nothing[R]()
	}
	return option.Something(dest(b))
}

// evalWith is ExtractIf for guards and destinations operating on captured
// state. env is called only if p matched.
func evalWith[S, V, B, R any](p pattern.P[V, B], guard func(*S, B) bool, dest func(*S, B) R,
	env func() *S, v V) option.Type[R] {
	//
	b, ok := p(v)
	if !ok {
		tracer().Debugf("extract: %T does not match", v)
		return option.Nothing[R]()
	}
	st := env()
	if guard != nil && !guard(st, b) {
		tracer().Debugf("extract: guard rejected %v", b)
		return option.Nothing[R]()
	}
	return option.Something(dest(st, b))
}

func errBuild(x string) error {
	return core.Error(core.EINVALID, "building extractor: %s", x)
}
