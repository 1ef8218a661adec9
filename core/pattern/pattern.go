package pattern

import (
	"golang.org/x/text/cases"
)

// P is a pattern for values of type V. On a successful match it returns the
// bound value of type B and true. On failure the returned binding is
// meaningless and must not be used.
type P[V, B any] func(V) (B, bool)

// Unit is the binding of patterns which do not bind anything, e.g. Wildcard.
type Unit struct{}

// Match applies p to v. It is a convenience for p(v).
func (p P[V, B]) Match(v V) (B, bool) {
	return p(v)
}

// Bind matches any value and binds it (by value).
func Bind[V any]() P[V, V] {
	return func(v V) (V, bool) {
		return v, true
	}
}

// Wildcard matches any value and binds nothing.
func Wildcard[V any]() P[V, Unit] {
	return func(V) (Unit, bool) {
		return Unit{}, true
	}
}

// Eq matches values equal to x. The matched value is bound.
func Eq[V comparable](x V) P[V, V] {
	return func(v V) (V, bool) {
		return v, v == x
	}
}

// OneOf matches any value contained in xs.
func OneOf[V comparable](xs ...V) P[V, V] {
	return func(v V) (V, bool) {
		for _, x := range xs {
			if v == x {
				return v, true
			}
		}
		return v, false
	}
}

// Fold matches strings equal to s under Unicode case folding. The matched
// string is bound unchanged.
func Fold(s string) P[string, string] {
	folded := cases.Fold().String(s)
	return func(v string) (string, bool) {
		return v, cases.Fold().String(v) == folded
	}
}

// Pred matches values for which pred returns true. The matched value is
// bound. Pred is part of the structure check; use a guard for conditions
// spanning several bindings.
func Pred[V any](pred func(V) bool) P[V, V] {
	return func(v V) (V, bool) {
		return v, pred(v)
	}
}

// Or tries each pattern in turn and returns the binding of the first one
// matching. Patterns after the first match are not applied.
func Or[V, B any](ps ...P[V, B]) P[V, B] {
	return func(v V) (b B, ok bool) {
		for _, p := range ps {
			if b, ok = p(v); ok {
				return
			}
		}
		return b, false
	}
}

// Map transforms the binding of p with f. f is called only after p matched.
func Map[V, B, C any](p P[V, B], f func(B) C) P[V, C] {
	return func(v V) (c C, ok bool) {
		b, ok := p(v)
		if !ok {
			return c, false
		}
		return f(b), true
	}
}

// Then applies inner to the binding of outer. This is how nested patterns
// are formed when the nesting is not covered by Variant or Field.
func Then[V, M, B any](outer P[V, M], inner P[M, B]) P[V, B] {
	return func(v V) (b B, ok bool) {
		m, ok := outer(v)
		if !ok {
			return b, false
		}
		return inner(m)
	}
}
