package pattern

// Variant matches values of interface type V whose dynamic type is C, and
// applies inner to the narrowed value. V will usually be a sealed interface
// modelling a sum type, with C one of its variants.
//
// Type parameters C and B are inferred from inner:
//
//     pattern.Variant[Shape](pattern.Bind[Circle]())
//
func Variant[V, C, B any](inner P[C, B]) P[V, B] {
	return func(v V) (b B, ok bool) {
		c, ok := any(v).(C)
		if !ok {
			tracer().Debugf("variant mismatch: %T is not %T", v, c)
			return b, false
		}
		return inner(c)
	}
}

// Is matches values of interface type V whose dynamic type is C, without
// destructuring the variant any further.
func Is[V, C any]() P[V, Unit] {
	return func(v V) (Unit, bool) {
		_, ok := any(v).(C)
		return Unit{}, ok
	}
}

// Field selects a part of a value with get and applies inner to it.
func Field[S, F, B any](get func(S) F, inner P[F, B]) P[S, B] {
	return func(s S) (B, bool) {
		return inner(get(s))
	}
}

// Deref matches non-nil pointers and applies inner to the pointee.
// Bindings of inner refer to a copy of the pointee, unless inner binds the
// pointer itself through Then.
func Deref[S, B any](inner P[S, B]) P[*S, B] {
	return func(s *S) (b B, ok bool) {
		if s == nil {
			return b, false
		}
		return inner(*s)
	}
}

// Ref matches non-nil pointers and binds the pointer, i.e. it is a binding
// by reference.
func Ref[S any]() P[*S, *S] {
	return func(s *S) (*S, bool) {
		return s, s != nil
	}
}

// Nil matches nil pointers.
func Nil[S any]() P[*S, Unit] {
	return func(s *S) (Unit, bool) {
		return Unit{}, s == nil
	}
}

// Slice matches slices of exactly len(ps) elements, applying ps element-wise.
// All elements have to match; the bindings are collected in order.
func Slice[E, B any](ps ...P[E, B]) P[[]E, []B] {
	return func(es []E) ([]B, bool) {
		if len(es) != len(ps) {
			return nil, false
		}
		bs := make([]B, len(es))
		for i, p := range ps {
			b, ok := p(es[i])
			if !ok {
				return nil, false
			}
			bs[i] = b
		}
		return bs, true
	}
}

// Head matches non-empty slices, applying head to the first element and
// rest to the remaining elements.
func Head[E, H, R any](head P[E, H], rest P[[]E, R]) P[[]E, Tuple2[H, R]] {
	return func(es []E) (t Tuple2[H, R], ok bool) {
		if len(es) == 0 {
			return t, false
		}
		if t.First, ok = head(es[0]); !ok {
			return t, false
		}
		if t.Second, ok = rest(es[1:]); !ok {
			return t, false
		}
		return t, true
	}
}

// --- Destructuring of records ----------------------------------------------

// All2 applies two patterns to the same value. It matches if both of them
// match; the second one is not applied if the first one fails.
// It is typically used with Field to destructure several fields of a struct.
func All2[S, A, B any](pa P[S, A], pb P[S, B]) P[S, Tuple2[A, B]] {
	return func(s S) (t Tuple2[A, B], ok bool) {
		if t.First, ok = pa(s); !ok {
			return t, false
		}
		if t.Second, ok = pb(s); !ok {
			return t, false
		}
		return t, true
	}
}

// All3 applies three patterns to the same value, see All2.
func All3[S, A, B, C any](pa P[S, A], pb P[S, B], pc P[S, C]) P[S, Tuple3[A, B, C]] {
	return func(s S) (t Tuple3[A, B, C], ok bool) {
		if t.First, ok = pa(s); !ok {
			return t, false
		}
		if t.Second, ok = pb(s); !ok {
			return t, false
		}
		if t.Third, ok = pc(s); !ok {
			return t, false
		}
		return t, true
	}
}

// All4 applies four patterns to the same value, see All2.
func All4[S, A, B, C, D any](pa P[S, A], pb P[S, B], pc P[S, C], pd P[S, D]) P[S, Tuple4[A, B, C, D]] {
	return func(s S) (t Tuple4[A, B, C, D], ok bool) {
		if t.First, ok = pa(s); !ok {
			return t, false
		}
		if t.Second, ok = pb(s); !ok {
			return t, false
		}
		if t.Third, ok = pc(s); !ok {
			return t, false
		}
		if t.Fourth, ok = pd(s); !ok {
			return t, false
		}
		return t, true
	}
}
