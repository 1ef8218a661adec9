package pattern

import "fmt"

// --- Tuples ----------------------------------------------------------------

// Tuple2 is a pair of values. It is the binding type of All2 and T2 and may
// be used as an input type for tuple-shaped values.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Tuple3 is a triple of values.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple4 is a quadruple of values.
type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Of2 creates a Tuple2.
func Of2[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{a, b}
}

// Of3 creates a Tuple3.
func Of3[A, B, C any](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{a, b, c}
}

// Of4 creates a Tuple4.
func Of4[A, B, C, D any](a A, b B, c C, d D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{a, b, c, d}
}

func (t Tuple2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.First, t.Second)
}

func (t Tuple3[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}

func (t Tuple4[A, B, C, D]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", t.First, t.Second, t.Third, t.Fourth)
}

// --- Tuple patterns --------------------------------------------------------

// T2 destructures a Tuple2 position-wise.
func T2[A, B, X, Y any](pa P[A, X], pb P[B, Y]) P[Tuple2[A, B], Tuple2[X, Y]] {
	return func(t Tuple2[A, B]) (r Tuple2[X, Y], ok bool) {
		if r.First, ok = pa(t.First); !ok {
			return r, false
		}
		if r.Second, ok = pb(t.Second); !ok {
			return r, false
		}
		return r, true
	}
}

// T3 destructures a Tuple3 position-wise.
func T3[A, B, C, X, Y, Z any](pa P[A, X], pb P[B, Y], pc P[C, Z]) P[Tuple3[A, B, C], Tuple3[X, Y, Z]] {
	return func(t Tuple3[A, B, C]) (r Tuple3[X, Y, Z], ok bool) {
		if r.First, ok = pa(t.First); !ok {
			return r, false
		}
		if r.Second, ok = pb(t.Second); !ok {
			return r, false
		}
		if r.Third, ok = pc(t.Third); !ok {
			return r, false
		}
		return r, true
	}
}

// T4 destructures a Tuple4 position-wise.
func T4[A, B, C, D, W, X, Y, Z any](pa P[A, W], pb P[B, X], pc P[C, Y], pd P[D, Z]) P[Tuple4[A, B, C, D], Tuple4[W, X, Y, Z]] {
	return func(t Tuple4[A, B, C, D]) (r Tuple4[W, X, Y, Z], ok bool) {
		if r.First, ok = pa(t.First); !ok {
			return r, false
		}
		if r.Second, ok = pb(t.Second); !ok {
			return r, false
		}
		if r.Third, ok = pc(t.Third); !ok {
			return r, false
		}
		if r.Fourth, ok = pd(t.Fourth); !ok {
			return r, false
		}
		return r, true
	}
}
