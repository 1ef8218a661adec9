package pattern_test

import (
	"testing"

	"github.com/npillmayer/extract/core/pattern"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

type shape interface{ area() float64 }

type circle struct{ r float64 }
type rect struct{ w, h float64 }

func (c circle) area() float64 { return 3 * c.r * c.r }
func (r rect) area() float64   { return r.w * r.h }

func TestBasicPatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "extract.pattern")
	defer teardown()
	//
	n, ok := pattern.Bind[int]()(7)
	assert.True(t, ok)
	assert.Equal(t, 7, n)
	_, ok = pattern.Wildcard[string]()("anything")
	assert.True(t, ok)
	_, ok = pattern.Eq(3)(4)
	assert.False(t, ok)
	n, ok = pattern.Eq(3).Match(3)
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	_, ok = pattern.OneOf("a", "b")("b")
	assert.True(t, ok)
	_, ok = pattern.OneOf("a", "b")("c")
	assert.False(t, ok)
	_, ok = pattern.Pred(func(n int) bool { return n > 0 })(-1)
	assert.False(t, ok)
}

func TestFold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "extract.pattern")
	defer teardown()
	//
	s, ok := pattern.Fold("Ärger")("äRGER")
	assert.True(t, ok)
	assert.Equal(t, "äRGER", s)
	_, ok = pattern.Fold("bar")("baz")
	assert.False(t, ok)
}

func TestOrStopsAtFirstMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "extract.pattern")
	defer teardown()
	//
	applied := 0
	counting := pattern.Pred(func(int) bool {
		applied++
		return true
	})
	p := pattern.Or(pattern.Eq(1), counting, counting)
	_, ok := p(1)
	assert.True(t, ok)
	assert.Equal(t, 0, applied)
	_, ok = p(2)
	assert.True(t, ok)
	assert.Equal(t, 1, applied)
	_, ok = pattern.Or(pattern.Eq(1), pattern.Eq(2))(3)
	assert.False(t, ok)
}

func TestVariantAndFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "extract.pattern")
	defer teardown()
	//
	p := pattern.Variant[shape](pattern.All2(
		pattern.Field(func(r rect) float64 { return r.w }, pattern.Bind[float64]()),
		pattern.Field(func(r rect) float64 { return r.h }, pattern.Bind[float64]()),
	))
	wh, ok := p(rect{w: 2, h: 3})
	assert.True(t, ok)
	assert.Equal(t, pattern.Of2(2.0, 3.0), wh)
	_, ok = p(circle{r: 1})
	assert.False(t, ok)
	_, ok = p(nil)
	assert.False(t, ok)
	_, ok = pattern.Is[shape, circle]()(circle{})
	assert.True(t, ok)
}

func TestAllShortCircuits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "extract.pattern")
	defer teardown()
	//
	applied := 0
	counting := pattern.Pred(func(int) bool {
		applied++
		return true
	})
	p := pattern.All3(pattern.Eq(1), counting, counting)
	_, ok := p(2)
	assert.False(t, ok)
	assert.Equal(t, 0, applied)
	b, ok := p(1)
	assert.True(t, ok)
	assert.Equal(t, 2, applied)
	assert.Equal(t, "(1, 1, 1)", b.String())
	q := pattern.All4(pattern.Bind[int](), pattern.Eq(5), pattern.Wildcard[int](), pattern.Bind[int]())
	_, ok = q(4)
	assert.False(t, ok)
}

func TestTuples(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "extract.pattern")
	defer teardown()
	//
	p := pattern.T3(pattern.Bind[int](), pattern.Bind[int](), pattern.Wildcard[int]())
	r, ok := p(pattern.Of3(1, 2, 3))
	assert.True(t, ok)
	assert.Equal(t, 1, r.First)
	assert.Equal(t, 2, r.Second)
	q := pattern.T2(pattern.Eq("x"), pattern.Bind[bool]())
	_, ok = q(pattern.Of2("y", true))
	assert.False(t, ok)
	s := pattern.T4(pattern.Bind[int](), pattern.Bind[string](), pattern.Eq(1.5), pattern.Wildcard[rune]())
	u, ok := s(pattern.Of4(1, "a", 1.5, 'x'))
	assert.True(t, ok)
	assert.Equal(t, "(1, a, 1.5, {})", u.String())
}

func TestPointers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "extract.pattern")
	defer teardown()
	//
	r := &rect{w: 4, h: 1}
	w, ok := pattern.Deref(pattern.Field(func(r rect) float64 { return r.w }, pattern.Bind[float64]()))(r)
	assert.True(t, ok)
	assert.Equal(t, 4.0, w)
	_, ok = pattern.Deref(pattern.Bind[rect]())(nil)
	assert.False(t, ok)
	ref, ok := pattern.Ref[rect]()(r)
	assert.True(t, ok)
	ref.w = 10
	assert.Equal(t, 10.0, r.w, "Ref binds by reference")
	_, ok = pattern.Nil[rect]()(nil)
	assert.True(t, ok)
	_, ok = pattern.Nil[rect]()(r)
	assert.False(t, ok)
}

func TestSlices(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "extract.pattern")
	defer teardown()
	//
	p := pattern.Slice(pattern.Eq(1), pattern.Bind[int]())
	bs, ok := p([]int{1, 9})
	assert.True(t, ok)
	assert.Equal(t, []int{1, 9}, bs)
	_, ok = p([]int{1, 9, 3})
	assert.False(t, ok)
	h := pattern.Head(pattern.Bind[int](), pattern.Bind[[]int]())
	ht, ok := h([]int{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, 1, ht.First)
	assert.Equal(t, []int{2, 3}, ht.Second)
	_, ok = h(nil)
	assert.False(t, ok)
}

func TestMapThen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "extract.pattern")
	defer teardown()
	//
	called := false
	p := pattern.Map(pattern.Eq(2), func(n int) int {
		called = true
		return n * n
	})
	_, ok := p(3)
	assert.False(t, ok)
	assert.False(t, called)
	sq, ok := p(2)
	assert.True(t, ok)
	assert.Equal(t, 4, sq)
	q := pattern.Then(pattern.Variant[shape](pattern.Bind[circle]()),
		pattern.Field(func(c circle) float64 { return c.r }, pattern.Pred(func(r float64) bool { return r > 1 })))
	_, ok = q(circle{r: 0.5})
	assert.False(t, ok)
	rr, ok := q(circle{r: 2})
	assert.True(t, ok)
	assert.Equal(t, 2.0, rr)
}
