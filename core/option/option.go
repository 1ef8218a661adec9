package option

import (
	"errors"
	"fmt"

	"github.com/npillmayer/extract/core"
)

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")

// MaybeOption labels the two states of an optional value.
type MaybeOption int

const (
	None MaybeOption = iota
	Some
)

func (m MaybeOption) String() string {
	if m == Some {
		return "Some"
	}
	return "None"
}

// Type is a type for optional values of type T.
// The zero value is an unset optional.
type Type[T any] struct {
	value T
	set   bool
}

// Something creates an optional with value x.
func Something[T any](x T) Type[T] {
	return Type[T]{value: x, set: true}
}

// Nothing creates an unset optional.
func Nothing[T any]() Type[T] {
	return Type[T]{}
}

// IsNone returns true if o is unset.
func (o Type[T]) IsNone() bool {
	return !o.set
}

// IsSome returns true if o carries a value.
func (o Type[T]) IsSome() bool {
	return o.set
}

// State returns Some or None, depending on o.
func (o Type[T]) State() MaybeOption {
	if o.set {
		return Some
	}
	return None
}

// Unwrap returns o's value and a flag, in comma-ok style.
// For an unset o the zero value of T is returned.
func (o Type[T]) Unwrap() (T, bool) {
	return o.value, o.set
}

// Get returns o's value. If o is unset, an error with code core.EMISSING is
// returned.
func (o Type[T]) Get() (T, error) {
	if !o.set {
		var zero T
		return zero, core.Error(core.EMISSING, "optional %T is unset", zero)
	}
	return o.value, nil
}

// IsUnset returns true if err has been returned for accessing an unset
// optional, see Get.
func IsUnset(err error) bool {
	return err != nil && core.Code(err) == core.EMISSING
}

// Expect returns o's value and panics with msg if o is unset.
func (o Type[T]) Expect(msg string) T {
	if !o.set {
		panic(core.WrapError(ErrCannotMatchUnsetValue, core.EMISSING, msg))
	}
	return o.value
}

// UnwrapOr returns o's value, or x if o is unset.
func (o Type[T]) UnwrapOr(x T) T {
	if !o.set {
		return x
	}
	return o.value
}

// Or returns o if it is set, other otherwise.
func (o Type[T]) Or(other Type[T]) Type[T] {
	if o.set {
		return o
	}
	return other
}

// OrElse returns o if it is set. Otherwise f is called and its result is
// returned. f is not called for a set o.
func (o Type[T]) OrElse(f func() Type[T]) Type[T] {
	if o.set {
		return o
	}
	return f()
}

func (o Type[T]) String() string {
	if !o.set {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Equal compares two optionals of a comparable type. Two unset optionals are
// equal.
func Equal[T comparable](a, b Type[T]) bool {
	if a.set != b.set {
		return false
	}
	return !a.set || a.value == b.value
}

// Map applies f to the value of o, if set. f is not called for an unset o.
func Map[T, U any](o Type[T], f func(T) U) Type[U] {
	if !o.set {
		return Nothing[U]()
	}
	return Something(f(o.value))
}

// FlatMap applies f to the value of o, if set, and returns f's result.
func FlatMap[T, U any](o Type[T], f func(T) Type[U]) Type[U] {
	if !o.set {
		return Nothing[U]()
	}
	return f(o.value)
}

// --- Matching --------------------------------------------------------------

// Maybe is a type used for matching of optional types.
// Match will call Some if a value is set and None if it is unset.
// Either of them may be nil, in which case matching an optional in the
// respective state will result in an error.
type Maybe[T, R any] struct {
	Some func(T) R
	None func() R
}

// Match will do a standard matching of o against choices.
//
// If o is unset and choices has no None case, ErrCannotMatchUnsetValue is
// returned. If o is set and choices has no Some case, ErrNoSuchMatchPattern
// is returned.
func Match[T, R any](o Type[T], choices Maybe[T, R]) (value R, err error) {
	tracer().Debugf("Match(%T) for %v", choices, o)
	if !o.set {
		if choices.None == nil {
			return value, ErrCannotMatchUnsetValue
		}
		tracer().Debugf("o is None")
		return choices.None(), nil
	}
	if choices.Some == nil {
		tracer().Errorf("no Some case for %v", o)
		return value, ErrNoSuchMatchPattern
	}
	value = choices.Some(o.value)
	tracer().Debugf("===> return %v (%T)", value, value)
	return value, nil
}
