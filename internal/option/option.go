// Package option is a minimal optional-value type, adapted from the
// teacher corpus's github.com/npillmayer/fp/maybe package down to the
// two constructors and an accessor this module's Vector.Last needs.
// The teacher's Match/Matcher visitor API and its free AndThen/Map
// functions are not carried over: nothing in this core chains
// optional computations together, so that surface would be unused.
package option

// Option holds either a present value (Some) or nothing (None).
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the absent Option of type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and true, or the zero value and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}
