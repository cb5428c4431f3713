// Package option carries a present-or-absent value without pointer
// nil-checking conventions.
package option

// Option holds either a value of T or nothing. The zero Option is absent.
type Option[T any] struct {
	ok    bool
	value T
}

// Some wraps a present value.
func Some[T any](value T) Option[T] {
	return Option[T]{ok: true, value: value}
}

// None is the absent Option for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Ok reports whether a value is present.
func (o Option[T]) Ok() bool {
	return o.ok
}

// Value returns the present value. Panics when absent.
func (o Option[T]) Value() T {
	if !o.ok {
		panic("option: not set")
	}
	return o.value
}

// ValueOr returns the present value, or fallback when absent.
func (o Option[T]) ValueOr(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}

// Unwrap returns the value and whether it is present.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.ok
}
