package typelist

import (
	"reflect"
)

// List is an ordered, fixed sequence of alternative types. Indices follow
// declaration order. A List is immutable after New.
type List struct {
	types []reflect.Type
}

// New builds a List from types in declaration order. Distinctness is not
// enforced here; First always resolves to the first occurrence.
func New(types ...reflect.Type) List {
	ts := make([]reflect.Type, len(types))
	copy(ts, types)
	return List{types: ts}
}

// Length returns the number of alternatives in the list.
func (l List) Length() int {
	return len(l.types)
}

// At returns the type at index. Panics when index is out of range; an
// out-of-range index is a caller bug, never data.
func (l List) At(index int) reflect.Type {
	if index < 0 || index >= len(l.types) {
		panic("typelist: index is higher than length of type list")
	}
	return l.types[index]
}

// Has reports whether t occurs anywhere in the list.
func (l List) Has(t reflect.Type) bool {
	for _, lt := range l.types {
		if lt == t {
			return true
		}
	}
	return false
}

// First returns the index of the first occurrence of t. When t does not
// occur it returns Length(), one past the end; callers must guard with Has
// or compare against Length before using the result as an index.
func (l List) First(t reflect.Type) int {
	for i, lt := range l.types {
		if lt == t {
			return i
		}
	}
	return len(l.types)
}
