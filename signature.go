package variant

import (
	"reflect"

	"github.com/brickingsoft/errors"
	"github.com/rawbytedev/variant/internal/typelist"
)

// Signature declares the ordered alternative list of a Variant. Lookups are
// resolved once at construction and cached, so every later operation routes
// by map hit instead of a list walk.
type Signature struct {
	list  typelist.List
	index map[reflect.Type]int
}

// Types builds a Signature from an ordered list of alternative types.
// Types must be distinct.
func Types(types ...reflect.Type) (Signature, error) {
	list := typelist.New(types...)
	index := make(map[reflect.Type]int, list.Length())
	for i := 0; i < list.Length(); i++ {
		t := list.At(i)
		if first := list.First(t); first != i {
			return Signature{}, errors.From(ErrDuplicateAlternative,
				errors.WithMeta(errMetaTypeKey, t.String()))
		}
		index[t] = i
	}
	return Signature{list: list, index: index}, nil
}

// MustTypes is Types, panicking on duplicates. Meant for signatures declared
// as fixed literals.
func MustTypes(types ...reflect.Type) Signature {
	s, err := Types(types...)
	if err != nil {
		panic(err)
	}
	return s
}

// Types2 declares a two-alternative signature.
func Types2[T0, T1 any]() Signature {
	return MustTypes(reflect.TypeFor[T0](), reflect.TypeFor[T1]())
}

// Types3 declares a three-alternative signature.
func Types3[T0, T1, T2 any]() Signature {
	return MustTypes(reflect.TypeFor[T0](), reflect.TypeFor[T1](), reflect.TypeFor[T2]())
}

// Types4 declares a four-alternative signature.
func Types4[T0, T1, T2, T3 any]() Signature {
	return MustTypes(reflect.TypeFor[T0](), reflect.TypeFor[T1](),
		reflect.TypeFor[T2](), reflect.TypeFor[T3]())
}

// Length returns the number of alternatives.
func (s Signature) Length() int {
	return s.list.Length()
}

// At returns the alternative type at index.
func (s Signature) At(index int) reflect.Type {
	return s.list.At(index)
}

// Has reports whether t is one of the alternatives.
func (s Signature) Has(t reflect.Type) bool {
	_, ok := s.index[t]
	return ok
}

// first returns the cached index of t and whether t is an alternative.
func (s Signature) first(t reflect.Type) (int, bool) {
	i, ok := s.index[t]
	return i, ok
}

func (s Signature) equal(other Signature) bool {
	if s.list.Length() != other.list.Length() {
		return false
	}
	for i := 0; i < s.list.Length(); i++ {
		if s.list.At(i) != other.list.At(i) {
			return false
		}
	}
	return true
}
