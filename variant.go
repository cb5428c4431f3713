// Package variant implements a closed, type-safe sum type: a value holding
// exactly one live object drawn from a fixed alternative list, addressed by
// an active index. A nullable variant additionally admits an explicit empty
// state. The storage cell and the index bookkeeping are split so the cell
// never checks anything; this package routes every operation.
package variant

import (
	"reflect"

	"github.com/brickingsoft/errors"
	"github.com/rawbytedev/variant/internal/cell"
)

// None is the empty sentinel. Only nullable variants accept it: construction
// via MakeNullable, assignment via Assign, querying via Is.
type None struct{}

var noneType = reflect.TypeFor[None]()

// Variant pairs a storage cell with the index of the currently live
// alternative. active == sig.Length() means no alternative is live, which a
// non-nullable variant never exposes (it only reaches that state through
// Destroy, after which it is spent).
//
// A Variant is a plain single-threaded value; concurrent mutation of one
// instance must be serialized by the caller.
type Variant struct {
	sig      Signature
	active   int
	nullable bool
	values   cell.Cell
}

// Make builds a non-nullable variant holding x. Fails when X is not one of
// the signature's alternatives.
func Make[X any](x X, sig Signature) (*Variant, error) {
	return construct(x, sig, false)
}

// MakeNullable builds a nullable variant holding x. Passing None{} yields an
// empty variant, same as Empty.
func MakeNullable[X any](x X, sig Signature) (*Variant, error) {
	if reflect.TypeFor[X]() == noneType {
		return Empty(sig), nil
	}
	return construct(x, sig, true)
}

// Empty builds a nullable variant with no live alternative.
func Empty(sig Signature) *Variant {
	return &Variant{sig: sig, active: sig.Length(), nullable: true}
}

func construct[X any](x X, sig Signature, nullable bool) (*Variant, error) {
	t := reflect.TypeFor[X]()
	idx, ok := sig.first(t)
	if !ok {
		return nil, errors.From(ErrUnknownAlternative,
			errors.WithMeta(errMetaTypeKey, t.String()))
	}
	v := &Variant{sig: sig, active: idx, nullable: nullable}
	cell.Initialise(&v.values, x)
	return v, nil
}

// none is the active index denoting the empty state.
func (v *Variant) none() int {
	return v.sig.Length()
}

// IsEmpty reports whether no alternative is currently live.
func (v *Variant) IsEmpty() bool {
	return v.active == v.none()
}

// Nullable reports whether v admits the empty state.
func (v *Variant) Nullable() bool {
	return v.nullable
}

// Signature returns the declared alternative list.
func (v *Variant) Signature() Signature {
	return v.sig
}

// ActiveType returns the type of the live alternative, or false when empty.
func (v *Variant) ActiveType() (reflect.Type, bool) {
	if v.IsEmpty() {
		return nil, false
	}
	return v.sig.At(v.active), true
}

// Clone copy-constructs a new variant from v. A Cloner alternative is deep
// copied; anything else is copied by Go assignment.
func (v *Variant) Clone() *Variant {
	w := &Variant{sig: v.sig, active: v.active, nullable: v.nullable}
	if !v.IsEmpty() {
		w.values.InitialiseCopy(&v.values)
	}
	return w
}

// Take move-constructs a new variant from v, transferring the stored value.
// A nullable v is left empty; the moved value is not destructed, it changed
// owner. A non-nullable v keeps its alternative live (copy-like move) and
// stays destroyable exactly once.
func (v *Variant) Take() *Variant {
	w := &Variant{sig: v.sig, active: v.active, nullable: v.nullable}
	if !v.IsEmpty() {
		w.values.InitialiseMove(&v.values)
		if v.nullable {
			v.values.Release()
			v.active = v.none()
		}
	}
	return w
}

// CopyFrom copy-assigns other into v. Both variants must share the same
// signature and nullability.
func (v *Variant) CopyFrom(other *Variant) error {
	if err := v.match(other); err != nil {
		return err
	}
	switch {
	case v.IsEmpty() && other.IsEmpty():
	case v.IsEmpty():
		v.values.InitialiseCopy(&other.values)
	case other.IsEmpty():
		v.values.Destruct()
	case v.active == other.active:
		v.values.Copy(&other.values)
	default:
		v.values.Destruct()
		v.values.InitialiseCopy(&other.values)
	}
	v.active = other.active
	return nil
}

// MoveFrom move-assigns other into v. Both variants must share the same
// signature and nullability. A nullable other is emptied afterwards
// regardless of which case fired.
func (v *Variant) MoveFrom(other *Variant) error {
	if err := v.match(other); err != nil {
		return err
	}
	switch {
	case v.IsEmpty() && other.IsEmpty():
	case v.IsEmpty():
		v.values.InitialiseMove(&other.values)
	case other.IsEmpty():
		v.values.Destruct()
	case v.active == other.active:
		v.values.Move(&other.values)
	default:
		v.values.Destruct()
		v.values.InitialiseMove(&other.values)
	}
	v.active = other.active
	if !other.IsEmpty() && other.nullable {
		other.values.Release()
		other.active = other.none()
	}
	return nil
}

// Assign sets v to hold x. An empty v constructs, a v already holding an X
// assigns in place, a v holding another alternative destructs it first.
// Assigning None{} is AssignEmpty.
func Assign[X any](v *Variant, x X) error {
	t := reflect.TypeFor[X]()
	if t == noneType {
		return v.AssignEmpty()
	}
	idx, ok := v.sig.first(t)
	if !ok {
		return errors.From(ErrUnknownAlternative,
			errors.WithMeta(errMetaTypeKey, t.String()))
	}
	switch {
	case v.IsEmpty():
		cell.Initialise(&v.values, x)
	case v.active == idx:
		cell.Assign(&v.values, x)
	default:
		v.values.Destruct()
		cell.Initialise(&v.values, x)
	}
	v.active = idx
	return nil
}

// AssignEmpty destructs the live alternative, if any, and leaves v empty.
// Idempotent. Fails on non-nullable variants.
func (v *Variant) AssignEmpty() error {
	if !v.nullable {
		return errors.From(ErrNotNullable)
	}
	if !v.IsEmpty() {
		v.values.Destruct()
		v.active = v.none()
	}
	return nil
}

// Destroy destructs the live alternative, if any. Idempotent. A destroyed
// non-nullable variant is spent: checked accessors report bad access from
// then on.
func (v *Variant) Destroy() {
	if !v.IsEmpty() {
		v.values.Destruct()
		v.active = v.none()
	}
}

func (v *Variant) match(other *Variant) error {
	if !v.sig.equal(other.sig) || v.nullable != other.nullable {
		return errors.From(ErrSignatureMismatch)
	}
	return nil
}
