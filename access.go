package variant

import (
	"reflect"

	"github.com/brickingsoft/errors"
	"github.com/rawbytedev/variant/internal/cell"
	"github.com/rawbytedev/variant/pkg/option"
)

// Is reports whether X is the currently active alternative. For nullable
// variants, Is[None] reports the empty state. A type outside the alternative
// list is never active.
func Is[X any](v *Variant) bool {
	t := reflect.TypeFor[X]()
	if t == noneType {
		return v.nullable && v.IsEmpty()
	}
	idx, ok := v.sig.first(t)
	return ok && v.active == idx
}

// Get returns the live alternative when X is active, and ErrBadAccess
// otherwise. The error carries the requested and the active alternative.
func Get[X any](v *Variant) (X, error) {
	t := reflect.TypeFor[X]()
	idx, ok := v.sig.first(t)
	if !ok {
		var zero X
		return zero, errors.From(ErrUnknownAlternative,
			errors.WithMeta(errMetaTypeKey, t.String()))
	}
	if v.active != idx {
		var zero X
		return zero, errors.From(ErrBadAccess,
			errors.WithMeta(errMetaWantKey, t.String()),
			errors.WithMeta(errMetaActiveKey, v.activeName()))
	}
	return cell.Get[X](&v.values), nil
}

// GetUnsafe returns the live alternative without checking.
// Precondition (unchecked): X is the active alternative. Violation panics on
// the underlying assert; it is not a reported error.
func GetUnsafe[X any](v *Variant) X {
	return cell.Get[X](&v.values)
}

// TryGet returns Some with the live alternative when X is active, and None
// otherwise.
func TryGet[X any](v *Variant) option.Option[X] {
	if !Is[X](v) {
		return option.None[X]()
	}
	return option.Some(cell.Get[X](&v.values))
}

func (v *Variant) activeName() string {
	if v.IsEmpty() {
		return "none"
	}
	return v.sig.At(v.active).String()
}
