package variant

// Equal reports whether both variants are empty, or share the same active
// index with structurally equal live alternatives. Variants of different
// signatures or nullability are never equal.
func (v *Variant) Equal(other *Variant) bool {
	if v == nil || other == nil {
		return v == other
	}
	if !v.sig.equal(other.sig) || v.nullable != other.nullable {
		return false
	}
	if v.active != other.active {
		return false
	}
	if v.IsEmpty() {
		return true
	}
	return v.values.IsEqual(&other.values)
}
