package cell

// Lifecycle hooks. Alternatives opt in by implementing them on the stored
// value; plain values fall back to Go assignment and reflect.DeepEqual.

// Cloner customises copy construction and copy assignment. CloneValue must
// return a value of the same type holding an independent copy.
type Cloner interface {
	CloneValue() any
}

// Destructor releases resources owned by an alternative when its cell
// discards it. A moved-out value is never destructed.
type Destructor interface {
	Destruct()
}

// Equaler customises structural equality. The argument is the other cell's
// stored value, of the same alternative type.
type Equaler interface {
	EqualValue(other any) bool
}
