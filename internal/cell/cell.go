// Package cell provides the storage layer for tagged values: a single slot
// holding at most one live alternative at a time. The cell records nothing
// about which alternative (if any) is live; that bookkeeping belongs to the
// owner, and every primitive here trusts the owner's routing. None of these
// operations check liveness.
package cell

import (
	"reflect"
)

// Cell stores at most one live alternative. The zero Cell holds nothing.
type Cell struct {
	slot any
}

// Get reinterprets the live alternative as X.
// Precondition: the live alternative truly has type X. Violation panics.
func Get[X any](c *Cell) X {
	return c.slot.(X)
}

// Initialise constructs x into the cell.
// Precondition: the cell holds nothing live.
func Initialise[X any](c *Cell, x X) {
	c.slot = x
}

// Assign replaces the live alternative of type X in place.
// Precondition: an alternative of type X is live.
func Assign[X any](c *Cell, x X) {
	c.slot = x
}

// InitialiseCopy constructs a copy of other's live alternative into c,
// honoring the Cloner hook when the value implements it.
// Precondition: other is live, c is not.
func (c *Cell) InitialiseCopy(other *Cell) {
	c.slot = cloneOf(other.slot)
}

// InitialiseMove constructs c from other's live alternative by transferring
// the stored value. The owner decides what happens to other afterwards.
// Precondition: other is live, c is not.
func (c *Cell) InitialiseMove(other *Cell) {
	c.slot = other.slot
}

// Copy assigns other's live alternative over c's.
// Precondition: both cells hold a live alternative of the same type.
func (c *Cell) Copy(other *Cell) {
	c.slot = cloneOf(other.slot)
}

// Move assigns other's live alternative over c's by transfer.
// Precondition: both cells hold a live alternative of the same type.
func (c *Cell) Move(other *Cell) {
	c.slot = other.slot
}

// Destruct runs the Destructor hook of the live alternative, if implemented,
// and clears the slot.
// Precondition: an alternative is live.
func (c *Cell) Destruct() {
	if d, ok := c.slot.(Destructor); ok {
		d.Destruct()
	}
	c.slot = nil
}

// Release clears the slot without running the Destructor hook. Used after a
// move: the stored object now lives in another cell and must not be
// destructed here.
func (c *Cell) Release() {
	c.slot = nil
}

// IsEqual structurally compares the live alternatives of both cells, via the
// Equaler hook when implemented, else reflect.DeepEqual.
// Precondition: both cells hold a live alternative of the same type.
func (c *Cell) IsEqual(other *Cell) bool {
	if e, ok := c.slot.(Equaler); ok {
		return e.EqualValue(other.slot)
	}
	return reflect.DeepEqual(c.slot, other.slot)
}

func cloneOf(v any) any {
	if cl, ok := v.(Cloner); ok {
		return cl.CloneValue()
	}
	return v
}
