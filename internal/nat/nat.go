package nat

// Nat is a set tree. The zero value is the empty set, i.e. the number 0.
//
// A Nat never shares its elements with a caller: Set copies its arguments
// and Elems returns a fresh slice, so a tree cannot be modified or made to
// contain itself once built.
type Nat struct {
	elems []Nat
}

// Empty returns the empty set.
func Empty() Nat { return Nat{} }

// Set returns the set holding elems in the given order. Set() is Empty().
func Set(elems ...Nat) Nat {
	return Nat{elems: cloneAll(elems)}
}

// IsEmpty reports whether n is the empty set.
func (n Nat) IsEmpty() bool { return len(n.elems) == 0 }

// Len returns the number of immediate elements of n.
func (n Nat) Len() int { return len(n.elems) }

// Elem returns the i-th element of n. It panics if i is out of range.
func (n Nat) Elem(i int) Nat { return n.elems[i] }

// Elems returns the immediate elements of n. The slice is a copy and may be
// modified by the caller.
func (n Nat) Elems() []Nat {
	if len(n.elems) == 0 {
		return nil
	}
	out := make([]Nat, len(n.elems))
	copy(out, n.elems)
	return out
}

// Equal reports whether n and o have the same structure: both empty, or the
// same number of elements with pairwise equal elements in the same order.
func (n Nat) Equal(o Nat) bool {
	if len(n.elems) != len(o.elems) {
		return false
	}
	for i := range n.elems {
		if !n.elems[i].Equal(o.elems[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of n that shares no storage with it.
func (n Nat) Clone() Nat {
	return Nat{elems: cloneAll(n.elems)}
}

// cloneAll deep-copies elems. An empty input yields nil so that zero has a
// single representation.
func cloneAll(elems []Nat) []Nat {
	if len(elems) == 0 {
		return nil
	}
	out := make([]Nat, len(elems))
	for i, e := range elems {
		out[i] = e.Clone()
	}
	return out
}
