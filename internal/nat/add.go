package nat

// Add returns the tree for the sum of a and b.
//
// The operand with more elements is used as the base (a on a tie) and is
// grown one successor at a time, once per element of the other operand. Each
// appended element is a snapshot of the list built so far. The result is
// canonical when both operands are; otherwise it is deterministic but
// meaningless.
//
// If either operand is empty the result is a copy of the other.
func Add(a, b Nat) Nat {
	switch {
	case a.IsEmpty():
		return b.Clone()
	case b.IsEmpty():
		return a.Clone()
	}

	base, steps := a, b.Len()
	if b.Len() > a.Len() {
		base, steps = b, a.Len()
	}

	elems := cloneAll(base.elems)
	for i := 0; i < steps; i++ {
		elems = append(elems, Nat{elems: cloneAll(elems)})
	}
	return Nat{elems: elems}
}
