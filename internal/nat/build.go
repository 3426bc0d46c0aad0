package nat

// FromUint32 returns the canonical tree for n.
//
// FromUint32(0) is Empty(); otherwise the result has n elements and the i-th
// is FromUint32(i). See the package documentation for the cost.
func FromUint32(n uint32) Nat {
	return Nat{elems: ordinal(n)}
}

// ordinal returns the elements of n: the elements of n-1 followed by a fresh
// copy of n-1 itself.
func ordinal(n uint32) []Nat {
	if n == 0 {
		return nil
	}
	prev := ordinal(n - 1)
	return append(prev, Nat{elems: cloneAll(prev)})
}

// Succ returns n ∪ {n}, the successor of n.
func Succ(n Nat) Nat {
	return Nat{elems: append(cloneAll(n.elems), n.Clone())}
}
