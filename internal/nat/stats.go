package nat

// Size returns the number of nodes in n, counting n itself. The canonical
// tree for k has 2^k nodes.
func (n Nat) Size() uint64 {
	size := uint64(1)
	for _, e := range n.elems {
		size += e.Size()
	}
	return size
}

// Depth returns how deeply n nests: 0 for the empty set, otherwise one more
// than its deepest element.
func (n Nat) Depth() int {
	if len(n.elems) == 0 {
		return 0
	}
	deepest := 0
	for _, e := range n.elems {
		if d := e.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}
