package nat

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedTree is matched by errors.Is for every tree rejected by
// CheckedUint32.
var ErrMalformedTree = errors.New("malformed tree")

// MalformedError describes the first node, in pre-order, that breaks the
// canonical shape.
type MalformedError struct {
	// Path holds the element indices leading from the root to the node.
	Path []int
	Want int // expected number of elements
	Got  int // actual number of elements
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%v: element %s has %d elements, want %d", ErrMalformedTree, formatPath(e.Path), e.Got, e.Want)
}

// Is reports whether target is ErrMalformedTree.
func (e *MalformedError) Is(target error) bool { return target == ErrMalformedTree }

// Uint32 returns the number n represents: its element count. It does not
// check that n is canonical.
func (n Nat) Uint32() uint32 { return uint32(len(n.elems)) }

// CheckedUint32 returns the number n represents after verifying that every
// node of n is canonical, i.e. that the i-th element of each node has
// exactly i elements. The first violation is reported as a *MalformedError.
//
// The check visits every node, so it costs as much as the tree is large.
func (n Nat) CheckedUint32() (uint32, error) {
	if uint64(len(n.elems)) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d elements do not fit in 32 bits", ErrMalformedTree, len(n.elems))
	}
	if err := validate(n, nil); err != nil {
		return 0, err
	}
	return n.Uint32(), nil
}

// validate walks n in pre-order. Element counts strictly shrink along
// any accepted path, so recursion depth never exceeds the root's value.
func validate(n Nat, path []int) error {
	for i, e := range n.elems {
		// full slice expression: siblings must not share a backing array
		p := append(path[:len(path):len(path)], i)
		if len(e.elems) != i {
			return &MalformedError{Path: p, Want: i, Got: len(e.elems)}
		}
		if err := validate(e, p); err != nil {
			return err
		}
	}
	return nil
}

func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = strconv.Itoa(p)
	}
	return "/" + strings.Join(parts, "/")
}
