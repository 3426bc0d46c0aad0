package nat

import (
	"errors"
	"fmt"
)

// ErrTooDeep is returned by FromList for input nested deeper than MaxDepth.
var ErrTooDeep = errors.New("tree nests too deeply")

// List is a read-only nested list, such as a decoded wire form of a tree.
type List interface {
	Len() int
	At(i int) List
}

// FromList converts l into a Nat, one element per list entry. Empty lists
// become the empty set. The result is built in place rather than through
// Set, so conversion is linear in the size of l. It is not validated.
func FromList(l List) (Nat, error) {
	return fromList(l, 0)
}

func fromList(l List, depth int) (Nat, error) {
	if depth > MaxDepth {
		return Nat{}, fmt.Errorf("%w: more than %d levels", ErrTooDeep, MaxDepth)
	}
	if l.Len() == 0 {
		return Nat{}, nil
	}
	elems := make([]Nat, l.Len())
	for i := range elems {
		e, err := fromList(l.At(i), depth+1)
		if err != nil {
			return Nat{}, err
		}
		elems[i] = e
	}
	return Nat{elems: elems}, nil
}
