// Package nat models natural numbers as von Neumann ordinals.
//
// Every number is a finite set of all smaller numbers:
//
//	0 = {}
//	1 = {0}       = { {} }
//	2 = {0, 1}    = { {}, { {} } }
//	3 = {0, 1, 2} = { {}, { {} }, { {}, { {} } } }
//
// A Nat is an immutable tree of such sets. Trees produced by FromUint32, Succ
// and Add are canonical: the i-th element of every node is the tree for i, so
// the value of a node is simply its element count.
//
// # Scaling
//
// The canonical tree for n holds 2^n nodes and nests n levels deep. Building,
// adding, cloning, rendering and validating all walk that structure with
// plain recursion, so values beyond a few dozen exhaust memory long before
// uint32 runs out. Nothing in this package bounds that cost; callers that
// take untrusted input must cap the values themselves.
package nat
