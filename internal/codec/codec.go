package codec

import (
	"encoding/base64"
	"fmt"

	"github.com/shamaton/msgpack/v2"

	"vnat/internal/nat"
)

// node is the wire shape of a tree.
type node []node

func (w node) Len() int          { return len(w) }
func (w node) At(i int) nat.List { return w[i] }

// Marshal encodes n as nested msgpack arrays.
func Marshal(n nat.Nat) ([]byte, error) {
	b, err := msgpack.Marshal(toNode(n))
	if err != nil {
		return nil, fmt.Errorf("encode tree: %w", err)
	}
	return b, nil
}

// Unmarshal decodes a tree written by Marshal. Empty arrays and nil both
// decode to the empty set. Input nested deeper than nat.MaxDepth fails with
// an error wrapping nat.ErrTooDeep. The tree is not validated.
func Unmarshal(b []byte) (nat.Nat, error) {
	var w node
	if err := msgpack.Unmarshal(b, &w); err != nil {
		return nat.Nat{}, fmt.Errorf("decode tree: %w", err)
	}
	n, err := nat.FromList(w)
	if err != nil {
		return nat.Nat{}, fmt.Errorf("decode tree: %w", err)
	}
	return n, nil
}

// EncodeString returns Marshal(n) as standard base64 without newlines.
func EncodeString(n nat.Nat) (string, error) {
	b, err := Marshal(n)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeString reverses EncodeString.
func DecodeString(s string) (nat.Nat, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nat.Nat{}, fmt.Errorf("decode base64: %w", err)
	}
	return Unmarshal(b)
}

func toNode(n nat.Nat) node {
	w := make(node, n.Len())
	for i := range w {
		w[i] = toNode(n.Elem(i))
	}
	return w
}
