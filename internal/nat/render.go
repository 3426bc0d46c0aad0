package nat

import (
	"bufio"
	"io"
	"strings"
)

// String renders n as an indented diagram, one line per set:
//
//	{}
//	|->{}
//	|->{}
//	|  |->{}
//
// The first line is the root. Each element follows its parent in pre-order,
// prefixed by "|", one "  |" per nesting level below the root's elements, and
// "->". The empty set renders as "{}" with no newline; otherwise every line,
// including the last, ends in a newline.
func (n Nat) String() string {
	var b strings.Builder
	_ = n.Render(&b) // strings.Builder never fails
	return b.String()
}

// Render writes the diagram produced by String to w. If w is a
// *bufio.Writer it is written to directly and flushed before Render returns,
// including anything the caller had buffered in it.
func (n Nat) Render(w io.Writer) error {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	if n.IsEmpty() {
		bw.WriteString("{}")
		return bw.Flush()
	}
	bw.WriteString("{}\n")
	renderElems(bw, n.elems, 0)
	return bw.Flush()
}

func renderElems(w *bufio.Writer, elems []Nat, depth int) {
	for _, e := range elems {
		w.WriteString("|")
		for i := 0; i < depth; i++ {
			w.WriteString("  |")
		}
		w.WriteString("->{}\n")
		renderElems(w, e.elems, depth+1)
	}
}

// Notation renders n in set notation, e.g. "{{}, {{}}}" for 2.
func (n Nat) Notation() string {
	var b strings.Builder
	writeNotation(&b, n)
	return b.String()
}

func writeNotation(b *strings.Builder, n Nat) {
	b.WriteByte('{')
	for i, e := range n.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		writeNotation(b, e)
	}
	b.WriteByte('}')
}
