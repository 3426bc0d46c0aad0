package nat

import (
	"errors"
	"fmt"
)

// MaxDepth bounds the nesting Parse and FromList accept.
const MaxDepth = 10000

// ErrSyntax is wrapped by every error returned from Parse.
var ErrSyntax = errors.New("syntax error")

// Parse reads a tree written in set notation, as produced by Notation.
// Whitespace is ignored and commas between elements are optional, so
// "{{}, {{}}}" and "{ {} { {} } }" both denote 2.
//
// The result is taken as written and may not be canonical; use
// CheckedUint32 to validate it.
func Parse(s string) (Nat, error) {
	p := &parser{src: s}
	n, err := p.set(0)
	if err != nil {
		return Nat{}, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return Nat{}, p.errorf("unexpected %q after set", p.src[p.pos])
	}
	return n, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) set(depth int) (Nat, error) {
	if depth > MaxDepth {
		return Nat{}, p.errorf("nesting deeper than %d", MaxDepth)
	}
	p.skipSpace()
	if err := p.expect('{'); err != nil {
		return Nat{}, err
	}

	var elems []Nat
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return Nat{}, p.errorf("unterminated set")
		}
		switch p.src[p.pos] {
		case '}':
			p.pos++
			return Nat{elems: elems}, nil
		case ',':
			if len(elems) == 0 {
				return Nat{}, p.errorf("unexpected ','")
			}
			p.pos++
		}
		e, err := p.set(depth + 1)
		if err != nil {
			return Nat{}, err
		}
		elems = append(elems, e)
	}
}

func (p *parser) expect(c byte) error {
	if p.pos >= len(p.src) {
		return p.errorf("expected %q, got end of input", c)
	}
	if p.src[p.pos] != c {
		return p.errorf("expected %q, got %q", c, p.src[p.pos])
	}
	p.pos++
	return nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}
