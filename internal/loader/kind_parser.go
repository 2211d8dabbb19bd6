package loader

import (
	"fmt"
	"strings"

	"github.com/fernlang/fern/internal/typesystem"
)

// ParseKind parses a kind annotation.
// Grammar:
//
//	Kind       ::= AtomicKind ("->" Kind)?
//	AtomicKind ::= "*" | "?" | "(" Kind ")"
//
// The empty string means the plain kind *.
func ParseKind(input string) (typesystem.Kind, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return typesystem.Star, nil
	}
	p := &kindParser{input: input}
	kind, err := p.parseKind()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("unexpected %q in kind %q", p.input[p.pos:], input)
	}
	return kind, nil
}

type kindParser struct {
	input string
	pos   int
}

func (p *kindParser) parseKind() (typesystem.Kind, error) {
	left, err := p.parseAtomicKind()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if strings.HasPrefix(p.input[p.pos:], "->") {
		p.pos += 2
		right, err := p.parseKind()
		if err != nil {
			return nil, fmt.Errorf("expected kind after '->': %w", err)
		}
		return typesystem.KArrow{Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *kindParser) parseAtomicKind() (typesystem.Kind, error) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("unexpected end of kind %q", p.input)
	}
	switch p.input[p.pos] {
	case '*':
		p.pos++
		return typesystem.Star, nil
	case '?':
		p.pos++
		return typesystem.AnyKind, nil
	case '(':
		p.pos++
		kind, err := p.parseKind()
		if err != nil {
			return nil, err
		}
		p.skipSpaces()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return nil, fmt.Errorf("missing ')' in kind %q", p.input)
		}
		p.pos++
		return kind, nil
	default:
		return nil, fmt.Errorf("unexpected %q in kind %q", p.input[p.pos:], p.input)
	}
}

func (p *kindParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}
