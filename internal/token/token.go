package token

import "fmt"

type TokenType string

const (
	IDENT       TokenType = "IDENT"       // value-level names (lowercase)
	IDENT_UPPER TokenType = "IDENT_UPPER" // type-level names (uppercase)
	TYPE        TokenType = "TYPE"        // 'type' keyword
	DERIVING    TokenType = "DERIVING"    // 'deriving' keyword
	GIVEN       TokenType = "GIVEN"       // synthesized instance marker
	EOF         TokenType = "EOF"
)

// Token carries a lexeme and its source position.
// Synthesized nodes use the zero Token (line 0) or a position
// borrowed from the declaration that caused them.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

// Pos renders the position for diagnostics (1-based line:column).
func (t Token) Pos() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}

// IsZero reports whether the token carries no real source position.
func (t Token) IsZero() bool {
	return t.Line == 0 && t.Column == 0 && t.Lexeme == ""
}
