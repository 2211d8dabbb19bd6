package diagnostics

import (
	"testing"

	"github.com/fernlang/fern/internal/token"
)

func TestErrorFormatting(t *testing.T) {
	tok := token.Token{Type: token.IDENT_UPPER, Lexeme: "Show", Line: 4, Column: 12}
	err := NewError(ErrD004, tok, "duplicate typeclass derivation for Show")
	want := "[D004] 4:12: duplicate typeclass derivation for Show"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := NewError(ErrA003, token.Token{}, "cannot type expression")
	if got := bare.Error(); got != "[A003] cannot type expression" {
		t.Errorf("Error() = %q", got)
	}
}

func TestCollectorDeduplicates(t *testing.T) {
	tok := token.Token{Lexeme: "Box", Line: 2, Column: 6}
	c := NewCollector()
	c.Add(NewError(ErrA001, tok, "undeclared identifier Box"))
	c.Add(NewError(ErrA001, tok, "undeclared identifier Box"))
	c.Add(nil)
	c.Add(NewError(ErrA001, tok, "undeclared identifier Other"))

	if got := len(c.Errors()); got != 2 {
		t.Fatalf("errors = %d, want 2", got)
	}
	if !c.HasErrors() {
		t.Error("HasErrors() = false")
	}
}

func TestCollectorKeepsReportOrder(t *testing.T) {
	c := NewCollector()
	c.AddAll([]*DiagnosticError{
		NewError(ErrD002, token.Token{Line: 1, Column: 1}, "first"),
		NewError(ErrD003, token.Token{Line: 1, Column: 2}, "second"),
		NewError(ErrD002, token.Token{Line: 1, Column: 1}, "first"),
	})
	errs := c.Errors()
	if len(errs) != 2 || errs[0].Message != "first" || errs[1].Message != "second" {
		t.Errorf("errors = %v", errs)
	}
}
