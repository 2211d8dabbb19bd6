package diagnostics

import (
	"fmt"

	"github.com/fernlang/fern/internal/token"
)

type ErrorCode string

const (
	ErrA001 ErrorCode = "A001" // Undeclared identifier
	ErrA002 ErrorCode = "A002" // Duplicate declaration
	ErrA003 ErrorCode = "A003" // Type error
	ErrA004 ErrorCode = "A004" // Kind error

	ErrD001 ErrorCode = "D001" // Malformed derived type reference
	ErrD002 ErrorCode = "D002" // Derived class has no type parameters
	ErrD003 ErrorCode = "D003" // Declaring type cannot be unified with the class parameter
	ErrD004 ErrorCode = "D004" // Duplicate typeclass derivation
	ErrD005 ErrorCode = "D005" // Companion resolution failure
)

// DiagnosticError is a positioned, coded compiler diagnostic.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
}

func NewError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: message}
}

func (e *DiagnosticError) Error() string {
	if e.Token.IsZero() {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Token.Pos(), e.Message)
}

// Key identifies a diagnostic for deduplication by position and message.
func (e *DiagnosticError) Key() string {
	return fmt.Sprintf("%s|%s|%s", e.Code, e.Token.Pos(), e.Message)
}

// Collector accumulates diagnostics in report order, deduplicating
// exact repeats (same code, position and message).
type Collector struct {
	errors []*DiagnosticError
	seen   map[string]bool
}

func NewCollector() *Collector {
	return &Collector{seen: make(map[string]bool)}
}

func (c *Collector) Add(err *DiagnosticError) {
	if err == nil {
		return
	}
	key := err.Key()
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.errors = append(c.errors, err)
}

func (c *Collector) AddAll(errs []*DiagnosticError) {
	for _, err := range errs {
		c.Add(err)
	}
}

func (c *Collector) Errors() []*DiagnosticError {
	return c.errors
}

func (c *Collector) HasErrors() bool {
	return len(c.errors) > 0
}
