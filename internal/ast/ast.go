package ast

import (
	"github.com/fernlang/fern/internal/token"
	"github.com/fernlang/fern/internal/typesystem"
)

// TokenProvider is an interface for any AST node that can provide its
// primary token. This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Statement is a Node that represents a declaration or statement.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
}

// TypeExpr is a Node that represents a type-level expression.
type TypeExpr interface {
	Node
	typeNode()
}

// Identifier names a value, type, or class.
type Identifier struct {
	Token token.Token
	Value string
	Kind  typesystem.Kind // Explicit kind annotation (e.g. f: * -> *), nil if absent
}

func (i *Identifier) expressionNode()        {}
func (i *Identifier) TokenLiteral() string   { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token  { return i.Token }
func (i *Identifier) String() string         { return i.Value }

// NamedType is a reference to a named type, possibly applied:
// List, Option<a>, Result<e, a>.
type NamedType struct {
	Token token.Token
	Name  *Identifier
	Args  []TypeExpr
}

func (nt *NamedType) typeNode()             {}
func (nt *NamedType) TokenLiteral() string  { return nt.Token.Lexeme }
func (nt *NamedType) GetToken() token.Token {
	if nt == nil {
		return token.Token{}
	}
	return nt.Token
}

// SelectExpression selects a member from a receiver: Equiv.derived.
type SelectExpression struct {
	Token    token.Token
	Receiver Expression
	Member   *Identifier
}

func (se *SelectExpression) expressionNode()       {}
func (se *SelectExpression) TokenLiteral() string  { return se.Token.Lexeme }
func (se *SelectExpression) GetToken() token.Token { return se.Token }

// Parameter is a typed value parameter of a synthesized instance:
// the evidence the instance requires.
type Parameter struct {
	Token token.Token
	Name  *Identifier
	Type  typesystem.Type
}

func (p *Parameter) GetToken() token.Token { return p.Token }
