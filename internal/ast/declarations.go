package ast

import (
	"github.com/fernlang/fern/internal/token"
	"github.com/fernlang/fern/internal/typesystem"
)

// TypeDeclarationStatement declares a data type, its parameters, its
// members, and an optional deriving clause.
//
//	type Pair<a, b> derives Show, Equiv { ... }
type TypeDeclarationStatement struct {
	Token          token.Token // the 'type' token
	Name           *Identifier
	TypeParameters []*Identifier
	Deriving       []*NamedType // requested capability classes, in written order
	Members        []Statement
}

func (tds *TypeDeclarationStatement) statementNode()        {}
func (tds *TypeDeclarationStatement) TokenLiteral() string  { return tds.Token.Lexeme }
func (tds *TypeDeclarationStatement) GetToken() token.Token { return tds.Token }

// GivenDeclaration is a synthesized instance member. Its signature was
// registered during the signature phase; TypeParams, EvidenceParams and
// Body are filled in when the body is materialized.
type GivenDeclaration struct {
	Token          token.Token
	Name           *Identifier
	TypeParams     []*Identifier
	EvidenceParams []*Parameter
	ResultType     typesystem.Type // concrete result after instantiation
	Body           Expression
	Synthetic      bool
}

func (gd *GivenDeclaration) statementNode()        {}
func (gd *GivenDeclaration) TokenLiteral() string  { return gd.Token.Lexeme }
func (gd *GivenDeclaration) GetToken() token.Token { return gd.Token }
