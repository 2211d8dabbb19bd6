package deriving

import (
	"fmt"

	"github.com/fernlang/fern/internal/ast"
	"github.com/fernlang/fern/internal/diagnostics"
	"github.com/fernlang/fern/internal/symbols"
	"github.com/fernlang/fern/internal/token"
	"github.com/fernlang/fern/internal/typesystem"
)

// DeclaringType describes the type that carries the deriving clause:
// its symbol, its ordered type parameters with kinds, its constructor
// eta-expanded over those parameters, and its member scope.
type DeclaringType struct {
	Name        string
	TypeParams  []typesystem.TVar
	Constructor typesystem.TCon
	Members     *symbols.SymbolTable
	Token       token.Token
}

// NewDeclaringType builds the descriptor for a type declaration and
// registers its type symbol in the enclosing scope. The member scope is
// enclosed in the given scope so instance registration is visible to
// later name resolution.
func NewDeclaringType(decl *ast.TypeDeclarationStatement, scope *symbols.SymbolTable) *DeclaringType {
	params := make([]typesystem.TVar, len(decl.TypeParameters))
	kinds := make([]typesystem.Kind, 0, len(decl.TypeParameters)+1)
	for i, p := range decl.TypeParameters {
		kind := p.Kind
		if kind == nil {
			kind = typesystem.Star
		}
		params[i] = typesystem.TVar{Name: p.Value, KindVal: kind}
		kinds = append(kinds, kind)
	}
	kinds = append(kinds, typesystem.Star)

	con := typesystem.TCon{Name: decl.Name.Value, KindVal: typesystem.MakeArrow(kinds...)}
	scope.DefineType(decl.Name.Value, con, "")

	return &DeclaringType{
		Name:        decl.Name.Value,
		TypeParams:  params,
		Constructor: con,
		Members:     symbols.NewEnclosedSymbolTable(scope, symbols.ScopeMember),
		Token:       decl.GetToken(),
	}
}

// EtaExpansion is the declaring type's own constructor, unapplied: the
// explicit type-constructor value over its declared parameters.
func (d *DeclaringType) EtaExpansion() typesystem.Type {
	return d.Constructor
}

// AppliedTo instantiates the constructor with the given arguments. With
// no arguments the bare constructor is returned unapplied.
func (d *DeclaringType) AppliedTo(args ...typesystem.Type) typesystem.Type {
	if len(args) == 0 {
		return d.Constructor
	}
	return typesystem.TApp{Constructor: d.Constructor, Args: args}
}

// AppliedToOwnParams instantiates the constructor with the declaring
// type's own parameters, unmodified.
func (d *DeclaringType) AppliedToOwnParams() typesystem.Type {
	args := make([]typesystem.Type, len(d.TypeParams))
	for i, p := range d.TypeParams {
		args[i] = p
	}
	return d.AppliedTo(args...)
}

// ClassDescriptor is a resolved capability class: the underlying class
// constructor, its ordered type parameters with kinds, and the reference
// name as written in the deriving clause.
type ClassDescriptor struct {
	Name       string // underlying class name
	Written    string // reference name as written (aliases kept distinct)
	Con        typesystem.TCon
	TypeParams []typesystem.TVar
	Token      token.Token
}

// resolveRequest types one deriving entry down to its underlying class.
// The reference must resolve, through any transparent proxies, to a
// capability class with a stable qualifying path.
func resolveRequest(req *ast.NamedType, scope *symbols.SymbolTable) (*ClassDescriptor, *diagnostics.DiagnosticError) {
	sym, ok := scope.Find(req.Name.Value)
	if !ok {
		return nil, diagnostics.NewError(
			diagnostics.ErrA001,
			req.GetToken(),
			fmt.Sprintf("undeclared identifier %s", req.Name.Value),
		)
	}

	if sym.Kind != symbols.ClassSymbol {
		return nil, diagnostics.NewError(
			diagnostics.ErrD001,
			req.GetToken(),
			fmt.Sprintf("%s is not a capability class", req.Name.Value),
		)
	}
	if !sym.IsStablePath {
		return nil, diagnostics.NewError(
			diagnostics.ErrD001,
			req.GetToken(),
			fmt.Sprintf("%s does not have a stable path", req.Name.Value),
		)
	}

	underlying := typesystem.UnwrapUnderlying(sym.Type)
	con, ok := underlying.(typesystem.TCon)
	if !ok {
		return nil, diagnostics.NewError(
			diagnostics.ErrD001,
			req.GetToken(),
			fmt.Sprintf("%s does not resolve to a class type", req.Name.Value),
		)
	}

	params, ok := scope.ClassParams(con.Name)
	if !ok {
		return nil, diagnostics.NewError(
			diagnostics.ErrD001,
			req.GetToken(),
			fmt.Sprintf("class %s has no registered parameter list", con.Name),
		)
	}

	return &ClassDescriptor{
		Name:       con.Name,
		Written:    req.Name.Value,
		Con:        con,
		TypeParams: params,
		Token:      req.GetToken(),
	}, nil
}
