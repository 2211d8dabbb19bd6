// Package checker provides the expression-against-expected-type service
// the body synthesizer consumes. It covers the tree shapes derivation
// produces: companion member selection and plain identifiers.
package checker

import (
	"fmt"

	"github.com/fernlang/fern/internal/ast"
	"github.com/fernlang/fern/internal/diagnostics"
	"github.com/fernlang/fern/internal/symbols"
	"github.com/fernlang/fern/internal/typesystem"
)

type TreeChecker struct{}

func New() *TreeChecker {
	return &TreeChecker{}
}

// Check types an expression tree against an expected type. The member's
// declared polytype is opened and matched one-way against the expected
// type; a conflict is reported at the expression's position.
func (c *TreeChecker) Check(expr ast.Expression, expected typesystem.Type, scope *symbols.SymbolTable) *diagnostics.DiagnosticError {
	actual, err := c.typeOf(expr, scope)
	if err != nil {
		return err
	}
	return checkAgainst(expr, actual, expected)
}

func (c *TreeChecker) typeOf(expr ast.Expression, scope *symbols.SymbolTable) (typesystem.Type, *diagnostics.DiagnosticError) {
	switch e := expr.(type) {
	case *ast.Identifier:
		sym, ok := scope.Find(e.Value)
		if !ok {
			return nil, diagnostics.NewError(
				diagnostics.ErrA001,
				e.GetToken(),
				fmt.Sprintf("undeclared identifier %s", e.Value),
			)
		}
		return sym.Type, nil

	case *ast.SelectExpression:
		receiver, ok := e.Receiver.(*ast.Identifier)
		if !ok {
			return nil, diagnostics.NewError(
				diagnostics.ErrA003,
				e.GetToken(),
				"selection receiver must be a named value",
			)
		}
		companion, ok := scope.Companion(receiver.Value)
		if !ok {
			return nil, diagnostics.NewError(
				diagnostics.ErrD005,
				e.GetToken(),
				fmt.Sprintf("class %s has no companion value", receiver.Value),
			)
		}
		member, ok := companion.Find(e.Member.Value)
		if !ok {
			return nil, diagnostics.NewError(
				diagnostics.ErrD005,
				e.GetToken(),
				fmt.Sprintf("companion of %s has no member %s", receiver.Value, e.Member.Value),
			)
		}
		return member.Type, nil

	default:
		return nil, diagnostics.NewError(
			diagnostics.ErrA003,
			expr.GetToken(),
			"cannot type expression",
		)
	}
}

func checkAgainst(expr ast.Expression, actual, expected typesystem.Type) *diagnostics.DiagnosticError {
	// Open the quantifier: its variables become the match's unknowns.
	pattern := actual
	if forall, ok := actual.(typesystem.TForall); ok {
		pattern = forall.Type
	}

	if _, err := typesystem.Match(pattern, expected); err != nil {
		return diagnostics.NewError(
			diagnostics.ErrA003,
			expr.GetToken(),
			fmt.Sprintf("expression has type %s, expected %s: %v", actual, expected, err),
		)
	}
	return nil
}
