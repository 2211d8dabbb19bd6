package deriving

import (
	"fmt"

	"github.com/fernlang/fern/internal/ast"
	"github.com/fernlang/fern/internal/config"
	"github.com/fernlang/fern/internal/diagnostics"
	"github.com/fernlang/fern/internal/symbols"
	"github.com/fernlang/fern/internal/token"
	"github.com/fernlang/fern/internal/typesystem"
)

// Checker types an expression tree against an expected type. The body
// synthesizer consumes it as an external service: a derived factory
// whose type disagrees with the concrete result surfaces here as an
// ordinary type error.
type Checker interface {
	Check(expr ast.Expression, expected typesystem.Type, scope *symbols.SymbolTable) *diagnostics.DiagnosticError
}

// Materialize produces the body for one pending instance. Fresh
// type-parameter symbols are scoped to the new definition; the stored
// signature is instantiated with them to obtain the concrete result
// type, and the body selects the derived factory from the result
// class's companion value, checked against that concrete result.
func (s *Session) Materialize(pending *PendingInstance, check Checker, scope *symbols.SymbolTable) (*ast.GivenDeclaration, *diagnostics.DiagnosticError) {
	sig := pending.Signature

	var typeParams []*ast.Identifier
	if forall, ok := sig.(typesystem.TForall); ok {
		subst := make(typesystem.Subst, len(forall.Vars))
		typeParams = make([]*ast.Identifier, len(forall.Vars))
		for i, v := range forall.Vars {
			fresh := typesystem.TVar{Name: s.freshName(v.Name), KindVal: v.Kind()}
			subst[v.Name] = fresh
			typeParams[i] = &ast.Identifier{
				Token: token.Token{Type: token.IDENT, Lexeme: fresh.Name},
				Value: fresh.Name,
				Kind:  fresh.Kind(),
			}
		}
		sig = forall.Type.Apply(subst)
	}

	var evidenceParams []*ast.Parameter
	result := sig
	if fn, ok := sig.(typesystem.TFunc); ok {
		evidenceParams = make([]*ast.Parameter, len(fn.Params))
		for i, p := range fn.Params {
			name := fmt.Sprintf("ev%d", i)
			evidenceParams[i] = &ast.Parameter{
				Token: token.Token{Type: token.IDENT, Lexeme: name},
				Name:  &ast.Identifier{Token: token.Token{Type: token.IDENT, Lexeme: name}, Value: name},
				Type:  p,
			}
		}
		result = fn.ReturnType
	}

	head, ok := typesystem.HeadConstructor(result)
	if !ok {
		return nil, diagnostics.NewError(
			diagnostics.ErrD005,
			pending.Token,
			fmt.Sprintf("result type %s of %s has no class head", result, pending.Name),
		)
	}

	body := &ast.SelectExpression{
		Token: pending.Token,
		Receiver: &ast.Identifier{
			Token: token.Token{Type: token.IDENT_UPPER, Lexeme: head.Name},
			Value: head.Name,
		},
		Member: &ast.Identifier{
			Token: token.Token{Type: token.IDENT, Lexeme: config.DerivedFactoryName},
			Value: config.DerivedFactoryName,
		},
	}

	if err := check.Check(body, result, scope); err != nil {
		return nil, err
	}

	s.Declaring.Members.MarkMaterialized(pending.Name)

	return &ast.GivenDeclaration{
		Token:          pending.Token,
		Name:           &ast.Identifier{Token: pending.Token, Value: pending.Name},
		TypeParams:     typeParams,
		EvidenceParams: evidenceParams,
		ResultType:     result,
		Body:           body,
		Synthetic:      true,
	}, nil
}

// MaterializeAll runs the body phase over every pending instance in
// registration order. Each instance owns its fresh parameters; a
// failure skips only that instance.
func (s *Session) MaterializeAll(check Checker, scope *symbols.SymbolTable) ([]*ast.GivenDeclaration, []*diagnostics.DiagnosticError) {
	var defs []*ast.GivenDeclaration
	var errors []*diagnostics.DiagnosticError
	for _, pending := range s.pending {
		def, err := s.Materialize(pending, check, scope)
		if err != nil {
			errors = append(errors, err)
			continue
		}
		defs = append(defs, def)
	}
	return defs, errors
}
