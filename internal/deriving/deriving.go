// Package deriving synthesizes typeclass instances for type
// declarations that carry a deriving clause. Processing is split into
// two phases: the signature phase classifies each requested class
// against the declaring type's shape, builds the instance signature and
// registers a placeholder symbol; the body phase instantiates each
// placeholder with fresh parameters and forwards to the conventional
// derived factory on the class companion.
package deriving

import (
	"fmt"

	"github.com/fernlang/fern/internal/ast"
	"github.com/fernlang/fern/internal/diagnostics"
	"github.com/fernlang/fern/internal/symbols"
	"github.com/fernlang/fern/internal/typesystem"
)

// ProcessRequests runs the signature phase over the deriving clause in
// written order. Each request is classified, shaped and registered
// independently: a failed request reports one diagnostic and does not
// stop the requests after it.
func (s *Session) ProcessRequests(requests []*ast.NamedType, scope *symbols.SymbolTable) []*diagnostics.DiagnosticError {
	var errors []*diagnostics.DiagnosticError
	for _, req := range requests {
		if _, err := s.processRequest(req, scope); err != nil {
			errors = append(errors, err)
		}
	}
	return errors
}

// processRequest handles one deriving entry: resolve the reference to
// its underlying class, classify the pair, build the signature, and
// register the placeholder. Never aborts the enclosing declaration.
func (s *Session) processRequest(req *ast.NamedType, scope *symbols.SymbolTable) (*PendingInstance, *diagnostics.DiagnosticError) {
	class, err := resolveRequest(req, scope)
	if err != nil {
		return nil, err
	}

	var sig typesystem.Type
	switch classify(s.Declaring, class) {
	case strategyNatural:
		sig = buildNatural(s.Declaring, class)
	case strategyPairedEquiv:
		sig = buildPairedEquiv(s.Declaring, class)
	case strategyPointwise:
		sig = buildPointwise(s.Declaring, class)
	case strategyErrNoParams:
		return nil, diagnostics.NewError(
			diagnostics.ErrD002,
			req.GetToken(),
			fmt.Sprintf("deriving %s: class has no type parameters", class.Written),
		)
	default:
		return nil, diagnostics.NewError(
			diagnostics.ErrD003,
			req.GetToken(),
			fmt.Sprintf("%s cannot be unified with the type argument of %s", s.Declaring.Name, class.Written),
		)
	}

	if _, kerr := typesystem.KindCheck(sig); kerr != nil {
		return nil, diagnostics.NewError(
			diagnostics.ErrA004,
			req.GetToken(),
			fmt.Sprintf("derived signature for %s is ill-kinded: %v", class.Written, kerr),
		)
	}

	return s.register(req, class, sig)
}
