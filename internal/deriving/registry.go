package deriving

import (
	"fmt"

	"github.com/fernlang/fern/internal/ast"
	"github.com/fernlang/fern/internal/config"
	"github.com/fernlang/fern/internal/diagnostics"
	"github.com/fernlang/fern/internal/typesystem"
)

// InstanceName is the deterministic name of the synthesized instance
// for a class reference as written. Two requests naming the same
// underlying class through different aliases produce distinct names.
func InstanceName(written string) string {
	return config.GivenPrefix + written
}

// register checks the computed name against the declaring type's member
// scope, and if clear creates the placeholder symbol and appends a
// pending instance. The symbol is inserted immediately so later
// requests and ordinary resolution in the same unit already see it.
func (s *Session) register(req *ast.NamedType, class *ClassDescriptor, sig typesystem.Type) (*PendingInstance, *diagnostics.DiagnosticError) {
	name := InstanceName(class.Written)

	if s.Declaring.Members.IsDefinedLocally(name) {
		return nil, diagnostics.NewError(
			diagnostics.ErrD004,
			req.GetToken(),
			fmt.Sprintf("duplicate typeclass derivation for %s", class.Written),
		)
	}

	s.Declaring.Members.DefineGiven(name, sig, s.Declaring.Name)

	pending := &PendingInstance{
		Name:      name,
		Signature: sig,
		Token:     req.GetToken(),
		Class:     class,
		Request:   req,
	}
	s.pending = append(s.pending, pending)
	return pending, nil
}
