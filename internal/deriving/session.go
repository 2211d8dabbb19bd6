package deriving

import (
	"fmt"

	"github.com/fernlang/fern/internal/ast"
	"github.com/fernlang/fern/internal/token"
	"github.com/fernlang/fern/internal/typesystem"
)

// Session owns the derivation state for one declaring type: the
// descriptor, a default position for synthesized code, and the ordered,
// append-only list of pending instances. It lives from the signature
// phase until the declaration merger consumes its output.
type Session struct {
	Declaring *DeclaringType
	Pos       token.Token

	pending []*PendingInstance
	fresh   int
}

// PendingInstance is one synthesized instance whose signature has been
// registered but whose body is not yet materialized.
type PendingInstance struct {
	Name      string
	Signature typesystem.Type
	Token     token.Token
	Class     *ClassDescriptor
	Request   *ast.NamedType
}

func NewSession(declaring *DeclaringType) *Session {
	return &Session{Declaring: declaring, Pos: declaring.Token}
}

// Pending returns the registered instances in request order.
func (s *Session) Pending() []*PendingInstance {
	return s.pending
}

// freshName allocates a fresh type-parameter name scoped to this
// session's declaring type.
func (s *Session) freshName(base string) string {
	s.fresh++
	return fmt.Sprintf("%s$%d", base, s.fresh)
}
