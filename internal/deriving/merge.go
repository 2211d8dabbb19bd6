package deriving

import "github.com/fernlang/fern/internal/ast"

// Merge appends the synthesized definitions to the end of the declaring
// type's member list, preserving original order and contents. Pure: the
// input declaration is not mutated.
func Merge(decl *ast.TypeDeclarationStatement, defs []*ast.GivenDeclaration) *ast.TypeDeclarationStatement {
	members := make([]ast.Statement, 0, len(decl.Members)+len(defs))
	members = append(members, decl.Members...)
	for _, def := range defs {
		members = append(members, def)
	}
	return &ast.TypeDeclarationStatement{
		Token:          decl.Token,
		Name:           decl.Name,
		TypeParameters: decl.TypeParameters,
		Deriving:       decl.Deriving,
		Members:        members,
	}
}
