// Package loader reads a YAML description of capability classes and
// type declarations and turns it into symbol-table entries and AST
// declarations the derivation stage consumes.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fernlang/fern/internal/ast"
	"github.com/fernlang/fern/internal/config"
	"github.com/fernlang/fern/internal/deriving"
	"github.com/fernlang/fern/internal/symbols"
	"github.com/fernlang/fern/internal/token"
	"github.com/fernlang/fern/internal/typesystem"
)

type ParamSpec struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"` // "*" when omitted
}

type CompanionSpec struct {
	Derived bool `yaml:"derived"`
}

type ClassSpec struct {
	Name      string        `yaml:"name"`
	Params    []ParamSpec   `yaml:"params"`
	Companion CompanionSpec `yaml:"companion"`
}

type AliasSpec struct {
	Name  string `yaml:"name"`
	Class string `yaml:"class"`
}

type TypeSpec struct {
	Name     string      `yaml:"name"`
	Params   []ParamSpec `yaml:"params"`
	Deriving []string    `yaml:"deriving"`
}

type Unit struct {
	Classes []ClassSpec `yaml:"classes"`
	Aliases []AliasSpec `yaml:"aliases"`
	Types   []TypeSpec  `yaml:"types"`
}

// Load parses a unit description from a file.
func Load(path string) (*Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses a unit description from raw YAML.
func Parse(data []byte) (*Unit, error) {
	var unit Unit
	if err := yaml.Unmarshal(data, &unit); err != nil {
		return nil, fmt.Errorf("invalid unit description: %w", err)
	}
	return &unit, nil
}

// Install registers the unit's classes, aliases and companions into a
// fresh symbol table (built-ins included) and returns it together with
// the unit's type declarations in written order.
func (u *Unit) Install() (*symbols.SymbolTable, []*ast.TypeDeclarationStatement, error) {
	table := symbols.NewEmptySymbolTable()
	deriving.RegisterBuiltins(table)

	for _, spec := range u.Classes {
		params, err := buildParams(spec.Params)
		if err != nil {
			return nil, nil, fmt.Errorf("class %s: %w", spec.Name, err)
		}
		table.DefineClass(spec.Name, params, "unit")
		if spec.Companion.Derived {
			installCompanion(table, spec.Name, params)
		}
	}

	for _, spec := range u.Aliases {
		if !table.DefineClassAlias(spec.Name, spec.Class, "unit") {
			return nil, nil, fmt.Errorf("alias %s: class %s is not defined", spec.Name, spec.Class)
		}
	}

	decls := make([]*ast.TypeDeclarationStatement, 0, len(u.Types))
	for line, spec := range u.Types {
		decl, err := buildDeclaration(spec, line+1)
		if err != nil {
			return nil, nil, err
		}
		decls = append(decls, decl)
	}
	return table, decls, nil
}

// installCompanion gives a class the canonical derived factory: a value
// generic over the class's own parameters, returning the class applied
// to them.
func installCompanion(table *symbols.SymbolTable, name string, params []typesystem.TVar) {
	kinds := make([]typesystem.Kind, 0, len(params)+1)
	args := make([]typesystem.Type, len(params))
	for i, p := range params {
		kinds = append(kinds, p.Kind())
		args[i] = p
	}
	kinds = append(kinds, typesystem.Star)
	con := typesystem.TCon{Name: name, KindVal: typesystem.MakeArrow(kinds...)}

	var derived typesystem.Type = con
	if len(params) > 0 {
		derived = typesystem.TForall{
			Vars: params,
			Type: typesystem.TApp{Constructor: con, Args: args},
		}
	}

	companion := symbols.NewEnclosedSymbolTable(table, symbols.ScopeMember)
	companion.Define(config.DerivedFactoryName, derived, "unit")
	table.DefineCompanion(name, companion)
}

func buildParams(specs []ParamSpec) ([]typesystem.TVar, error) {
	params := make([]typesystem.TVar, len(specs))
	for i, spec := range specs {
		kind, err := ParseKind(spec.Kind)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", spec.Name, err)
		}
		params[i] = typesystem.TVar{Name: spec.Name, KindVal: kind}
	}
	return params, nil
}

func buildDeclaration(spec TypeSpec, line int) (*ast.TypeDeclarationStatement, error) {
	tok := token.Token{Type: token.TYPE, Lexeme: "type", Line: line, Column: 1}

	typeParams := make([]*ast.Identifier, len(spec.Params))
	for i, p := range spec.Params {
		kind, err := ParseKind(p.Kind)
		if err != nil {
			return nil, fmt.Errorf("type %s parameter %s: %w", spec.Name, p.Name, err)
		}
		typeParams[i] = &ast.Identifier{
			Token: token.Token{Type: token.IDENT, Lexeme: p.Name, Line: line},
			Value: p.Name,
			Kind:  kind,
		}
	}

	derivingList := make([]*ast.NamedType, len(spec.Deriving))
	for i, name := range spec.Deriving {
		reqTok := token.Token{Type: token.IDENT_UPPER, Lexeme: name, Line: line, Column: i + 2}
		derivingList[i] = &ast.NamedType{
			Token: reqTok,
			Name:  &ast.Identifier{Token: reqTok, Value: name},
		}
	}

	return &ast.TypeDeclarationStatement{
		Token:          tok,
		Name:           &ast.Identifier{Token: token.Token{Type: token.IDENT_UPPER, Lexeme: spec.Name, Line: line}, Value: spec.Name},
		TypeParameters: typeParams,
		Deriving:       derivingList,
	}, nil
}
