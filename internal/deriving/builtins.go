package deriving

import (
	"github.com/fernlang/fern/internal/config"
	"github.com/fernlang/fern/internal/symbols"
	"github.com/fernlang/fern/internal/typesystem"
)

// RegisterBuiltins installs the built-in Equiv class and its companion
// into a scope. Equiv is the one class the classifier special-cases:
// two plain parameters standing for the left and right compared types.
func RegisterBuiltins(table *symbols.SymbolTable) {
	left := typesystem.TVar{Name: "L", KindVal: typesystem.Star}
	right := typesystem.TVar{Name: "R", KindVal: typesystem.Star}
	table.DefineClass(config.EquivClassName, []typesystem.TVar{left, right}, "prelude")

	equivCon := typesystem.TCon{
		Name:    config.EquivClassName,
		KindVal: typesystem.MakeArrow(typesystem.Star, typesystem.Star, typesystem.Star),
	}
	companion := symbols.NewEnclosedSymbolTable(table, symbols.ScopeMember)
	companion.Define(config.DerivedFactoryName, typesystem.TForall{
		Vars: []typesystem.TVar{left, right},
		Type: typesystem.TApp{Constructor: equivCon, Args: []typesystem.Type{left, right}},
	}, "prelude")
	table.DefineCompanion(config.EquivClassName, companion)
}
