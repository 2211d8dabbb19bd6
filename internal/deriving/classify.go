package deriving

import (
	"github.com/fernlang/fern/internal/config"
	"github.com/fernlang/fern/internal/typesystem"
)

// strategyKind classifies how an instance for a (declaring type, class)
// pair is shaped. Exactly one strategy applies; the two error kinds
// reject the request without aborting the declaration.
type strategyKind int

const (
	// strategyNatural: the class takes one parameter whose kind equals
	// the declaring type's eta-expanded kind. The instance is a plain
	// value of Class<Decl>.
	strategyNatural strategyKind = iota

	// strategyPairedEquiv: the class is the built-in two-parameter
	// equality class. Every declaring parameter splits into a left and
	// a right copy.
	strategyPairedEquiv

	// strategyPointwise: the class takes one plain parameter and every
	// declaring parameter is plain. One evidence value per parameter.
	strategyPointwise

	// strategyErrNoParams: the class has no type parameters.
	strategyErrNoParams

	// strategyErrUnify: no shape arrangement matches.
	strategyErrUnify
)

// classify decides the synthesis strategy for a declaring type and a
// resolved class. Checked in order: natural match, built-in paired
// equality, pointwise, then the error classifications.
func classify(decl *DeclaringType, class *ClassDescriptor) strategyKind {
	nparams := len(class.TypeParams)

	if nparams == 1 {
		declKind := decl.Constructor.Kind()
		if declKind.Equal(class.TypeParams[0].Kind()) {
			return strategyNatural
		}
	}

	if class.Name == config.EquivClassName && nparams == 2 {
		return strategyPairedEquiv
	}

	if nparams == 1 && typesystem.IsStar(class.TypeParams[0].Kind()) {
		allPlain := true
		for _, p := range decl.TypeParams {
			if !typesystem.IsStar(p.Kind()) {
				allPlain = false
				break
			}
		}
		if allPlain {
			return strategyPointwise
		}
	}

	if nparams == 0 {
		return strategyErrNoParams
	}

	return strategyErrUnify
}
