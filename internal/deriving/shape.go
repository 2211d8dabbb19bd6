package deriving

import (
	"github.com/fernlang/fern/internal/typesystem"
)

// buildNatural shapes the instance for a class whose sole parameter has
// the declaring type's own kind: a no-argument value of the class
// applied to the bare constructor.
//
//	type Box<a> deriving Functor  =>  Functor<Box>
func buildNatural(decl *DeclaringType, class *ClassDescriptor) typesystem.Type {
	return typesystem.TApp{
		Constructor: class.Con,
		Args:        []typesystem.Type{decl.EtaExpansion()},
	}
}

// buildPointwise shapes the instance for a one-plain-parameter class
// over a declaring type with only plain parameters: one evidence value
// per parameter, applied pointwise.
//
//	type Pair<a, b> deriving Show
//	  =>  forall a b. (Show<a>, Show<b>) -> Show<Pair<a, b>>
func buildPointwise(decl *DeclaringType, class *ClassDescriptor) typesystem.Type {
	result := typesystem.TApp{
		Constructor: class.Con,
		Args:        []typesystem.Type{decl.AppliedToOwnParams()},
	}
	if len(decl.TypeParams) == 0 {
		return result
	}

	evidence := make([]typesystem.Type, len(decl.TypeParams))
	for i, p := range decl.TypeParams {
		evidence[i] = typesystem.TApp{
			Constructor: class.Con,
			Args:        []typesystem.Type{p},
		}
	}
	return typesystem.TForall{
		Vars: decl.TypeParams,
		Type: typesystem.TFunc{Params: evidence, ReturnType: result},
	}
}

// buildPairedEquiv shapes the instance for the built-in two-parameter
// equality class. Every declaring parameter contributes a left and a
// right copy, named after the parameter combined with the class
// parameter so the copies stay distinct. Plain-kinded rows require
// pairwise evidence; higher-kinded rows contribute copies to the two
// instantiations but no evidence.
//
//	type Pair<a, b> deriving Equiv
//	  =>  forall a_L a_R b_L b_R.
//	      (Equiv<a_L, a_R>, Equiv<b_L, b_R>) ->
//	      Equiv<Pair<a_L, b_L>, Pair<a_R, b_R>>
func buildPairedEquiv(decl *DeclaringType, class *ClassDescriptor) typesystem.Type {
	leftName := class.TypeParams[0].Name
	rightName := class.TypeParams[1].Name

	var vars []typesystem.TVar
	var evidence []typesystem.Type
	lefts := make([]typesystem.Type, 0, len(decl.TypeParams))
	rights := make([]typesystem.Type, 0, len(decl.TypeParams))

	for _, p := range decl.TypeParams {
		left := typesystem.TVar{Name: p.Name + "_" + leftName, KindVal: p.Kind()}
		right := typesystem.TVar{Name: p.Name + "_" + rightName, KindVal: p.Kind()}
		vars = append(vars, left, right)
		lefts = append(lefts, left)
		rights = append(rights, right)

		if typesystem.IsStar(p.Kind()) {
			evidence = append(evidence, typesystem.TApp{
				Constructor: class.Con,
				Args:        []typesystem.Type{left, right},
			})
		}
	}

	result := typesystem.TApp{
		Constructor: class.Con,
		Args: []typesystem.Type{
			decl.AppliedTo(lefts...),
			decl.AppliedTo(rights...),
		},
	}
	if len(decl.TypeParams) == 0 {
		return result
	}
	return typesystem.TForall{
		Vars: vars,
		Type: typesystem.TFunc{Params: evidence, ReturnType: result},
	}
}
