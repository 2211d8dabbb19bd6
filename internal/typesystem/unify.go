package typesystem

import (
	"fmt"
	"reflect"
)

// Match attempts to find a substitution for the free variables of pattern
// that makes it equal to target. Matching is one-way: variables in target
// are treated as rigid. Kinds must agree wherever a variable is bound.
func Match(pattern, target Type) (Subst, error) {
	subst := Subst{}
	if err := matchInternal(pattern, target, subst); err != nil {
		return nil, err
	}
	return subst, nil
}

func matchInternal(pattern, target Type, subst Subst) error {
	pattern = UnwrapUnderlying(pattern)
	target = UnwrapUnderlying(target)

	if pv, ok := pattern.(TVar); ok {
		if bound, seen := subst[pv.Name]; seen {
			if !reflect.DeepEqual(bound, target) {
				return fmt.Errorf("conflicting bindings for %s: %s vs %s", pv.Name, bound, target)
			}
			return nil
		}
		if err := UnifyKinds(pv.Kind(), target.Kind()); err != nil {
			return fmt.Errorf("cannot bind %s to %s: %v", pv.Name, target, err)
		}
		subst[pv.Name] = target
		return nil
	}

	switch p := pattern.(type) {
	case TCon:
		t, ok := target.(TCon)
		if !ok || p.Name != t.Name || p.Module != t.Module {
			return mismatch(pattern, target)
		}
		return nil

	case TApp:
		t, ok := target.(TApp)
		if !ok {
			// F<a...> against a bare constructor: only a variable head
			// can absorb the argument gap, handled above.
			return mismatch(pattern, target)
		}
		if len(p.Args) != len(t.Args) {
			return mismatch(pattern, target)
		}
		if err := matchInternal(p.Constructor, t.Constructor, subst); err != nil {
			return err
		}
		for i := range p.Args {
			if err := matchInternal(p.Args[i], t.Args[i], subst); err != nil {
				return err
			}
		}
		return nil

	case TFunc:
		t, ok := target.(TFunc)
		if !ok || len(p.Params) != len(t.Params) {
			return mismatch(pattern, target)
		}
		for i := range p.Params {
			if err := matchInternal(p.Params[i], t.Params[i], subst); err != nil {
				return err
			}
		}
		return matchInternal(p.ReturnType, t.ReturnType, subst)

	default:
		if reflect.DeepEqual(pattern, target) {
			return nil
		}
		return mismatch(pattern, target)
	}
}

func mismatch(pattern, target Type) error {
	return fmt.Errorf("type mismatch: expected %s, got %s", target, pattern)
}
