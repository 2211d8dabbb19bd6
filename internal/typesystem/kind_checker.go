package typesystem

import "fmt"

// UnifyKinds checks that two kinds agree.
func UnifyKinds(k1, k2 Kind) error {
	if k1.Equal(k2) {
		return nil
	}
	return fmt.Errorf("kind mismatch: expected %s, got %s", k1, k2)
}

// KindCheck validates that a type is well-kinded and returns its kind.
func KindCheck(t Type) (Kind, error) {
	if t == nil {
		return nil, fmt.Errorf("cannot check kind of nil type")
	}

	switch typ := t.(type) {
	case TCon:
		return typ.Kind(), nil
	case TVar:
		return typ.Kind(), nil
	case TApp:
		return checkTAppKind(typ)
	case TFunc:
		for _, p := range typ.Params {
			k, err := KindCheck(p)
			if err != nil {
				return nil, err
			}
			if !k.Equal(Star) {
				return nil, fmt.Errorf("function parameter must be type (kind *), got kind %s", k)
			}
		}
		k, err := KindCheck(typ.ReturnType)
		if err != nil {
			return nil, err
		}
		if !k.Equal(Star) {
			return nil, fmt.Errorf("function return type must be type (kind *), got kind %s", k)
		}
		return Star, nil
	case TForall:
		k, err := KindCheck(typ.Type)
		if err != nil {
			return nil, err
		}
		if !k.Equal(Star) {
			return nil, fmt.Errorf("polymorphic type must be type (kind *), got kind %s", k)
		}
		return Star, nil
	default:
		return Star, nil
	}
}

func checkTAppKind(t TApp) (Kind, error) {
	currKind, err := KindCheck(t.Constructor)
	if err != nil {
		return nil, err
	}

	for _, arg := range t.Args {
		kArg, err := KindCheck(arg)
		if err != nil {
			return nil, err
		}
		arrow, ok := currKind.(KArrow)
		if !ok {
			return nil, fmt.Errorf("cannot apply type argument to non-function kind %s", currKind)
		}
		if !arrow.Left.Equal(kArg) && !arrow.Left.Equal(AnyKind) {
			return nil, fmt.Errorf("kind mismatch in application: expected argument of kind %s, got %s", arrow.Left, kArg)
		}
		currKind = arrow.Right
	}
	return currKind, nil
}
