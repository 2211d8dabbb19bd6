package config

// Built-in class names
const (
	// EquivClassName is the built-in two-parameter equality class.
	// Its instances witness that values of the left and right types
	// may be compared.
	EquivClassName = "Equiv"

	FunctorClassName = "Functor"
	ShowClassName    = "Show"
)

// Synthesized member names
const (
	// DerivedFactoryName is the conventional factory member on a class
	// companion that produces a canonical instance.
	DerivedFactoryName = "derived"

	// GivenPrefix prefixes the name of every synthesized instance.
	// The suffix is the class reference as written in the deriving
	// clause, so aliased references stay independently addressable.
	GivenPrefix = "given_"
)
