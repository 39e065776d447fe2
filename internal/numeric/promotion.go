// Package numeric implements the builtin numeric promotion lattice the
// matcher falls back to once two class types have failed every nominal and
// structural rule: Bool ⊂ Int ⊂ Long ⊂ Float ⊂ Complex ⊂ Number, with each
// ABC surface name matching its concrete subset of the chain.
package numeric

import "github.com/mirocana/typecheck/internal/config"

var chain = []string{
	config.BoolClassName,
	config.IntClassName,
	config.LongClassName,
	config.FloatClassName,
	config.ComplexClassName,
	config.NumberClassName,
}

// abcCeiling maps each ABC surface name to the highest concrete chain
// member it matches down to.
var abcCeiling = map[string]string{
	config.IntegralABCName: config.LongClassName,
	config.RealABCName:     config.FloatClassName,
	config.ComplexABCName:  config.ComplexClassName,
	config.NumberABCName:   config.NumberClassName,
}

func indexOf(name string) int {
	for i, n := range chain {
		if n == name {
			return i
		}
	}
	return -1
}

// Promotes reports whether a value of the actual numeric class may be used
// where the expected numeric class is required: actual's position in the
// chain must be at or below expected's. An ABC surface name on the
// expected side is first resolved to its ceiling concrete name. A name
// unrecognized by the lattice degrades to a plain equality test rather
// than an error.
func Promotes(expectedName, actualName string) bool {
	if ceiling, ok := abcCeiling[expectedName]; ok {
		expectedName = ceiling
	}
	ei, ai := indexOf(expectedName), indexOf(actualName)
	if ei == -1 || ai == -1 {
		return expectedName == actualName
	}
	return ai <= ei
}
