package match

import "github.com/mirocana/typecheck/internal/types"

// Callability is the tri-state result of asking whether a type's values
// can be called: a plain bool can't represent "we genuinely don't know
// yet", which Unknown-typed and not-fully-resolved union members need.
type Callability int

const (
	CallableUnknown Callability = iota
	CallableYes
	CallableNo
)

// IsCallable decides whether t's values can be invoked. A union is
// callable if any member is (even if others are not); it is unknown,
// rather than outright not callable, if any member's callability itself
// can't be determined.
func IsCallable(t types.Type) Callability {
	switch v := t.(type) {
	case nil, types.Unknown:
		return CallableUnknown
	case types.TypeVar:
		return CallableUnknown
	case types.Callable:
		if v.NotCallable {
			return CallableNo
		}
		return CallableYes
	case types.Function:
		return CallableYes
	case types.Structural:
		if v.FromUsages {
			return CallableYes
		}
		return CallableNo
	case types.Union:
		sawUnknown := false
		for _, m := range v.Members {
			switch IsCallable(m) {
			case CallableYes:
				return CallableYes
			case CallableUnknown:
				sawUnknown = true
			}
		}
		if sawUnknown {
			return CallableUnknown
		}
		return CallableNo
	default:
		return CallableNo
	}
}
