package match

import "github.com/mirocana/typecheck/internal/types"

// IsUnknown reports whether t is, or is equivalent to, the unknown type:
// an absent type, the Unknown value itself, or a union any of whose
// members is unknown. Generic variables count as unknown by default
// (genericsAreUnknown = true); IsUnknownMode lets a caller that wants to
// treat an unresolved variable as "known, just not yet bound" opt out.
func IsUnknown(t types.Type) bool {
	return IsUnknownMode(t, true)
}

// IsUnknownMode is IsUnknown with explicit control over whether an
// unbound generic variable counts as unknown.
func IsUnknownMode(t types.Type, genericsAreUnknown bool) bool {
	switch v := t.(type) {
	case nil:
		return true
	case types.Unknown:
		return true
	case types.TypeVar:
		return genericsAreUnknown
	case types.Union:
		for _, m := range v.Members {
			if IsUnknownMode(m, genericsAreUnknown) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
