// Package generics implements the free-standing operations over generic
// type variables the matcher and call unifier share: collection,
// presence-checking, and substitution. These are plain functions rather
// than Type methods, since the spec this engine implements keeps Type a
// pure data value with no behavior attached.
package generics

import "github.com/mirocana/typecheck/internal/types"

// Collect returns every distinct generic variable appearing in t,
// including ones nested inside a variable's own bound.
func Collect(t types.Type) []types.TypeVar {
	var out []types.TypeVar
	CollectInto(t, &out, make(map[string]bool))
	return out
}

// CollectInto appends every distinct generic variable in t to out, using
// visited (keyed by variable name) both to deduplicate and to guard
// against a variable whose bound recursively mentions itself.
func CollectInto(t types.Type, out *[]types.TypeVar, visited map[string]bool) {
	if t == nil {
		return
	}
	switch v := t.(type) {
	case types.TypeVar:
		if visited[v.Name] {
			return
		}
		visited[v.Name] = true
		*out = append(*out, v)
		if v.Bound != nil {
			CollectInto(v.Bound, out, visited)
		}
	case types.Union:
		for _, m := range v.Members {
			CollectInto(m, out, visited)
		}
	case types.Collection:
		for _, p := range v.Params {
			CollectInto(p, out, visited)
		}
	case types.Tuple:
		if v.Homogeneous != nil {
			CollectInto(v.Homogeneous, out, visited)
		} else {
			for _, e := range v.Elements {
				CollectInto(e, out, visited)
			}
		}
	case types.Callable:
		for _, p := range v.Params {
			if p.Type != nil {
				CollectInto(p.Type, out, visited)
			}
		}
		if v.Return != nil {
			CollectInto(v.Return, out, visited)
		}
	}
}

// HasGenerics reports whether t mentions any generic variable; substitute
// uses this to short-circuit when there is nothing to do.
func HasGenerics(t types.Type) bool {
	return len(Collect(t)) > 0
}
