package generics

import "github.com/mirocana/typecheck/internal/types"

// Substitute applies sigma to t, replacing every bound generic variable
// with its mapped concrete type. It short-circuits to t itself when t
// mentions no generics at all.
func Substitute(t types.Type, sigma types.Subst) types.Type {
	if !HasGenerics(t) {
		return t
	}
	return substitute(t, sigma, make(map[string]bool))
}

func substitute(t types.Type, sigma types.Subst, visited map[string]bool) types.Type {
	if t == nil {
		return nil
	}
	switch v := t.(type) {
	case types.TypeVar:
		return substituteVar(v, sigma, visited)
	case types.Union:
		members := make([]types.Type, len(v.Members))
		for i, m := range v.Members {
			members[i] = substitute(m, sigma, visited)
		}
		return types.NormalizeUnion(members, v.Weak)
	case types.Collection:
		params := make([]types.Type, len(v.Params))
		for i, p := range v.Params {
			params[i] = substitute(p, sigma, visited)
		}
		return types.Collection{Descriptor: v.Descriptor, Params: params}
	case types.Tuple:
		if v.Homogeneous != nil {
			return types.Tuple{Descriptor: v.Descriptor, Homogeneous: substitute(v.Homogeneous, sigma, visited)}
		}
		elems := make([]types.Type, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = substitute(e, sigma, visited)
		}
		return types.Tuple{Descriptor: v.Descriptor, Elements: elems}
	case types.Callable:
		var params []types.Param
		if v.Params != nil {
			params = make([]types.Param, len(v.Params))
			for i, p := range v.Params {
				params[i] = types.Param{
					Name:     p.Name,
					Type:     substituteMaybe(p.Type, sigma, visited),
					IsArgs:   p.IsArgs,
					IsKwargs: p.IsKwargs,
				}
			}
		}
		return types.Callable{
			Params:      params,
			Return:      substituteMaybe(v.Return, sigma, visited),
			NotCallable: v.NotCallable,
		}
	default:
		return t
	}
}

func substituteMaybe(t types.Type, sigma types.Subst, visited map[string]bool) types.Type {
	if t == nil {
		return nil
	}
	return substitute(t, sigma, visited)
}

// substituteVar resolves v through sigma, keyed purely by variable name:
// the stored replacement is coerced to whichever class/instance form v
// itself requires (the "dual-form" lookup), and a replacement that is
// itself a distinct variable is chased one link at a time, guarded by
// visited against a cyclic substitution map.
func substituteVar(v types.TypeVar, sigma types.Subst, visited map[string]bool) types.Type {
	if visited[v.Name] {
		return v
	}
	repl, ok := sigma[v.Name]
	if !ok {
		return v
	}
	repl = coerceForm(repl, v.IsDefinition)
	if rv, ok := repl.(types.TypeVar); ok && rv.Name != v.Name {
		next := copyVisited(visited)
		next[v.Name] = true
		return substituteVar(rv, sigma, next)
	}
	return repl
}

func coerceForm(t types.Type, wantDefinition bool) types.Type {
	switch v := t.(type) {
	case types.Class:
		v.IsDefinition = wantDefinition
		return v
	case types.TypeVar:
		v.IsDefinition = wantDefinition
		return v
	default:
		return t
	}
}

func copyVisited(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
