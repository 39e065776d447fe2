package match

import (
	"github.com/mirocana/typecheck/internal/config"
	"github.com/mirocana/typecheck/internal/types"
)

// definitionFlag returns a type's class/instance form flag and whether it
// even carries one (only Class and TypeVar do).
func definitionFlag(t types.Type) (bool, bool) {
	switch v := t.(type) {
	case types.Class:
		return v.IsDefinition, true
	case types.TypeVar:
		return v.IsDefinition, true
	default:
		return false, false
	}
}

func isClassForm(t types.Type) bool {
	d, ok := definitionFlag(t)
	return ok && d
}

// acceptsBothForms reports whether t is an unconstrained generic variable
// that may stand for either a class-form or an instance-form actual.
func acceptsBothForms(t types.Type) bool {
	tv, ok := t.(types.TypeVar)
	return ok && !tv.IsDefinition && tv.Bound == nil
}

// asClassForm promotes a Class or TypeVar to its class/definition form,
// leaving any other type untouched.
func asClassForm(t types.Type) types.Type {
	switch v := t.(type) {
	case types.Class:
		v.IsDefinition = true
		return v
	case types.TypeVar:
		v.IsDefinition = true
		return v
	default:
		return t
	}
}

func collectionParams(t types.Type) []types.Type {
	if c, ok := t.(types.Collection); ok {
		return c.Params
	}
	return nil
}

// matchClasses is the plain nominal-class fallback check: A accepts B if
// either descriptor is unresolved (optimistic), B nominally or virtually
// (ABC) subclasses A, B is str and A is unicode (legacy string-family
// compatibility), B has unresolved ancestors (conservatively admitted), or
// A and B simply share a name (tolerates duplicate class definitions
// loaded from different sources).
func matchClasses(a, b types.ClassDescriptor) bool {
	if a == nil || !a.Resolved() {
		return true
	}
	if b == nil || !b.Resolved() {
		return true
	}
	if b.IsSubclassOf(a) {
		return true
	}
	if b.IsABCSubclassOf(a) {
		return true
	}
	if b.Name() == config.StrClassName && a.Name() == config.UnicodeClassName {
		return true
	}
	if b.HasUnresolvedAncestors() {
		return true
	}
	return b.Name() == a.Name()
}

func overridesGetattr(d types.ClassDescriptor) bool {
	if d == nil {
		return false
	}
	members := d.MemberNames(true)
	for _, name := range [...]string{config.GetAttrMethodName, config.GetAttributeMethodName} {
		if _, ok := members[name]; ok && !d.IsBuiltin(name) {
			return true
		}
	}
	return false
}

// attrsSubset reports whether every name in want also appears in have.
func attrsSubset(want, have map[string]struct{}) bool {
	for name := range want {
		if _, ok := have[name]; !ok {
			return false
		}
	}
	return true
}
