// Package match implements the core compatibility check: deciding whether
// a value statically known to have type actual may be used somewhere that
// requires expected, in the asymmetric, gradual sense of PEP 484 rather
// than symmetric Hindley-Milner unification. It never errors; every
// question it is asked has a true/false answer, with unknown types
// resolving optimistically to true.
package match

import (
	"reflect"

	"github.com/mirocana/typecheck/internal/config"
	"github.com/mirocana/typecheck/internal/evalctx"
	"github.com/mirocana/typecheck/internal/numeric"
	"github.com/mirocana/typecheck/internal/types"
)

// Match decides whether actual may be used where expected is required.
// subst must be non-nil; a generic variable on the expected side records
// its binding there as a side effect of a successful match. recursive
// guards the matcher's own one-step re-entry when re-checking a variable
// already bound to something in subst — callers performing a fresh,
// top-level match should always pass true.
func Match(expected, actual types.Type, ctx evalctx.Context, subst types.Subst, recursive bool) bool {
	return matchCascade(expected, actual, ctx, subst, recursive)
}

// Default runs Match with a fresh substitution map and recursive
// re-entry enabled, for callers that only need the bool and don't care
// about bindings.
func Default(expected, actual types.Type, ctx evalctx.Context) bool {
	return Match(expected, actual, ctx, types.Subst{}, true)
}

func matchCascade(expected, actual types.Type, ctx evalctx.Context, subst types.Subst, recursive bool) bool {
	// 1. Universal top types.
	if cls, ok := expected.(types.Class); ok && cls.Descriptor != nil {
		if cls.Descriptor.Name() == config.ObjectClassName {
			return true
		}
		if cls.Descriptor.Name() == config.TypeClassName && isClassForm(actual) {
			return true
		}
	}

	// 2. Class-vs-instance mismatch.
	if edef, eok := definitionFlag(expected); eok {
		if adef, aok := definitionFlag(actual); aok && edef != adef && !acceptsBothForms(expected) {
			return false
		}
	}

	// 3. String-family widening: a basestring actual retries against the
	// union of str and unicode.
	if cls, ok := actual.(types.Class); ok && cls.Descriptor != nil && cls.Descriptor.Name() == config.BasestringClassName {
		widened := ctx.Classes().Builtins().StrOrUnicodeType()
		return matchCascade(expected, widened, ctx, subst, recursive)
	}

	// 4. Generic variable on the expected side.
	if tv, ok := expected.(types.TypeVar); ok {
		return matchTypeVar(tv, actual, ctx, subst, recursive)
	}

	// 5. Either side unknown.
	if IsUnknown(expected) || IsUnknown(actual) {
		return true
	}

	// 6. Actual is a union.
	if u, ok := actual.(types.Union); ok {
		return matchUnionActual(expected, u, ctx, subst, recursive)
	}

	// 7. Expected is a union: non-generic members are tried before
	// generic-variable members, so a concrete match is preferred over
	// binding a fresh variable.
	if u, ok := expected.(types.Union); ok {
		return matchUnionExpected(u, actual, ctx, subst, recursive)
	}

	// 8. Both sides are class type specializations (Class, Collection, or
	// Tuple).
	if eDesc, eOK := types.ClassLike(expected); eOK {
		if aDesc, aOK := types.ClassLike(actual); aOK {
			if done, ok := matchClassLike(expected, actual, eDesc, aDesc, ctx, subst); done {
				return ok
			}
		}
	}

	// 9. A function/closure actual matches any expected class named
	// "callable".
	if _, ok := actual.(types.Function); ok {
		if eDesc, ok2 := types.ClassLike(expected); ok2 && eDesc != nil && eDesc.Name() == config.CallableClassName {
			return true
		}
	}

	// 10. Structural (duck-typed) matching.
	if done, ok := matchStructural(expected, actual, ctx); done {
		return ok
	}

	// 11. Callable vs callable: covariant parameter and return matching.
	if done, ok := matchCallableVsCallable(expected, actual, ctx, subst); done {
		return ok
	}

	// 12. Numeric promotion lattice, as a last resort between two plain
	// class types with unequal names.
	if ec, ok := expected.(types.Class); ok {
		if ac, ok2 := actual.(types.Class); ok2 {
			if ec.Descriptor != nil && ac.Descriptor != nil && ec.Descriptor.Name() != ac.Descriptor.Name() {
				if numeric.Promotes(ec.Descriptor.Name(), ac.Descriptor.Name()) {
					return true
				}
			}
		}
	}

	// 13. Otherwise, no rule applies.
	return false
}

func matchTypeVar(tv types.TypeVar, actual types.Type, ctx evalctx.Context, subst types.Subst, recursive bool) bool {
	bound := tv.Bound
	if bound != nil && tv.IsDefinition {
		bound = asClassForm(bound)
	}
	// A bound that is the variable itself (T: T) is dropped rather than
	// matched against actual: re-entry on the same variable is treated as
	// success, same as the top type. A bound that only mentions the
	// variable deeper inside (T: Comparable[T]) is matched as usual.
	if sameVar, ok := bound.(types.TypeVar); ok && sameVar.Name == tv.Name {
		bound = nil
	}
	if bound != nil && !matchCascade(bound, actual, ctx, subst, true) {
		return false
	}

	if existing, ok := subst[tv.Name]; ok {
		if reflect.DeepEqual(existing, actual) {
			return true
		}
		if recursive {
			return matchCascade(existing, actual, ctx, subst, false)
		}
		return false
	}

	if !IsUnknown(actual) {
		subst[tv.Name] = actual
		return true
	}
	if bound != nil {
		subst[tv.Name] = bound
	}
	return true
}

func matchUnionActual(expected types.Type, actual types.Union, ctx evalctx.Context, subst types.Subst, recursive bool) bool {
	if widened, ok := widenTupleUnion(expected, actual); ok {
		for _, m := range actual.Members {
			if matchCascade(widened, m, ctx, subst, recursive) {
				return true
			}
		}
		return false
	}
	for _, m := range actual.Members {
		if matchCascade(expected, m, ctx, subst, recursive) {
			return true
		}
	}
	return false
}

// widenTupleUnion handles the special case of a fixed-arity expected
// tuple matched against a union of same-arity fixed tuples: it widens
// each expected element position to the union of the actual tuples'
// corresponding elements, so later position-by-position matching can
// succeed even though no single member matches every position.
func widenTupleUnion(expected types.Type, actual types.Union) (types.Tuple, bool) {
	et, ok := expected.(types.Tuple)
	if !ok || et.IsHomogeneous() {
		return types.Tuple{}, false
	}
	n := len(et.Elements)
	if n == 0 {
		return types.Tuple{}, false
	}
	memberTuples := make([]types.Tuple, 0, len(actual.Members))
	for _, m := range actual.Members {
		mt, ok := m.(types.Tuple)
		if !ok || mt.IsHomogeneous() || len(mt.Elements) != n {
			return types.Tuple{}, false
		}
		memberTuples = append(memberTuples, mt)
	}
	widenedElems := make([]types.Type, n)
	for i := 0; i < n; i++ {
		col := make([]types.Type, len(memberTuples))
		for j, mt := range memberTuples {
			col[j] = mt.Elements[i]
		}
		widenedElems[i] = types.NormalizeUnion(col, false)
	}
	return types.Tuple{Descriptor: et.Descriptor, Elements: widenedElems}, true
}

func matchUnionExpected(expected types.Union, actual types.Type, ctx evalctx.Context, subst types.Subst, recursive bool) bool {
	var nonGeneric, generic []types.Type
	for _, m := range expected.Members {
		if _, ok := m.(types.TypeVar); ok {
			generic = append(generic, m)
		} else {
			nonGeneric = append(nonGeneric, m)
		}
	}
	for _, m := range nonGeneric {
		if matchCascade(m, actual, ctx, subst, recursive) {
			return true
		}
	}
	for _, m := range generic {
		if matchCascade(m, actual, ctx, subst, recursive) {
			return true
		}
	}
	return false
}

// matchClassLike handles every combination of two class-type
// specializations. done is true when this step produced a definitive
// answer; when done is false the cascade continues to later rules.
func matchClassLike(expected, actual types.Type, eDesc, aDesc types.ClassDescriptor, ctx evalctx.Context, subst types.Subst) (done bool, ok bool) {
	if et, isTuple := expected.(types.Tuple); isTuple {
		if at, also := actual.(types.Tuple); also {
			return true, matchTupleTuple(et, at, ctx, subst)
		}
	}

	if ec, isColl := expected.(types.Collection); isColl {
		if at, isTuple := actual.(types.Tuple); isTuple {
			if !matchClasses(ec.Descriptor, aDesc) {
				return true, false
			}
			return true, matchCascade(ec.IteratedType(), at.IteratedType(), ctx, subst, true)
		}
		if !matchClasses(ec.Descriptor, aDesc) {
			return true, false
		}
		actualParams := collectionParams(actual)
		for i, ep := range ec.Params {
			var ap types.Type = types.Unknown{}
			if i < len(actualParams) {
				ap = actualParams[i]
			}
			if !matchCascade(ep, ap, ctx, subst, true) {
				return true, false
			}
		}
		return true, true
	}

	if matchClasses(eDesc, aDesc) {
		return true, true
	}
	if isClassForm(actual) && eDesc != nil && eDesc.Name() == config.CallableClassName {
		return true, true
	}
	if reflect.DeepEqual(expected, actual) {
		return true, true
	}
	return false, false
}

func matchTupleTuple(e, a types.Tuple, ctx evalctx.Context, subst types.Subst) bool {
	switch {
	case !e.IsHomogeneous() && !a.IsHomogeneous():
		if len(e.Elements) != len(a.Elements) {
			return false
		}
		for i := range e.Elements {
			if !matchCascade(e.Elements[i], a.Elements[i], ctx, subst, true) {
				return false
			}
		}
		return true
	case e.IsHomogeneous() && !a.IsHomogeneous():
		for _, elem := range a.Elements {
			if !matchCascade(e.Homogeneous, elem, ctx, subst, true) {
				return false
			}
		}
		return true
	case !e.IsHomogeneous() && a.IsHomogeneous():
		return false
	default:
		return matchCascade(e.Homogeneous, a.Homogeneous, ctx, subst, true)
	}
}

func matchStructural(expected, actual types.Type, ctx evalctx.Context) (done bool, ok bool) {
	eStruct, eIsStruct := expected.(types.Structural)
	aStruct, aIsStruct := actual.(types.Structural)

	if aIsStruct && aStruct.FromUsages {
		return true, true
	}
	if eIsStruct && aIsStruct {
		if eStruct.FromUsages {
			return true, true
		}
		return true, attrsSubset(eStruct.Attrs, aStruct.Attrs)
	}
	if eIsStruct && !aIsStruct {
		aDesc, isClassLike := types.ClassLike(actual)
		if !isClassLike {
			return false, false
		}
		if overridesGetattr(aDesc) {
			return true, true
		}
		members := map[string]struct{}{}
		if aDesc != nil {
			members = aDesc.MemberNames(true)
		}
		return true, attrsSubset(eStruct.Attrs, members)
	}
	if !eIsStruct && aIsStruct {
		eDesc, isClassLike := types.ClassLike(expected)
		if !isClassLike {
			return false, false
		}
		members := map[string]struct{}{}
		if eDesc != nil {
			members = eDesc.MemberNames(true)
		}
		return true, attrsSubset(aStruct.Attrs, members)
	}
	return false, false
}

func matchCallableVsCallable(expected, actual types.Type, ctx evalctx.Context, subst types.Subst) (done bool, ok bool) {
	eCallable, eIsCallable := expected.(types.Callable)
	if !eIsCallable {
		return false, false
	}
	aCallable, aIsCallable := actual.(types.Callable)
	if !aIsCallable {
		// A Function's shape is only known through the evaluation
		// context, since its signature is deferred to whatever defined
		// it.
		fn, isFunc := actual.(types.Function)
		if !isFunc {
			return false, false
		}
		resolved, ok2 := ctx.ResolveCallable(fn)
		if !ok2 {
			return false, false
		}
		aCallable, aIsCallable = resolved, true
	}
	if !aIsCallable || IsCallable(eCallable) != CallableYes || IsCallable(aCallable) != CallableYes {
		return false, false
	}

	if eCallable.Params != nil && aCallable.Params != nil {
		n := len(eCallable.Params)
		if len(aCallable.Params) < n {
			n = len(aCallable.Params)
		}
		for i := 0; i < n; i++ {
			ep, ap := eCallable.Params[i].Type, aCallable.Params[i].Type
			if ep == nil || ap == nil {
				continue
			}
			if !matchCascade(ep, ap, ctx, subst, true) {
				return true, false
			}
		}
	}

	if eCallable.Return == nil || aCallable.Return == nil {
		return true, true
	}
	return true, matchCascade(eCallable.Return, aCallable.Return, ctx, subst, true)
}
