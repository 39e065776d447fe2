// Package unify implements the call-site generic solver: given a
// receiver type and a mapping from declared parameters to argument
// expressions, it produces the substitution that makes the call valid,
// or reports failure so the caller can retry against the next overload.
package unify

import (
	"github.com/mirocana/typecheck/internal/evalctx"
	"github.com/mirocana/typecheck/internal/generics"
	"github.com/mirocana/typecheck/internal/match"
	"github.com/mirocana/typecheck/internal/provider"
	"github.com/mirocana/typecheck/internal/types"
)

// Arg pairs one declared parameter with the expression passed for it.
// Expr is an opaque handle resolved through context.TypeOfExpr, the same
// kind callsite.Site carries.
type Arg struct {
	Param types.Param
	Expr  any
}

// UnifyGenericCall seeds a substitution from receiver (if any), then
// matches each declared parameter's type against its argument's static
// type in declaration order, collecting *args/**kwargs arguments
// separately and checking them against their container element type
// only after every positional/keyword parameter has matched. ok is false
// when the call site is not compatible with this signature; the caller
// should retry against the next overload.
func UnifyGenericCall(receiver types.Type, args []Arg, ctx evalctx.Context, providers *provider.Registry) (types.Subst, bool) {
	sigma := UnifyReceiver(receiver, ctx, providers)

	var positional, keyword []types.Type
	var positionalElem, keywordElem types.Type

	for _, a := range args {
		p := a.Param
		switch {
		case p.IsArgs:
			positionalElem = p.Type
			t, ok := ctx.TypeOfExpr(a.Expr)
			if !ok {
				t = types.Unknown{}
			}
			positional = append(positional, t)
		case p.IsKwargs:
			keywordElem = p.Type
			t, ok := ctx.TypeOfExpr(a.Expr)
			if !ok {
				t = types.Unknown{}
			}
			keyword = append(keyword, t)
		default:
			argType, ok := ctx.TypeOfExpr(a.Expr)
			if !ok {
				argType = types.Unknown{}
			}
			if p.Type == nil {
				continue
			}
			if !match.Match(p.Type, argType, ctx, sigma, true) {
				return nil, false
			}
		}
	}

	if positionalElem != nil && len(positional) > 0 {
		widened := types.NormalizeUnion(positional, false)
		if !match.Match(positionalElem, widened, ctx, sigma, true) {
			return nil, false
		}
	}
	if keywordElem != nil && len(keyword) > 0 {
		widened := types.NormalizeUnion(keyword, false)
		if !match.Match(keywordElem, widened, ctx, sigma, true) {
			return nil, false
		}
	}

	return sigma, true
}

// UnifyReceiver seeds a substitution map for receiver: every generic
// variable it mentions is bound to itself first, so later matches can
// discover its concrete binding rather than treating it as unseen; then
// every registered provider is consulted for each class alternative
// receiver enumerates over (a flattened union of one), letting extension
// code contribute a "generic type" view to match against the receiver and
// an explicit variable map merged in for keys sigma doesn't already hold.
func UnifyReceiver(receiver types.Type, ctx evalctx.Context, providers *provider.Registry) types.Subst {
	sigma := types.Subst{}
	if receiver == nil {
		return sigma
	}

	for _, v := range generics.Collect(receiver) {
		sigma[v.Name] = v
	}

	for _, alt := range enumerateClassAlternatives(receiver) {
		desc, ok := types.ClassLike(alt)
		if !ok || desc == nil {
			continue
		}
		for _, p := range providers.All() {
			if generic, ok := p.GenericTypeOf(desc); ok {
				match.Match(generic, alt, ctx, sigma, true)
			}
			for name, v := range p.GenericSubstitutions(desc) {
				if _, already := sigma[name]; !already {
					sigma[name] = v
				}
			}
		}
	}

	return sigma
}

// enumerateClassAlternatives flattens a receiver into the list of
// class-like types a provider might recognize: a union's members, or the
// single type itself.
func enumerateClassAlternatives(receiver types.Type) []types.Type {
	if u, ok := receiver.(types.Union); ok {
		return u.Members
	}
	return []types.Type{receiver}
}
