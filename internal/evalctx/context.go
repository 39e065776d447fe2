// Package evalctx defines the evaluation-context external interface: the
// matcher and call unifier ask it to resolve expression types, member
// lookups, and deferred function/closure signatures, rather than walking
// an AST or symbol table themselves.
package evalctx

import (
	"github.com/mirocana/typecheck/internal/classreg"
	"github.com/mirocana/typecheck/internal/types"
)

// Direction distinguishes a read access (looking a member up) from a write
// access (assigning through it), since some structural rules only care
// about one direction.
type Direction int

const (
	Read Direction = iota
	Write
)

// Resolution is one candidate result of a member lookup; Origin is the
// class that actually declares the member, or nil if that is unknown
// (e.g. a dynamic attribute).
type Resolution struct {
	Type   types.Type
	Origin types.ClassDescriptor
}

// Context is the external collaborator the matcher and generic-call
// unifier consult for anything that requires knowing about a specific
// expression, class, or member rather than just a Type value in isolation.
type Context interface {
	// TypeOfExpr returns the statically known type of an already-evaluated
	// expression handle (an opaque value owned by the caller's AST/IR),
	// or false if nothing is known about it.
	TypeOfExpr(expr any) (types.Type, bool)
	// TypeOfClass returns the instance type of a resolved class
	// descriptor, or false if the descriptor does not resolve to a usable
	// type (e.g. it is a DeclareUnresolved placeholder).
	TypeOfClass(d types.ClassDescriptor) (types.Type, bool)
	// ResolveMember looks up name on t, returning every candidate
	// resolution (a union-typed receiver can resolve to more than one).
	ResolveMember(t types.Type, name string, dir Direction) []Resolution
	// ResolveCallable resolves a deferred Function value to its concrete
	// Callable signature, or false if the context cannot determine one.
	ResolveCallable(f types.Function) (types.Callable, bool)
	// Classes returns the class registry backing this context.
	Classes() classreg.Registry
}
