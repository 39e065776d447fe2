package evalctx

import (
	"github.com/mirocana/typecheck/internal/classreg"
	"github.com/mirocana/typecheck/internal/types"
)

// MemoryContext is a flat, in-memory Context backed by plain maps: no
// lexical scoping, no source positions, suitable for tests and the
// fixture harness where every expression handle is just a string name.
type MemoryContext struct {
	registry  classreg.Registry
	exprTypes map[any]types.Type
	members   map[string][]Resolution
	callables map[any]types.Callable
}

// NewMemoryContext returns an empty MemoryContext backed by registry.
func NewMemoryContext(registry classreg.Registry) *MemoryContext {
	return &MemoryContext{
		registry:  registry,
		exprTypes: make(map[any]types.Type),
		members:   make(map[string][]Resolution),
		callables: make(map[any]types.Callable),
	}
}

// SetExprType records the static type of an expression handle.
func (c *MemoryContext) SetExprType(expr any, t types.Type) {
	c.exprTypes[expr] = t
}

// SetMember records a candidate resolution for name on values of class
// className. The direction is not distinguished in this reference
// implementation; callers that need read/write asymmetry should implement
// their own Context.
func (c *MemoryContext) SetMember(className, name string, t types.Type, origin types.ClassDescriptor) {
	key := className + "." + name
	c.members[key] = append(c.members[key], Resolution{Type: t, Origin: origin})
}

// SetCallable records the concrete signature a Function handle resolves
// to.
func (c *MemoryContext) SetCallable(ref any, sig types.Callable) {
	c.callables[ref] = sig
}

func (c *MemoryContext) TypeOfExpr(expr any) (types.Type, bool) {
	t, ok := c.exprTypes[expr]
	return t, ok
}

func (c *MemoryContext) TypeOfClass(d types.ClassDescriptor) (types.Type, bool) {
	if d == nil || !d.Resolved() {
		return nil, false
	}
	return types.Class{Descriptor: d}, true
}

func (c *MemoryContext) ResolveMember(t types.Type, name string, _ Direction) []Resolution {
	desc, ok := types.ClassLike(t)
	if !ok || desc == nil {
		return nil
	}
	return c.members[desc.Name()+"."+name]
}

func (c *MemoryContext) ResolveCallable(f types.Function) (types.Callable, bool) {
	sig, ok := c.callables[f.Ref]
	return sig, ok
}

func (c *MemoryContext) Classes() classreg.Registry { return c.registry }
