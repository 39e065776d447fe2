// Package provider defines the type-provider extension point: pluggable
// sources of generic-type information for classes the core registry alone
// cannot fully describe (e.g. a class whose generic parameters are
// recovered from usage rather than declared).
package provider

import "github.com/mirocana/typecheck/internal/types"

// Provider contributes generic-type information for a class descriptor
// encountered while seeding a receiver's substitution map.
type Provider interface {
	// GenericTypeOf returns a generic view of d (e.g. List[T] for the List
	// class) that can be matched against a concrete receiver type to
	// discover its parameter bindings.
	GenericTypeOf(d types.ClassDescriptor) (types.Type, bool)
	// GenericSubstitutions returns an explicit var -> type map for d,
	// merged into the receiver's substitution for any variable not
	// already bound.
	GenericSubstitutions(d types.ClassDescriptor) types.Subst
}

// Registry is an explicit, ordered list of providers, constructed once by
// the caller rather than reached through a process-global singleton.
type Registry struct {
	providers []Provider
}

// New builds a Registry over providers, consulted in the given order.
func New(providers ...Provider) *Registry {
	return &Registry{providers: providers}
}

// All returns the registered providers in consultation order.
func (r *Registry) All() []Provider {
	if r == nil {
		return nil
	}
	return r.providers
}
