package classreg

import "github.com/mirocana/typecheck/internal/types"

// StaticDescriptor is the StaticRegistry's concrete implementation of
// types.ClassDescriptor.
type StaticDescriptor struct {
	name                string
	registry            *StaticRegistry
	unresolved          bool
	hasUnresolvedParent bool
}

func (d *StaticDescriptor) Name() string { return d.name }

func (d *StaticDescriptor) Resolved() bool { return !d.unresolved }

func (d *StaticDescriptor) HasUnresolvedAncestors() bool { return d.hasUnresolvedParent }

func (d *StaticDescriptor) IsSubclassOf(other types.ClassDescriptor) bool {
	o, ok := other.(*StaticDescriptor)
	if !ok {
		return false
	}
	if d.name == o.name {
		return true
	}
	return d.registry.reaches(d.registry.subclassOf, d.name, o.name)
}

func (d *StaticDescriptor) IsABCSubclassOf(other types.ClassDescriptor) bool {
	o, ok := other.(*StaticDescriptor)
	if !ok {
		return false
	}
	return d.registry.reaches(d.registry.abcSubclassOf, d.name, o.name)
}

func (d *StaticDescriptor) MemberNames(inherited bool) map[string]struct{} {
	out := make(map[string]struct{})
	d.registry.collectMembers(d.name, inherited, out, make(map[string]bool))
	return out
}

func (d *StaticDescriptor) IsBuiltin(member string) bool {
	return d.registry.isBuiltinMember(d.name, member, make(map[string]bool))
}

// StaticRegistry is an in-memory Registry backed by explicitly registered
// subclass/ABC edges and member tables, suitable for the fixture harness
// and for tests that need a small, hand-built class graph.
type StaticRegistry struct {
	descriptors   map[string]*StaticDescriptor
	subclassOf    map[string][]string
	abcSubclassOf map[string][]string
	members       map[string]map[string]bool // class -> member -> isBuiltin
	builtins      BuiltinCache
}

// NewStaticRegistry returns an empty registry. Callers typically follow
// with NewBuiltinCache to wire object/type/str/unicode/basestring in.
func NewStaticRegistry() *StaticRegistry {
	return &StaticRegistry{
		descriptors:   make(map[string]*StaticDescriptor),
		subclassOf:    make(map[string][]string),
		abcSubclassOf: make(map[string][]string),
		members:       make(map[string]map[string]bool),
	}
}

// Declare registers name as a known class and returns its descriptor,
// reusing the existing one if name was already declared.
func (r *StaticRegistry) Declare(name string) *StaticDescriptor {
	if d, ok := r.descriptors[name]; ok {
		return d
	}
	d := &StaticDescriptor{name: name, registry: r}
	r.descriptors[name] = d
	return d
}

// DeclareUnresolved registers a placeholder descriptor for a class name
// the caller could not actually resolve (e.g. an unimportable module).
// Subclass checks involving it default to the registry's optimistic rules.
func (r *StaticRegistry) DeclareUnresolved(name string) *StaticDescriptor {
	d := r.Declare(name)
	d.unresolved = true
	return d
}

// MarkUnresolvedAncestors flags name as having at least one ancestor the
// registry could not resolve.
func (r *StaticRegistry) MarkUnresolvedAncestors(name string) {
	r.Declare(name).hasUnresolvedParent = true
}

// RegisterSubclass records a direct nominal sub -> super edge.
func (r *StaticRegistry) RegisterSubclass(sub, super string) {
	r.Declare(sub)
	r.Declare(super)
	r.subclassOf[sub] = append(r.subclassOf[sub], super)
}

// RegisterABCSubclass records a direct virtual/registered sub -> super
// edge, independent of RegisterSubclass.
func (r *StaticRegistry) RegisterABCSubclass(sub, super string) {
	r.Declare(sub)
	r.Declare(super)
	r.abcSubclassOf[sub] = append(r.abcSubclassOf[sub], super)
}

// RegisterMember declares that class owns the named member, builtin
// marking whether it originates from a non-user-declared ancestor.
func (r *StaticRegistry) RegisterMember(class, member string, builtin bool) {
	r.Declare(class)
	if r.members[class] == nil {
		r.members[class] = make(map[string]bool)
	}
	r.members[class][member] = builtin
}

// SetBuiltins installs the BuiltinCache this registry reports through
// Builtins().
func (r *StaticRegistry) SetBuiltins(b BuiltinCache) { r.builtins = b }

func (r *StaticRegistry) Builtins() BuiltinCache { return r.builtins }

func (r *StaticRegistry) Lookup(name string) (types.ClassDescriptor, bool) {
	d, ok := r.descriptors[name]
	if !ok {
		return nil, false
	}
	return d, true
}

// reaches performs a transitive closure search (ABC registration is
// transitive: matching Python's ABCMeta.register semantics through the
// whole chain, not just one hop).
func (r *StaticRegistry) reaches(edges map[string][]string, from, to string) bool {
	if from == to {
		return true
	}
	visited := map[string]bool{from: true}
	queue := append([]string{}, edges[from]...)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == to {
			return true
		}
		if visited[n] {
			continue
		}
		visited[n] = true
		queue = append(queue, edges[n]...)
	}
	return false
}

func (r *StaticRegistry) collectMembers(class string, inherited bool, out map[string]struct{}, visited map[string]bool) {
	if visited[class] {
		return
	}
	visited[class] = true
	for m := range r.members[class] {
		out[m] = struct{}{}
	}
	if !inherited {
		return
	}
	for _, super := range r.subclassOf[class] {
		r.collectMembers(super, inherited, out, visited)
	}
}

func (r *StaticRegistry) isBuiltinMember(class, member string, visited map[string]bool) bool {
	if visited[class] {
		return false
	}
	visited[class] = true
	if builtin, ok := r.members[class][member]; ok {
		return builtin
	}
	for _, super := range r.subclassOf[class] {
		if r.isBuiltinMember(super, member, visited) {
			return true
		}
	}
	return false
}
