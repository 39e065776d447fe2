// Package classreg defines the class registry external interface the
// matcher consults for nominal/ABC subclassing and member lookups, plus an
// in-memory reference implementation for tests and the fixture harness.
package classreg

import "github.com/mirocana/typecheck/internal/types"

// Registry resolves class names to descriptors and exposes the builtin
// cache the matcher's top-type and string-widening rules need.
type Registry interface {
	Builtins() BuiltinCache
	Lookup(name string) (types.ClassDescriptor, bool)
}

// BuiltinCache exposes the handful of builtin types the matcher treats
// specially, resolved once per registry rather than looked up by name on
// every call.
type BuiltinCache interface {
	// ObjectType is the universal top: every instance matches it.
	ObjectType() types.Type
	// TypeType is the universal metaclass: every class-form type matches
	// it.
	TypeType() types.Type
	// StrOrUnicodeType is the union str | unicode, used to widen a
	// basestring actual.
	StrOrUnicodeType() types.Type
	// ByName looks up a builtin descriptor (basestring, str, unicode, ...)
	// directly.
	ByName(name string) (types.ClassDescriptor, bool)
}
