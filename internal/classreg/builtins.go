package classreg

import (
	"github.com/mirocana/typecheck/internal/config"
	"github.com/mirocana/typecheck/internal/types"
)

type staticBuiltins struct {
	object, typ, str, unicode, basestring *StaticDescriptor
}

func (b *staticBuiltins) ObjectType() types.Type {
	return types.Class{Descriptor: b.object}
}

func (b *staticBuiltins) TypeType() types.Type {
	return types.Class{Descriptor: b.typ}
}

func (b *staticBuiltins) StrOrUnicodeType() types.Type {
	return types.NormalizeUnion([]types.Type{
		types.Class{Descriptor: b.str},
		types.Class{Descriptor: b.unicode},
	}, false)
}

func (b *staticBuiltins) ByName(name string) (types.ClassDescriptor, bool) {
	switch name {
	case config.ObjectClassName:
		return b.object, true
	case config.TypeClassName:
		return b.typ, true
	case config.StrClassName:
		return b.str, true
	case config.UnicodeClassName:
		return b.unicode, true
	case config.BasestringClassName:
		return b.basestring, true
	default:
		return nil, false
	}
}

// NewBuiltinCache declares the builtin classes object/type/str/unicode/
// basestring on r (str and unicode are registered as subclasses of
// basestring, per the legacy string-family widening rule) and returns a
// BuiltinCache view over them. Call r.SetBuiltins with the result.
func NewBuiltinCache(r *StaticRegistry) BuiltinCache {
	b := &staticBuiltins{
		object:     r.Declare(config.ObjectClassName),
		typ:        r.Declare(config.TypeClassName),
		str:        r.Declare(config.StrClassName),
		unicode:    r.Declare(config.UnicodeClassName),
		basestring: r.Declare(config.BasestringClassName),
	}
	r.RegisterSubclass(config.StrClassName, config.BasestringClassName)
	r.RegisterSubclass(config.UnicodeClassName, config.BasestringClassName)
	r.RegisterSubclass(config.StrClassName, config.ObjectClassName)
	r.RegisterSubclass(config.UnicodeClassName, config.ObjectClassName)
	r.RegisterSubclass(config.TypeClassName, config.ObjectClassName)
	return b
}
