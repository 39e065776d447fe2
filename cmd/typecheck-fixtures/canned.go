package main

import (
	"github.com/mirocana/typecheck/internal/classreg"
	"github.com/mirocana/typecheck/internal/config"
	"github.com/mirocana/typecheck/internal/types"
)

// cannedScenario builds one of spec.md §8's literal end-to-end examples
// against reg (which already carries the numeric chain and string
// family), returning expected, actual and the expected match outcome.
type cannedScenario func(reg *classreg.StaticRegistry) (expected, actual types.Type, want bool)

var cannedScenarios = map[string]cannedScenario{
	"list-int-vs-list-bool": func(reg *classreg.StaticRegistry) (types.Type, types.Type, bool) {
		expected := types.Collection{Descriptor: reg.Declare("List"), Params: []types.Type{types.Class{Descriptor: reg.Declare("int")}}}
		actual := types.Collection{Descriptor: reg.Declare("List"), Params: []types.Type{types.Class{Descriptor: reg.Declare("bool")}}}
		return expected, actual, true
	},
	"list-int-vs-fixed-tuple": func(reg *classreg.StaticRegistry) (types.Type, types.Type, bool) {
		reg.RegisterABCSubclass(config.TupleClassName, "List")
		i := types.Class{Descriptor: reg.Declare("int")}
		expected := types.Collection{Descriptor: reg.Declare("List"), Params: []types.Type{i}}
		actual := types.NewFixedTuple(reg.Declare(config.TupleClassName), []types.Type{i, i, i})
		return expected, actual, true
	},
	"tuple-arity-mismatch": func(reg *classreg.StaticRegistry) (types.Type, types.Type, bool) {
		i := types.Class{Descriptor: reg.Declare("int")}
		s := types.Class{Descriptor: reg.Declare("str")}
		expected := types.NewFixedTuple(reg.Declare(config.TupleClassName), []types.Type{i, s})
		actual := types.NewFixedTuple(reg.Declare(config.TupleClassName), []types.Type{i, s, i})
		return expected, actual, false
	},
	"fixed-expected-vs-homogeneous-actual": func(reg *classreg.StaticRegistry) (types.Type, types.Type, bool) {
		i := types.Class{Descriptor: reg.Declare("int")}
		s := types.Class{Descriptor: reg.Declare("str")}
		expected := types.NewFixedTuple(reg.Declare(config.TupleClassName), []types.Type{i, s})
		actual := types.NewHomogeneousTuple(reg.Declare(config.TupleClassName), i)
		return expected, actual, false
	},
	"callable-params-covariant": func(reg *classreg.StaticRegistry) (types.Type, types.Type, bool) {
		b := types.Class{Descriptor: reg.Declare("bool")}
		i := types.Class{Descriptor: reg.Declare("int")}
		s := types.Class{Descriptor: reg.Declare("str")}
		expected := types.Callable{Params: []types.Param{{Type: i}}, Return: s}
		actual := types.Callable{Params: []types.Param{{Type: b}}, Return: s}
		return expected, actual, true
	},
	"structural-duck-typing-match": func(reg *classreg.StaticRegistry) (types.Type, types.Type, bool) {
		expected := types.Structural{Attrs: map[string]struct{}{"foo": {}, "bar": {}}}
		reg.RegisterMember("C", "foo", false)
		reg.RegisterMember("C", "bar", false)
		reg.RegisterMember("C", "baz", false)
		actual := types.Class{Descriptor: reg.Declare("C")}
		return expected, actual, true
	},
	"structural-duck-typing-miss": func(reg *classreg.StaticRegistry) (types.Type, types.Type, bool) {
		expected := types.Structural{Attrs: map[string]struct{}{"foo": {}, "bar": {}}}
		reg.RegisterMember("D", "foo", false)
		actual := types.Class{Descriptor: reg.Declare("D")}
		return expected, actual, false
	},
	"basestring-widening": func(reg *classreg.StaticRegistry) (types.Type, types.Type, bool) {
		expected := types.Class{Descriptor: reg.Declare("str")}
		actual := types.Class{Descriptor: reg.Declare("basestring")}
		return expected, actual, true
	},
}
