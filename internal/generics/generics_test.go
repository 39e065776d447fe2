package generics

import (
	"testing"

	"github.com/mirocana/typecheck/internal/types"
)

func TestCollectFindsVariableInBound(t *testing.T) {
	inner := types.TypeVar{Name: "U"}
	outer := types.TypeVar{Name: "T", Bound: inner}

	vars := Collect(outer)
	if len(vars) != 2 {
		t.Fatalf("Collect(T: U) = %v; want 2 variables", vars)
	}
}

func TestCollectDeduplicatesRepeatedVariable(t *testing.T) {
	tv := types.TypeVar{Name: "T"}
	coll := types.Collection{Params: []types.Type{tv, tv}}

	vars := Collect(coll)
	if len(vars) != 1 {
		t.Fatalf("Collect(List[T, T]) = %v; want 1 variable", vars)
	}
}

func TestHasGenericsFalseForConcreteType(t *testing.T) {
	intType := types.Class{Descriptor: stubDescriptor{"int"}}
	if HasGenerics(intType) {
		t.Fatalf("HasGenerics(int) = true; want false")
	}
}

func TestSubstituteReplacesVariable(t *testing.T) {
	tv := types.TypeVar{Name: "T"}
	intType := types.Class{Descriptor: stubDescriptor{"int"}}
	sigma := types.Subst{"T": intType}

	got := Substitute(tv, sigma)
	if got.String() != "int" {
		t.Fatalf("Substitute(T, {T: int}) = %v; want int", got)
	}
}

func TestSubstituteShortCircuitsWithoutGenerics(t *testing.T) {
	intType := types.Class{Descriptor: stubDescriptor{"int"}}
	got := Substitute(intType, types.Subst{"T": intType})
	if got.String() != "int" {
		t.Fatalf("Substitute(int, ...) = %v; want int unchanged", got)
	}
}

func TestSubstituteChasesChainedVariable(t *testing.T) {
	intType := types.Class{Descriptor: stubDescriptor{"int"}}
	sigma := types.Subst{
		"T": types.TypeVar{Name: "U"},
		"U": intType,
	}
	got := Substitute(types.TypeVar{Name: "T"}, sigma)
	if got.String() != "int" {
		t.Fatalf("Substitute(T, {T: U, U: int}) = %v; want int", got)
	}
}

func TestSubstituteStopsOnCyclicChain(t *testing.T) {
	sigma := types.Subst{
		"T": types.TypeVar{Name: "U"},
		"U": types.TypeVar{Name: "T"},
	}
	got := Substitute(types.TypeVar{Name: "T"}, sigma)
	if _, ok := got.(types.TypeVar); !ok {
		t.Fatalf("Substitute on a cyclic chain = %v; want it to terminate on a variable, not loop", got)
	}
}

func TestSubstituteRecursesIntoCollectionParams(t *testing.T) {
	tv := types.TypeVar{Name: "T"}
	intType := types.Class{Descriptor: stubDescriptor{"int"}}
	coll := types.Collection{Descriptor: stubDescriptor{"List"}, Params: []types.Type{tv}}

	got := Substitute(coll, types.Subst{"T": intType})
	if got.String() != "List[int]" {
		t.Fatalf("Substitute(List[T], {T: int}) = %v; want List[int]", got)
	}
}

type stubDescriptor struct{ name string }

func (s stubDescriptor) Name() string                                  { return s.name }
func (s stubDescriptor) Resolved() bool                                { return true }
func (s stubDescriptor) HasUnresolvedAncestors() bool                  { return false }
func (s stubDescriptor) IsSubclassOf(types.ClassDescriptor) bool       { return false }
func (s stubDescriptor) IsABCSubclassOf(types.ClassDescriptor) bool    { return false }
func (s stubDescriptor) MemberNames(bool) map[string]struct{}         { return nil }
func (s stubDescriptor) IsBuiltin(string) bool                        { return false }
