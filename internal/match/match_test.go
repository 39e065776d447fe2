package match

import (
	"testing"

	"github.com/mirocana/typecheck/internal/classreg"
	"github.com/mirocana/typecheck/internal/evalctx"
	"github.com/mirocana/typecheck/internal/generics"
	"github.com/mirocana/typecheck/internal/types"
)

func newTestContext() (*evalctx.MemoryContext, *classreg.StaticRegistry) {
	reg := classreg.NewStaticRegistry()
	cache := classreg.NewBuiltinCache(reg)
	reg.SetBuiltins(cache)
	reg.RegisterSubclass(boolName, intName)
	reg.RegisterSubclass(intName, longName)
	reg.RegisterSubclass(longName, floatName)
	reg.RegisterSubclass(floatName, complexName)
	reg.RegisterSubclass(complexName, numberName)
	reg.RegisterABCSubclass(tupleName, listName) // fixture-specific: lets List[T] accept same-arity tuples
	return evalctx.NewMemoryContext(reg), reg
}

const (
	boolName    = "bool"
	intName     = "int"
	longName    = "long"
	floatName   = "float"
	complexName = "complex"
	numberName  = "number"
	listName    = "List"
	tupleName   = "tuple"
)

func classOf(reg *classreg.StaticRegistry, name string) types.Class {
	return types.Class{Descriptor: reg.Declare(name)}
}

func fixedTuple(reg *classreg.StaticRegistry, elems ...types.Type) types.Tuple {
	return types.NewFixedTuple(reg.Declare(tupleName), elems)
}

func homogeneousTuple(reg *classreg.StaticRegistry, elem types.Type) types.Tuple {
	return types.NewHomogeneousTuple(reg.Declare(tupleName), elem)
}

func listOf(reg *classreg.StaticRegistry, elem types.Type) types.Collection {
	return types.Collection{Descriptor: reg.Declare(listName), Params: []types.Type{elem}}
}

func TestReflexivityOfEquals(t *testing.T) {
	ctx, reg := newTestContext()
	dog := classOf(reg, "Dog")
	if !Default(dog, dog, ctx) {
		t.Fatalf("match(Dog, Dog) = false; want true")
	}
}

func TestTopMatchesEverything(t *testing.T) {
	ctx, reg := newTestContext()
	top := types.Class{Descriptor: reg.Declare("object")}
	dog := classOf(reg, "Dog")
	if !Default(top, dog, ctx) {
		t.Fatalf("match(object, Dog) = false; want true")
	}
}

func TestUnknownAbsorbsBothSides(t *testing.T) {
	ctx, reg := newTestContext()
	dog := classOf(reg, "Dog")
	if !Default(dog, types.Unknown{}, ctx) {
		t.Fatalf("match(Dog, unknown) = false; want true")
	}
	if !Default(types.Unknown{}, dog, ctx) {
		t.Fatalf("match(unknown, Dog) = false; want true")
	}
}

func TestUnionLeftDistributes(t *testing.T) {
	ctx, reg := newTestContext()
	a, b, e := classOf(reg, "A"), classOf(reg, "B"), classOf(reg, "E")
	reg.RegisterSubclass("A", "E")
	actual := types.NormalizeUnion([]types.Type{a, b}, false)

	got := Default(e, actual, ctx)
	want := Default(e, a, ctx) && Default(e, b, ctx)
	if got != want || got != false {
		t.Fatalf("match(E, A|B) = %v; want it to equal match(E,A) && match(E,B) = %v (false since B isn't a subclass of E)", got, want)
	}
}

func TestUnionRightDistributes(t *testing.T) {
	ctx, reg := newTestContext()
	a, b, e1, e2 := classOf(reg, "A"), classOf(reg, "B"), classOf(reg, "E1"), classOf(reg, "E2")
	reg.RegisterSubclass("A", "E1")
	expected := types.NormalizeUnion([]types.Type{e1, e2}, false)

	if !Default(expected, a, ctx) {
		t.Fatalf("match(E1|E2, A) = false; want true since A matches E1")
	}
	if Default(expected, b, ctx) {
		t.Fatalf("match(E1|E2, B) = true; want false since B matches neither")
	}
}

func TestClassInstanceDisjointness(t *testing.T) {
	ctx, reg := newTestContext()
	dog := reg.Declare("Dog")
	instance := types.Class{Descriptor: dog, IsDefinition: false}
	classForm := types.Class{Descriptor: dog, IsDefinition: true}

	if Default(classForm, instance, ctx) {
		t.Fatalf("match(Type[Dog], dog-instance) = true; want false")
	}
}

func TestClassInstanceBothAcceptingVariable(t *testing.T) {
	ctx, reg := newTestContext()
	dog := reg.Declare("Dog")
	bothAccepting := types.TypeVar{Name: "T"}
	classForm := types.Class{Descriptor: dog, IsDefinition: true}

	if !Default(bothAccepting, classForm, ctx) {
		t.Fatalf("match(T, Type[Dog]) = false; want true, T accepts both forms")
	}
}

func TestNumericChain(t *testing.T) {
	ctx, reg := newTestContext()
	b, i := classOf(reg, boolName), classOf(reg, intName)
	if !Default(i, b, ctx) {
		t.Fatalf("match(int, bool) = false; want true")
	}
	if Default(b, i, ctx) {
		t.Fatalf("match(bool, int) = true; want false")
	}
}

func TestSubstituteIdempotence(t *testing.T) {
	intType := types.Class{}
	sigma := types.Subst{"T": intType}
	tv := types.TypeVar{Name: "T"}

	once := generics.Substitute(tv, sigma)
	twice := generics.Substitute(once, sigma)
	if once.String() != twice.String() {
		t.Fatalf("substitute(substitute(T, sigma), sigma) = %v; want %v", twice, once)
	}
}

func TestCollectSubstituteRoundTrip(t *testing.T) {
	ctx, reg := newTestContext()
	tv := types.TypeVar{Name: "T"}
	i := classOf(reg, intName)
	subst := types.Subst{}

	if !Match(tv, i, ctx, subst, true) {
		t.Fatalf("match(T, int) = false; want true")
	}
	expectedAfter := generics.Substitute(tv, subst)
	if !Default(expectedAfter, i, ctx) {
		t.Fatalf("match(substitute(T, sigma), int) = false; want true")
	}
}

// End-to-end scenarios.

func TestScenarioListIntVsListBool(t *testing.T) {
	ctx, reg := newTestContext()
	expected := listOf(reg, classOf(reg, intName))
	actual := listOf(reg, classOf(reg, boolName))
	if !Default(expected, actual, ctx) {
		t.Fatalf("match(List[int], List[bool]) = false; want true")
	}
}

func TestScenarioListIntVsFixedTupleOfInts(t *testing.T) {
	ctx, reg := newTestContext()
	expected := listOf(reg, classOf(reg, intName))
	i := classOf(reg, intName)
	actual := fixedTuple(reg, i, i, i)
	if !Default(expected, actual, ctx) {
		t.Fatalf("match(List[int], Tuple[int,int,int]) = false; want true")
	}
}

func TestScenarioFixedTupleArityMismatch(t *testing.T) {
	ctx, reg := newTestContext()
	i, s := classOf(reg, intName), classOf(reg, "str")
	expected := fixedTuple(reg, i, s)
	actual := fixedTuple(reg, i, s, i)
	if Default(expected, actual, ctx) {
		t.Fatalf("match(Tuple[int,str], Tuple[int,str,int]) = true; want false")
	}
}

func TestScenarioFixedExpectedVsHomogeneousActual(t *testing.T) {
	ctx, reg := newTestContext()
	i, s := classOf(reg, intName), classOf(reg, "str")
	expected := fixedTuple(reg, i, s)
	actual := homogeneousTuple(reg, i)
	if Default(expected, actual, ctx) {
		t.Fatalf("match(Tuple[int,str], Tuple[int,...]) = true; want false")
	}
}

func TestScenarioCallableParamsUseSameDirectionNotContravariant(t *testing.T) {
	ctx, reg := newTestContext()
	b := classOf(reg, boolName)
	i := classOf(reg, intName)
	s := classOf(reg, "str")

	expected := types.Callable{Params: []types.Param{{Type: i}}, Return: s}
	actual := types.Callable{Params: []types.Param{{Type: b}}, Return: s}
	if !Default(expected, actual, ctx) {
		t.Fatalf("match(Callable[[int],str], (bool)->str) = false; want true (known-unsound covariant parameter check)")
	}
}

func TestScenarioStructuralDuckTyping(t *testing.T) {
	ctx, reg := newTestContext()
	expected := types.Structural{Attrs: map[string]struct{}{"foo": {}, "bar": {}}}

	full := reg.Declare("C")
	reg.RegisterMember("C", "foo", false)
	reg.RegisterMember("C", "bar", false)
	reg.RegisterMember("C", "baz", false)
	if !Default(expected, types.Class{Descriptor: full}, ctx) {
		t.Fatalf("match(Structural{foo,bar}, C{foo,bar,baz}) = false; want true")
	}

	partial := reg.Declare("D")
	reg.RegisterMember("D", "foo", false)
	if Default(expected, types.Class{Descriptor: partial}, ctx) {
		t.Fatalf("match(Structural{foo,bar}, D{foo}) = true; want false (missing bar, no __getattr__)")
	}
}

func TestBasestringWidensToStrOrUnicode(t *testing.T) {
	ctx, reg := newTestContext()
	strType := classOf(reg, "str")
	basestring := classOf(reg, "basestring")
	if !Default(strType, basestring, ctx) {
		t.Fatalf("match(str, basestring) = false; want true (widens to str|unicode)")
	}
}
