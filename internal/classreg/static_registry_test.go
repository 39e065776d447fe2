package classreg

import "testing"

func TestIsSubclassOfTransitiveThroughChain(t *testing.T) {
	r := NewStaticRegistry()
	r.RegisterSubclass("bool", "int")
	r.RegisterSubclass("int", "number")

	boolDesc, _ := r.Lookup("bool")
	numberDesc, _ := r.Lookup("number")

	if !boolDesc.IsSubclassOf(numberDesc) {
		t.Fatalf("expected bool to be a nominal subclass of number through int")
	}
}

func TestIsABCSubclassOfIsTransitive(t *testing.T) {
	r := NewStaticRegistry()
	r.RegisterABCSubclass("tuple", "Sequence")
	r.RegisterABCSubclass("Sequence", "Iterable")

	tupleDesc, _ := r.Lookup("tuple")
	iterableDesc, _ := r.Lookup("Iterable")

	if !tupleDesc.IsABCSubclassOf(iterableDesc) {
		t.Fatalf("expected ABC-subclass registration to be transitive")
	}
}

func TestMemberNamesInheritedVsDeclared(t *testing.T) {
	r := NewStaticRegistry()
	r.RegisterSubclass("Dog", "Animal")
	r.RegisterMember("Animal", "eat", false)
	r.RegisterMember("Dog", "bark", false)

	dog, _ := r.Lookup("Dog")

	declared := dog.MemberNames(false)
	if _, ok := declared["bark"]; !ok {
		t.Fatalf("expected declared members to include bark")
	}
	if _, ok := declared["eat"]; ok {
		t.Fatalf("expected declared members to exclude inherited eat")
	}

	inherited := dog.MemberNames(true)
	if _, ok := inherited["eat"]; !ok {
		t.Fatalf("expected inherited members to include eat")
	}
}

func TestIsBuiltinWalksAncestors(t *testing.T) {
	r := NewStaticRegistry()
	r.RegisterSubclass("Dog", "object")
	r.RegisterMember("object", "__getattr__", true)

	dog, _ := r.Lookup("Dog")
	if !dog.IsBuiltin("__getattr__") {
		t.Fatalf("expected __getattr__ to be reported builtin via inherited object")
	}
}

func TestUnresolvedAncestorsFlag(t *testing.T) {
	r := NewStaticRegistry()
	r.MarkUnresolvedAncestors("Mystery")

	d, _ := r.Lookup("Mystery")
	if !d.HasUnresolvedAncestors() {
		t.Fatalf("expected HasUnresolvedAncestors to report true after MarkUnresolvedAncestors")
	}
}

func TestNewBuiltinCacheRegistersStringFamily(t *testing.T) {
	r := NewStaticRegistry()
	cache := NewBuiltinCache(r)
	r.SetBuiltins(cache)

	strDesc, _ := r.Lookup("str")
	basestringDesc, _ := r.Lookup("basestring")
	if !strDesc.IsSubclassOf(basestringDesc) {
		t.Fatalf("expected str to be a subclass of basestring")
	}
}
