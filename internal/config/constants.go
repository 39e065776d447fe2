package config

// Built-in class names recognized by the matcher's precedence cascade.
const (
	ObjectClassName     = "object"
	TypeClassName       = "type"
	BasestringClassName = "basestring"
	StrClassName        = "str"
	UnicodeClassName    = "unicode"
	CallableClassName   = "callable"
	TupleClassName      = "tuple"
)

// Numeric promotion lattice: Bool ⊂ Int ⊂ Long ⊂ Float ⊂ Complex ⊂ Number.
const (
	BoolClassName    = "bool"
	IntClassName     = "int"
	LongClassName    = "long"
	FloatClassName   = "float"
	ComplexClassName = "complex"
	NumberClassName  = "number"
)

// ABC surface names; each matches its concrete numeric subset.
const (
	IntegralABCName = "Integral"
	RealABCName     = "Real"
	ComplexABCName  = "Complex"
	NumberABCName   = "Number"
)

// Dunder method names consulted by the structural-type matching rules.
const (
	GetAttrMethodName      = "__getattr__"
	GetAttributeMethodName = "__getattribute__"
)
