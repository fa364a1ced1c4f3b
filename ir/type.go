package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	NumberType
	StringType
	BoolType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:   "Null",
		NumberType: "Number",
		StringType: "String",
		BoolType:   "Bool",
		ObjectType: "Object",
		ArrayType:  "Array",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":   NullType,
		"Number": NumberType,
		"String": StringType,
		"Bool":   BoolType,
		"Object": ObjectType,
		"Array":  ArrayType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		NumberType,
		StringType,
		BoolType,
		ObjectType,
		ArrayType,
	}
}

// IsScalar reports whether nodes of this type carry a primitive value
// rather than children.
func (t Type) IsScalar() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}
