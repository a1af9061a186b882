package ast

import "github.com/gogpu/hlsl2glsl/stringpool"

// BaseType enumerates every shape an HLSLType can take. The numeric range
// (Float through Uint4) is kept contiguous so that IsNumeric can test it as
// a range; the semantic layer looks up each numeric type's family and shape
// in its numericTable map.
type BaseType uint8

const (
	Unknown BaseType = iota
	Void

	// Numeric range — must stay contiguous; see FirstNumeric/LastNumeric below.
	Float
	Float2
	Float3
	Float4
	Float3x3
	Float4x4
	Half
	Half2
	Half3
	Half4
	Half3x3
	Half4x4
	Bool
	Int
	Int2
	Int3
	Int4
	Uint
	Uint2
	Uint3
	Uint4

	Texture
	Sampler2D
	SamplerCube
	UserDefined
)

// FirstNumeric and LastNumeric bound the contiguous numeric subrange of
// BaseType.
const (
	FirstNumeric = Float
	LastNumeric  = Uint4
)

// IsNumeric reports whether b falls in the contiguous numeric subrange.
func (b BaseType) IsNumeric() bool {
	return b >= FirstNumeric && b <= LastNumeric
}

func (b BaseType) String() string {
	switch b {
	case Unknown:
		return "unknown"
	case Void:
		return "void"
	case Float:
		return "float"
	case Float2:
		return "float2"
	case Float3:
		return "float3"
	case Float4:
		return "float4"
	case Float3x3:
		return "float3x3"
	case Float4x4:
		return "float4x4"
	case Half:
		return "half"
	case Half2:
		return "half2"
	case Half3:
		return "half3"
	case Half4:
		return "half4"
	case Half3x3:
		return "half3x3"
	case Half4x4:
		return "half4x4"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Int2:
		return "int2"
	case Int3:
		return "int3"
	case Int4:
		return "int4"
	case Uint:
		return "uint"
	case Uint2:
		return "uint2"
	case Uint3:
		return "uint3"
	case Uint4:
		return "uint4"
	case Texture:
		return "texture"
	case Sampler2D:
		return "sampler2D"
	case SamplerCube:
		return "samplerCUBE"
	case UserDefined:
		return "<user-defined>"
	default:
		return "?"
	}
}

// HLSLType describes the type of any expression, declaration, argument, or
// field. It is copied by value everywhere, matching how cheaply it needs to
// move through the parser's on-the-fly type inference.
type HLSLType struct {
	BaseType BaseType

	// TypeName identifies the struct/cbuffer type when BaseType is
	// UserDefined.
	TypeName stringpool.Handle

	// Array and ArraySize describe `type name[N]` declarations. ArraySize
	// is -1 for an unsized ("[]") array or one whose size is not an integer
	// literal, and 0 when Array is false.
	Array     bool
	ArraySize int

	// Const marks a `const`-qualified declaration.
	Const bool
}

// Equal reports whether two types describe the same shape, used by the GLSL
// emitter to decide whether an implicit conversion needs an explicit cast.
func (t HLSLType) Equal(o HLSLType) bool {
	return t.BaseType == o.BaseType &&
		t.TypeName == o.TypeName &&
		t.Array == o.Array &&
		t.ArraySize == o.ArraySize
}

// IsVoid reports whether t is the void type.
func (t HLSLType) IsVoid() bool { return t.BaseType == Void }
