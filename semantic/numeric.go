// Package semantic holds the static tables the parser and emitters both
// consult: numeric-type descriptions, the binary-operator result table, the
// implicit-cast rank table, and the built-in intrinsic catalog. These tables
// are the load-bearing "semantic layer" of the compiler — they never change
// shape once the process starts, so they are plain package-level data, not
// anything built per compilation.
package semantic

import "github.com/gogpu/hlsl2glsl/ast"

// Family groups a numeric BaseType by its scalar element kind. The order
// here — Float, Half, Bool, Int, Uint — is significant: it is the row/column
// order of the published cast-rank table in castRankTable.
type Family uint8

const (
	FamilyFloat Family = iota
	FamilyHalf
	FamilyBool
	FamilyInt
	FamilyUint
)

// numericInfo describes one numeric BaseType's family and shape.
type numericInfo struct {
	Family     Family
	Dims       int // 0 = scalar, 1 = vector, 2 = matrix
	Components int // total scalar component count
}

var numericTable = map[ast.BaseType]numericInfo{
	ast.Float:    {FamilyFloat, 0, 1},
	ast.Float2:   {FamilyFloat, 1, 2},
	ast.Float3:   {FamilyFloat, 1, 3},
	ast.Float4:   {FamilyFloat, 1, 4},
	ast.Float3x3: {FamilyFloat, 2, 9},
	ast.Float4x4: {FamilyFloat, 2, 16},
	ast.Half:     {FamilyHalf, 0, 1},
	ast.Half2:    {FamilyHalf, 1, 2},
	ast.Half3:    {FamilyHalf, 1, 3},
	ast.Half4:    {FamilyHalf, 1, 4},
	ast.Half3x3:  {FamilyHalf, 2, 9},
	ast.Half4x4:  {FamilyHalf, 2, 16},
	ast.Bool:     {FamilyBool, 0, 1},
	ast.Int:      {FamilyInt, 0, 1},
	ast.Int2:     {FamilyInt, 1, 2},
	ast.Int3:     {FamilyInt, 1, 3},
	ast.Int4:     {FamilyInt, 1, 4},
	ast.Uint:     {FamilyUint, 0, 1},
	ast.Uint2:    {FamilyUint, 1, 2},
	ast.Uint3:    {FamilyUint, 1, 3},
	ast.Uint4:    {FamilyUint, 1, 4},
}

// VectorOf returns the N-component vector BaseType in the same family as b
// (N=1 returns the scalar itself). Used by member/swizzle typing (§4.4.3)
// and by binary-op result typing to rebuild a vector shape in a different
// family.
func VectorOf(family Family, n int) ast.BaseType {
	switch family {
	case FamilyFloat:
		return []ast.BaseType{ast.Void, ast.Float, ast.Float2, ast.Float3, ast.Float4}[n]
	case FamilyHalf:
		return []ast.BaseType{ast.Void, ast.Half, ast.Half2, ast.Half3, ast.Half4}[n]
	case FamilyInt:
		return []ast.BaseType{ast.Void, ast.Int, ast.Int2, ast.Int3, ast.Int4}[n]
	case FamilyUint:
		return []ast.BaseType{ast.Void, ast.Uint, ast.Uint2, ast.Uint3, ast.Uint4}[n]
	case FamilyBool:
		// HLSL has no bool vector types in this dialect; swizzles/ops on
		// bool stay scalar.
		return ast.Bool
	default:
		return ast.Unknown
	}
}

// MatrixOf returns the square matrix BaseType of the given family and row
// count (3 or 4). Only float and half matrices exist in this dialect.
func MatrixOf(family Family, rowsOrCols int) ast.BaseType {
	switch family {
	case FamilyFloat:
		if rowsOrCols == 3 {
			return ast.Float3x3
		}
		return ast.Float4x4
	case FamilyHalf:
		if rowsOrCols == 3 {
			return ast.Half3x3
		}
		return ast.Half4x4
	default:
		return ast.Unknown
	}
}

// ShapeOf rebuilds a BaseType in the given family with the same dims/shape
// as a reference numericInfo — a scalar stays scalar, a vector of N
// components stays a vector of N components, and a 3x3/4x4 matrix stays
// that matrix size. Used to retarget a shape into a different numeric
// family (e.g. int3 + float3 -> float3).
func ShapeOf(family Family, shape numericInfo) ast.BaseType {
	switch shape.Dims {
	case 0:
		return VectorOf(family, 1)
	case 1:
		return VectorOf(family, shape.Components)
	case 2:
		if shape.Components == 9 {
			return MatrixOf(family, 3)
		}
		return MatrixOf(family, 4)
	default:
		return ast.Unknown
	}
}

// FamilyOf returns the numeric family of b, and whether b is numeric at all.
func FamilyOf(b ast.BaseType) (Family, bool) {
	info, ok := numericTable[b]
	return info.Family, ok
}

// DimsOf returns 0 for scalar, 1 for vector, 2 for matrix.
func DimsOf(b ast.BaseType) int {
	return numericTable[b].Dims
}

// ComponentsOf returns the total scalar component count (1 for scalar, N
// for a vector, rows*cols for a matrix).
func ComponentsOf(b ast.BaseType) int {
	return numericTable[b].Components
}

// IsMatrix reports whether b is a 3x3 or 4x4 matrix type.
func IsMatrix(b ast.BaseType) bool {
	return numericTable[b].Dims == 2
}

// MatrixShape returns the (rows, cols) of a matrix BaseType. Both HLSL
// matrix sizes supported by this dialect are square.
func MatrixShape(b ast.BaseType) (rows, cols int) {
	switch b {
	case ast.Float3x3, ast.Half3x3:
		return 3, 3
	case ast.Float4x4, ast.Half4x4:
		return 4, 4
	default:
		return 0, 0
	}
}
