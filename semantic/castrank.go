package semantic

import "github.com/gogpu/hlsl2glsl/ast"

// castRankTable is the published 5x5 numeric conversion cost table, rows and
// columns ordered {Float, Half, Bool, Int, Uint} per §4.4.1 step 5 of the
// specification. Lower is cheaper; this is intentionally asymmetric
// (uint→int costs 2, int→uint costs 3) and preserves HLSL's permissive
// float→int/uint conversions (rank 4, the same as int→bool and cheaper than
// int→float's rank 5) even though that looks backwards at first glance — see the spec's Design Notes
// on preserving numberTypeRank verbatim.
var castRankTable = [5][5]int{
	// F  H  B  I  U
	{0, 4, 4, 4, 4}, // F
	{1, 0, 4, 4, 4}, // H
	{5, 5, 0, 5, 5}, // B
	{5, 5, 4, 0, 3}, // I
	{5, 5, 4, 2, 0}, // U
}

// CastRank scores the implicit conversion from s to d. Lower is better; -1
// means the conversion is not allowed. See §4.4.1 of the specification for
// the full rule set this implements.
func CastRank(s, d ast.HLSLType) int {
	if s.Array != d.Array {
		return -1
	}
	if s.Array && s.ArraySize != d.ArraySize {
		return -1
	}

	if s.BaseType == ast.UserDefined && d.BaseType == ast.UserDefined {
		if s.TypeName == d.TypeName {
			return 0
		}
		return -1
	}

	if s.BaseType == d.BaseType {
		return 0
	}

	sInfo, sOK := numericTable[s.BaseType]
	dInfo, dOK := numericTable[d.BaseType]
	if !sOK || !dOK {
		return -1
	}

	rank := castRankTable[sInfo.Family][dInfo.Family] << 1

	switch {
	case sInfo.Dims == 0 && dInfo.Dims > 0:
		// Scalar promoted to a vector or matrix: cheap, sets bit 0.
		rank |= 1
	case sInfo.Dims == dInfo.Dims && sInfo.Components > dInfo.Components:
		// Same dimensionality, narrowing the component count: truncation.
		rank |= 16
	case sInfo.Dims > 0 && dInfo.Dims == 0:
		// Vector/matrix collapsed to a scalar: also truncation.
		rank |= 16
	case sInfo.Dims != dInfo.Dims || sInfo.Components != dInfo.Components:
		// Any other shape mismatch (e.g. float3 -> float4x4) is incompatible.
		return -1
	}

	return rank
}
