package semantic

import "github.com/gogpu/hlsl2glsl/ast"

// familyRank orders families from "widest" to "narrowest" for the purpose
// of picking the result family of a mixed-family arithmetic op: float wins
// over half, half over int, int over uint, uint over bool.
var familyRank = map[Family]int{
	FamilyFloat: 4,
	FamilyHalf:  3,
	FamilyInt:   2,
	FamilyUint:  1,
	FamilyBool:  0,
}

// BinaryResultType implements §4.4.4: logical/comparison/equality operators
// always yield Bool; arithmetic operators yield the larger numeric family at
// the operands' shared shape, with a scalar operand taking on the other
// side's shape. Assignment and compound-assignment take the LHS type
// unconditionally (handled by the caller, not here — this function is only
// consulted for operators where the result is computed from both sides).
//
// Unknown is returned (and the caller reports "no global operator found")
// when the shapes are incompatible, e.g. a vector against a matrix of
// different arity.
func BinaryResultType(op ast.BinaryOp, lhs, rhs ast.HLSLType) ast.HLSLType {
	if op.IsComparison() {
		return ast.HLSLType{BaseType: ast.Bool}
	}

	lInfo, lOK := numericTable[lhs.BaseType]
	rInfo, rOK := numericTable[rhs.BaseType]
	if !lOK || !rOK {
		return ast.HLSLType{BaseType: ast.Unknown}
	}

	family := lInfo.Family
	if familyRank[rInfo.Family] > familyRank[family] {
		family = rInfo.Family
	}

	switch {
	case lInfo.Dims == 0 && rInfo.Dims == 0:
		return ast.HLSLType{BaseType: ShapeOf(family, lInfo)}
	case lInfo.Dims == 0:
		return ast.HLSLType{BaseType: ShapeOf(family, rInfo)}
	case rInfo.Dims == 0:
		return ast.HLSLType{BaseType: ShapeOf(family, lInfo)}
	case lInfo.Dims == rInfo.Dims && lInfo.Components == rInfo.Components:
		return ast.HLSLType{BaseType: ShapeOf(family, lInfo)}
	default:
		// Matrix against a differently-shaped vector/matrix: no operator.
		return ast.HLSLType{BaseType: ast.Unknown}
	}
}
