package semantic

import (
	"testing"

	"github.com/gogpu/hlsl2glsl/ast"
)

func TestBinaryResultTypeComparisonIsBool(t *testing.T) {
	got := BinaryResultType(ast.BinaryLess, ty(ast.Float3), ty(ast.Int3))
	if got.BaseType != ast.Bool {
		t.Fatalf("comparison result = %v, want Bool", got.BaseType)
	}
}

func TestBinaryResultTypeScalarTimesVectorKeepsVectorShape(t *testing.T) {
	got := BinaryResultType(ast.BinaryMul, ty(ast.Float), ty(ast.Float3))
	if got.BaseType != ast.Float3 {
		t.Fatalf("scalar*vector = %v, want Float3", got.BaseType)
	}
}

func TestBinaryResultTypePicksWiderFamily(t *testing.T) {
	got := BinaryResultType(ast.BinaryAdd, ty(ast.Int3), ty(ast.Float3))
	if got.BaseType != ast.Float3 {
		t.Fatalf("int3+float3 = %v, want Float3 (float wins)", got.BaseType)
	}
}

func TestBinaryResultTypeMatrixElementwise(t *testing.T) {
	got := BinaryResultType(ast.BinaryAdd, ty(ast.Float4x4), ty(ast.Float4x4))
	if got.BaseType != ast.Float4x4 {
		t.Fatalf("float4x4+float4x4 = %v, want Float4x4", got.BaseType)
	}
}

func TestBinaryResultTypeMismatchedShapeIsUnknown(t *testing.T) {
	got := BinaryResultType(ast.BinaryAdd, ty(ast.Float3), ty(ast.Float4x4))
	if got.BaseType != ast.Unknown {
		t.Fatalf("float3+float4x4 = %v, want Unknown", got.BaseType)
	}
}

func TestBinaryResultTypeScalarTimesMatrix(t *testing.T) {
	got := BinaryResultType(ast.BinaryMul, ty(ast.Float), ty(ast.Float3x3))
	if got.BaseType != ast.Float3x3 {
		t.Fatalf("scalar*matrix = %v, want Float3x3", got.BaseType)
	}
}
