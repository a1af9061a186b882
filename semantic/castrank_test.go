package semantic

import (
	"testing"

	"github.com/gogpu/hlsl2glsl/ast"
)

func ty(b ast.BaseType) ast.HLSLType { return ast.HLSLType{BaseType: b} }

func TestCastRankIdentityIsZero(t *testing.T) {
	for _, b := range []ast.BaseType{ast.Float, ast.Float3, ast.Float4x4, ast.Int, ast.Bool, ast.Uint2} {
		if got := CastRank(ty(b), ty(b)); got != 0 {
			t.Errorf("CastRank(%v, %v) = %d, want 0", b, b, got)
		}
	}
}

func TestCastRankScalarPromotion(t *testing.T) {
	if got := CastRank(ty(ast.Float), ty(ast.Float3)); got < 0 {
		t.Fatalf("expected scalar-to-vector promotion to be viable, got %d", got)
	}
}

func TestCastRankTruncationIsWorseThanExactMatch(t *testing.T) {
	exact := CastRank(ty(ast.Float3), ty(ast.Float3))
	truncated := CastRank(ty(ast.Float4), ty(ast.Float3))
	if truncated <= exact {
		t.Fatalf("truncation rank %d should be worse (higher) than exact match rank %d", truncated, exact)
	}
}

func TestCastRankUintToIntCheaperThanIntToUint(t *testing.T) {
	iToU := CastRank(ty(ast.Int), ty(ast.Uint))
	uToI := CastRank(ty(ast.Uint), ty(ast.Int))
	if iToU < 0 || uToI < 0 {
		t.Fatalf("both conversions should be viable: int->uint=%d uint->int=%d", iToU, uToI)
	}
	if uToI >= iToU {
		t.Fatalf("uint->int (%d) should be cheaper than int->uint (%d)", uToI, iToU)
	}
}

func TestCastRankFloatToIntCheaperThanIntToBool(t *testing.T) {
	floatToInt := CastRank(ty(ast.Float), ty(ast.Int))
	intToBool := CastRank(ty(ast.Int), ty(ast.Bool))
	if floatToInt >= intToBool {
		t.Fatalf("float->int (%d) should be cheaper than int->bool (%d) per spec's preserved quirk", floatToInt, intToBool)
	}
}

func TestCastRankIncompatibleShapesReject(t *testing.T) {
	if got := CastRank(ty(ast.Float3), ty(ast.Float4x4)); got != -1 {
		t.Fatalf("CastRank(float3, float4x4) = %d, want -1", got)
	}
	if got := CastRank(ty(ast.Float4x4), ty(ast.Float3x3)); got < 0 {
		t.Fatalf("matrix truncation should be viable (lossy but legal), got %d", got)
	}
}

func TestCastRankArrayMismatchRejects(t *testing.T) {
	s := ast.HLSLType{BaseType: ast.Float, Array: true, ArraySize: 4}
	d := ast.HLSLType{BaseType: ast.Float, Array: true, ArraySize: 8}
	if got := CastRank(s, d); got != -1 {
		t.Fatalf("CastRank with mismatched array sizes = %d, want -1", got)
	}
	d2 := ast.HLSLType{BaseType: ast.Float}
	if got := CastRank(s, d2); got != -1 {
		t.Fatalf("CastRank array vs non-array = %d, want -1", got)
	}
}

func TestCastRankUserDefinedIdentity(t *testing.T) {
	a := ast.HLSLType{BaseType: ast.UserDefined, TypeName: 1}
	b := ast.HLSLType{BaseType: ast.UserDefined, TypeName: 1}
	c := ast.HLSLType{BaseType: ast.UserDefined, TypeName: 2}
	if got := CastRank(a, b); got != 0 {
		t.Fatalf("CastRank of identical user-defined types = %d, want 0", got)
	}
	if got := CastRank(a, c); got != -1 {
		t.Fatalf("CastRank of distinct user-defined types = %d, want -1", got)
	}
}
