package semantic

import (
	"testing"

	"github.com/gogpu/hlsl2glsl/ast"
	"github.com/gogpu/hlsl2glsl/stringpool"
)

func TestMemberTypeSwizzle(t *testing.T) {
	strings := stringpool.New()
	got, ok := MemberType(ty(ast.Float4), "xyz", strings, nil)
	if !ok || got.BaseType != ast.Float3 {
		t.Fatalf("float4.xyz = %v (ok=%v), want Float3", got.BaseType, ok)
	}
}

func TestMemberTypeSingleComponentSwizzleStaysScalar(t *testing.T) {
	strings := stringpool.New()
	got, ok := MemberType(ty(ast.Int3), "y", strings, nil)
	if !ok || got.BaseType != ast.Int {
		t.Fatalf("int3.y = %v (ok=%v), want Int", got.BaseType, ok)
	}
}

func TestMemberTypeInvalidSwizzleLetterRejected(t *testing.T) {
	strings := stringpool.New()
	if _, ok := MemberType(ty(ast.Float3), "xq", strings, nil); ok {
		t.Fatal("expected 'xq' to be rejected as an invalid swizzle")
	}
}

func TestMemberTypeSwizzleTooLongRejected(t *testing.T) {
	strings := stringpool.New()
	if _, ok := MemberType(ty(ast.Float4), "xyzxy", strings, nil); ok {
		t.Fatal("expected a 5-letter swizzle to be rejected")
	}
}

func TestMemberTypeMatrixElementAccess(t *testing.T) {
	strings := stringpool.New()
	got, ok := MemberType(ty(ast.Float4x4), "_m00", strings, nil)
	if !ok || got.BaseType != ast.Float {
		t.Fatalf("float4x4._m00 = %v (ok=%v), want Float", got.BaseType, ok)
	}
	got, ok = MemberType(ty(ast.Float3x3), "_11", strings, nil)
	if !ok || got.BaseType != ast.Float {
		t.Fatalf("float3x3._11 = %v (ok=%v), want Float", got.BaseType, ok)
	}
}

func TestMemberTypeMatrixElementOutOfRangeRejected(t *testing.T) {
	strings := stringpool.New()
	if _, ok := MemberType(ty(ast.Float3x3), "_m33", strings, nil); ok {
		t.Fatal("expected _m33 to be out of range for a 3x3 matrix")
	}
}

func TestMemberTypeStructField(t *testing.T) {
	strings := stringpool.New()
	nameHandle := strings.Intern("position")
	typeHandle := strings.Intern("Vertex")
	field := &ast.StructField{Name: nameHandle, Type: ast.HLSLType{BaseType: ast.Float3}}
	s := &ast.Struct{Fields: field}
	objType := ast.HLSLType{BaseType: ast.UserDefined, TypeName: typeHandle}

	got, ok := MemberType(objType, "position", strings, func(stringpool.Handle) *ast.Struct { return s })
	if !ok || got.BaseType != ast.Float3 {
		t.Fatalf("struct field lookup = %v (ok=%v), want Float3", got.BaseType, ok)
	}
}

func TestMemberTypeBoolHasNoVectorSwizzle(t *testing.T) {
	strings := stringpool.New()
	if _, ok := MemberType(ty(ast.Bool), "xy", strings, nil); ok {
		t.Fatal("bool has no vector form; a 2-letter swizzle should be rejected")
	}
}
