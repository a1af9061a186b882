package semantic

import (
	"testing"

	"github.com/gogpu/hlsl2glsl/ast"
)

func TestLookupIntrinsicsAbsHasFloatAndHalfWidths(t *testing.T) {
	overloads := LookupIntrinsics("abs")
	if len(overloads) != 8 {
		t.Fatalf("len(abs overloads) = %d, want 8 (4 float widths + 4 half widths)", len(overloads))
	}
	for _, o := range overloads {
		if o.NumArgs != 1 {
			t.Errorf("abs overload %v has NumArgs = %d, want 1", o.ArgTypes, o.NumArgs)
		}
		if o.ReturnType != o.ArgTypes[0] {
			t.Errorf("abs overload return type %v does not match argument type %v", o.ReturnType, o.ArgTypes[0])
		}
	}
}

func TestLookupIntrinsicsUnknownNameReturnsNil(t *testing.T) {
	if got := LookupIntrinsics("not_a_real_intrinsic"); got != nil {
		t.Fatalf("LookupIntrinsics(unknown) = %v, want nil", got)
	}
}

func TestClampMiddleArgumentStaysScalar(t *testing.T) {
	for _, o := range LookupIntrinsics("clamp") {
		if o.NumArgs != 3 {
			t.Fatalf("clamp NumArgs = %d, want 3", o.NumArgs)
		}
		if o.ReturnType == ast.Float4 && o.ArgTypes[1] != ast.Float {
			t.Fatalf("clamp(float4,...) middle argument = %v, want scalar Float", o.ArgTypes[1])
		}
	}
}

func TestDotReturnsScalarOfSameFamily(t *testing.T) {
	for _, o := range LookupIntrinsics("dot") {
		fam, ok := FamilyOf(o.ArgTypes[0])
		if !ok {
			t.Fatalf("dot argument %v is not numeric", o.ArgTypes[0])
		}
		want := VectorOf(fam, 1)
		if o.ReturnType != want {
			t.Fatalf("dot(%v,...) returns %v, want scalar %v", o.ArgTypes[0], o.ReturnType, want)
		}
	}
}

func TestCrossIsFloat3Only(t *testing.T) {
	overloads := LookupIntrinsics("cross")
	if len(overloads) != 1 {
		t.Fatalf("len(cross overloads) = %d, want 1", len(overloads))
	}
	if overloads[0].ReturnType != ast.Float3 || overloads[0].ArgTypes[0] != ast.Float3 || overloads[0].ArgTypes[1] != ast.Float3 {
		t.Fatalf("cross overload = %+v, want (float3,float3)->float3", overloads[0])
	}
}

func TestMulHasVectorMatrixAndMatrixMatrixOverloads(t *testing.T) {
	overloads := LookupIntrinsics("mul")
	var sawVecMat, sawMatMat bool
	for _, o := range overloads {
		if o.ArgTypes[0] == ast.Float3 && o.ArgTypes[1] == ast.Float3x3 {
			sawVecMat = true
		}
		if o.ArgTypes[0] == ast.Float4x4 && o.ArgTypes[1] == ast.Float4x4 {
			sawMatMat = true
		}
	}
	if !sawVecMat {
		t.Error("mul missing vector*matrix overload")
	}
	if !sawMatMat {
		t.Error("mul missing matrix*matrix overload")
	}
}

func TestClipReturnsVoid(t *testing.T) {
	for _, o := range LookupIntrinsics("clip") {
		if o.ReturnType != ast.Void {
			t.Fatalf("clip overload returns %v, want Void", o.ReturnType)
		}
		if o.NumArgs != 1 {
			t.Fatalf("clip NumArgs = %d, want 1", o.NumArgs)
		}
	}
}

func TestTextureIntrinsicsTakeASamplerFirst(t *testing.T) {
	cases := map[string]ast.BaseType{
		"tex2D":       ast.Sampler2D,
		"tex2Dproj":   ast.Sampler2D,
		"tex2Dlod":    ast.Sampler2D,
		"texCUBE":     ast.SamplerCube,
		"texCUBEbias": ast.SamplerCube,
	}
	for name, wantSampler := range cases {
		overloads := LookupIntrinsics(name)
		if len(overloads) != 1 {
			t.Fatalf("%s: got %d overloads, want 1", name, len(overloads))
		}
		if overloads[0].ArgTypes[0] != wantSampler {
			t.Fatalf("%s: first argument = %v, want %v", name, overloads[0].ArgTypes[0], wantSampler)
		}
		if overloads[0].ReturnType != ast.Float4 {
			t.Fatalf("%s: return type = %v, want Float4", name, overloads[0].ReturnType)
		}
	}
}

func TestIntrinsicSatisfiesIntrinsicRef(t *testing.T) {
	var ref ast.IntrinsicRef = LookupIntrinsics("sqrt")[0]
	if ref.IntrinsicName() != "sqrt" {
		t.Fatalf("IntrinsicName() = %q, want %q", ref.IntrinsicName(), "sqrt")
	}
}
