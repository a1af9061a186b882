package semantic

import (
	"testing"

	"github.com/gogpu/hlsl2glsl/ast"
	"github.com/gogpu/hlsl2glsl/stringpool"
)

func newFunction(strings *stringpool.Pool, name string, ret ast.BaseType, argTypes ...ast.BaseType) *ast.Function {
	fn := &ast.Function{
		Name:         strings.Intern(name),
		ReturnType:   ast.HLSLType{BaseType: ret},
		NumArguments: len(argTypes),
	}
	var head, tail *ast.Argument
	for _, t := range argTypes {
		arg := &ast.Argument{Type: ast.HLSLType{BaseType: t}}
		if head == nil {
			head = arg
		} else {
			tail.Next = arg
		}
		tail = arg
	}
	fn.Arguments = head
	return fn
}

func TestResolveOverloadUndeclaredIdentifier(t *testing.T) {
	strings := stringpool.New()
	_, err := ResolveOverload("nope", nil, strings, []ast.HLSLType{ty(ast.Float)})
	if err == nil {
		t.Fatal("expected an error for an undeclared identifier")
	}
}

func TestResolveOverloadNoViableOverload(t *testing.T) {
	strings := stringpool.New()
	fn := newFunction(strings, "f", ast.Float, ast.Float3x3)
	_, err := ResolveOverload("f", []*ast.Function{fn}, strings, []ast.HLSLType{ty(ast.Float3)})
	if err == nil {
		t.Fatal("expected an error: float3 does not implicitly convert to float3x3")
	}
}

func TestResolveOverloadPicksExactIntOverOverUint(t *testing.T) {
	strings := stringpool.New()
	fInt := newFunction(strings, "f", ast.Float, ast.Int)
	fUint := newFunction(strings, "f", ast.Float, ast.Uint)
	got, err := ResolveOverload("f", []*ast.Function{fInt, fUint}, strings, []ast.HLSLType{ty(ast.Int)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Function != fInt {
		t.Fatalf("resolved to %v, want the int overload (exact match)", got.Function)
	}
}

func TestResolveOverloadAmbiguousWhenRanksTie(t *testing.T) {
	strings := stringpool.New()
	fA := newFunction(strings, "f", ast.Float, ast.Float3)
	fB := newFunction(strings, "f", ast.Float, ast.Half3)
	_, err := ResolveOverload("f", []*ast.Function{fA, fB}, strings, []ast.HLSLType{ty(ast.Int3)})
	if err == nil {
		t.Fatal("expected an ambiguity error: int3->float3 and int3->half3 both rank 10")
	}
}

func TestResolveOverloadFallsThroughToIntrinsic(t *testing.T) {
	strings := stringpool.New()
	got, err := ResolveOverload("sqrt", nil, strings, []ast.HLSLType{ty(ast.Float3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Intrinsic == nil || got.Intrinsic.Name != "sqrt" {
		t.Fatalf("resolved candidate = %+v, want the sqrt intrinsic", got)
	}
	if got.ReturnType().BaseType != ast.Float3 {
		t.Fatalf("sqrt(float3) return type = %v, want Float3", got.ReturnType().BaseType)
	}
}

func TestResolveOverloadUserFunctionShadowsNothingFromIntrinsics(t *testing.T) {
	// A user function and an intrinsic can share a name; both are
	// candidates and the normal rank comparison decides the winner. Here
	// the user sqrt(float4) and the intrinsic sqrt(float4) both rank 0, so
	// the call is ambiguous.
	strings := stringpool.New()
	userSqrt := newFunction(strings, "sqrt", ast.Float4, ast.Float4)
	got, err := ResolveOverload("sqrt", []*ast.Function{userSqrt}, strings, []ast.HLSLType{ty(ast.Float4)})
	if err == nil {
		t.Fatalf("expected an ambiguity error, got %+v", got)
	}
	if err.Error() != "2 overloads have similar conversions" {
		t.Fatalf("error = %q, want the ambiguity error for the user and intrinsic sqrt(float4)", err.Error())
	}
}
