package semantic

import "github.com/gogpu/hlsl2glsl/ast"

// Intrinsic is one overload of a built-in function. ArgTypes is a fixed
// array whose unused trailing slots hold the zero BaseType (Unknown), so
// NumArgs records the real operand count — clip's single float argument
// and tex2D's two arguments both need an explicit count.
type Intrinsic struct {
	Name       string
	ReturnType ast.BaseType
	ArgTypes   [4]ast.BaseType
	NumArgs    int
}

// IntrinsicName satisfies ast.IntrinsicRef, letting a FunctionCall node hold
// a resolved *Intrinsic without ast importing semantic.
func (i *Intrinsic) IntrinsicName() string { return i.Name }

// float1 expands a unary elementwise intrinsic across float/half and their
// vector widths 1-4, mirroring the source's INTRINSIC_FLOAT1_FUNCTION macro.
func float1(name string) []Intrinsic {
	out := make([]Intrinsic, 0, 8)
	for _, fam := range []Family{FamilyFloat, FamilyHalf} {
		for n := 1; n <= 4; n++ {
			t := VectorOf(fam, orOne(n))
			out = append(out, Intrinsic{Name: name, ReturnType: t, ArgTypes: [4]ast.BaseType{t}, NumArgs: 1})
		}
	}
	return out
}

// float2 expands a binary elementwise intrinsic (both arguments and the
// result share the same type), mirroring INTRINSIC_FLOAT2_FUNCTION.
func float2(name string) []Intrinsic {
	out := make([]Intrinsic, 0, 8)
	for _, fam := range []Family{FamilyFloat, FamilyHalf} {
		for n := 1; n <= 4; n++ {
			t := VectorOf(fam, orOne(n))
			out = append(out, Intrinsic{Name: name, ReturnType: t, ArgTypes: [4]ast.BaseType{t, t}, NumArgs: 2})
		}
	}
	return out
}

// float3 expands a ternary elementwise intrinsic (clamp, lerp, smoothstep).
// The middle operand (clamp's min, lerp's t, smoothstep's mid edge) stays
// scalar at every width per the source's macro table — only the first and
// third operands widen with the return type. The source's own Intrinsic
// constructor for this shape takes a name plus four HLSLBaseType arguments
// (return type + 3 operands); NumArgs here is set to 3, the real operand
// count, rather than carried over as 4 from that constructor's parameter
// list, which is the source's own off-by-one this table deliberately does
// not reproduce.
func float3(name string) []Intrinsic {
	out := make([]Intrinsic, 0, 8)
	for _, fam := range []Family{FamilyFloat, FamilyHalf} {
		for n := 1; n <= 4; n++ {
			t := VectorOf(fam, orOne(n))
			scalar := VectorOf(fam, 1)
			out = append(out, Intrinsic{Name: name, ReturnType: t, ArgTypes: [4]ast.BaseType{t, scalar, t}, NumArgs: 3})
		}
	}
	return out
}

func orOne(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

// Intrinsics is the built-in function catalog consulted by overload
// resolution (§4.4.2) and by both emitters when deciding whether a call is a
// constructor, an intrinsic, or a user function. Ordering does not matter:
// LookupIntrinsics groups by name once at package init.
var Intrinsics = buildIntrinsics()

func buildIntrinsics() []Intrinsic {
	var t []Intrinsic
	t = append(t, float1("abs")...)
	t = append(t, float2("atan2")...)
	t = append(t, float3("clamp")...)
	t = append(t, float1("cos")...)
	t = append(t, float3("lerp")...)
	t = append(t, float3("smoothstep")...)
	t = append(t, float1("floor")...)
	t = append(t, float1("ceil")...)
	t = append(t, float1("frac")...)
	t = append(t, float2("fmod")...)

	for _, fam := range []Family{FamilyFloat, FamilyHalf} {
		for n := 1; n <= 4; n++ {
			arg := VectorOf(fam, orOne(n))
			t = append(t, Intrinsic{Name: "clip", ReturnType: ast.Void, ArgTypes: [4]ast.BaseType{arg}, NumArgs: 1})
		}
	}

	for _, fam := range []Family{FamilyFloat, FamilyHalf} {
		for n := 1; n <= 4; n++ {
			arg := VectorOf(fam, orOne(n))
			scalar := VectorOf(fam, 1)
			t = append(t, Intrinsic{Name: "dot", ReturnType: scalar, ArgTypes: [4]ast.BaseType{arg, arg}, NumArgs: 2})
		}
	}

	t = append(t, Intrinsic{Name: "cross", ReturnType: ast.Float3, ArgTypes: [4]ast.BaseType{ast.Float3, ast.Float3}, NumArgs: 2})

	for _, fam := range []Family{FamilyFloat, FamilyHalf} {
		for n := 1; n <= 4; n++ {
			arg := VectorOf(fam, orOne(n))
			scalar := VectorOf(fam, 1)
			t = append(t, Intrinsic{Name: "length", ReturnType: scalar, ArgTypes: [4]ast.BaseType{arg}, NumArgs: 1})
		}
	}

	t = append(t, float2("max")...)
	t = append(t, float2("min")...)

	t = append(t, float2("mul")...)
	t = append(t, Intrinsic{Name: "mul", ReturnType: ast.Float3, ArgTypes: [4]ast.BaseType{ast.Float3, ast.Float3x3}, NumArgs: 2})
	t = append(t, Intrinsic{Name: "mul", ReturnType: ast.Float4, ArgTypes: [4]ast.BaseType{ast.Float4, ast.Float4x4}, NumArgs: 2})
	t = append(t, Intrinsic{Name: "mul", ReturnType: ast.Float3x3, ArgTypes: [4]ast.BaseType{ast.Float3x3, ast.Float3x3}, NumArgs: 2})
	t = append(t, Intrinsic{Name: "mul", ReturnType: ast.Float4x4, ArgTypes: [4]ast.BaseType{ast.Float4x4, ast.Float4x4}, NumArgs: 2})

	t = append(t, Intrinsic{Name: "transpose", ReturnType: ast.Float3x3, ArgTypes: [4]ast.BaseType{ast.Float3x3}, NumArgs: 1})
	t = append(t, Intrinsic{Name: "transpose", ReturnType: ast.Float4x4, ArgTypes: [4]ast.BaseType{ast.Float4x4}, NumArgs: 1})

	t = append(t, float1("normalize")...)
	t = append(t, float2("pow")...)
	t = append(t, float1("saturate")...)
	t = append(t, float1("sin")...)
	t = append(t, float1("sqrt")...)
	t = append(t, float1("rsqrt")...)
	t = append(t, float1("rcp")...)
	t = append(t, float1("ddx")...)
	t = append(t, float1("ddy")...)
	t = append(t, float1("sign")...)
	t = append(t, float2("step")...)
	t = append(t, float2("reflect")...)

	// sincos writes its two results through out-parameters; for type
	// resolution purposes it behaves as a void call whose three arguments
	// must all share the same float/half width.
	for _, fam := range []Family{FamilyFloat, FamilyHalf} {
		for n := 1; n <= 4; n++ {
			arg := VectorOf(fam, orOne(n))
			t = append(t, Intrinsic{Name: "sincos", ReturnType: ast.Void, ArgTypes: [4]ast.BaseType{arg, arg, arg}, NumArgs: 3})
		}
	}

	t = append(t, Intrinsic{Name: "tex2D", ReturnType: ast.Float4, ArgTypes: [4]ast.BaseType{ast.Sampler2D, ast.Float2}, NumArgs: 2})
	t = append(t, Intrinsic{Name: "tex2Dproj", ReturnType: ast.Float4, ArgTypes: [4]ast.BaseType{ast.Sampler2D, ast.Float4}, NumArgs: 2})
	t = append(t, Intrinsic{Name: "tex2Dlod", ReturnType: ast.Float4, ArgTypes: [4]ast.BaseType{ast.Sampler2D, ast.Float4}, NumArgs: 2})
	t = append(t, Intrinsic{Name: "texCUBE", ReturnType: ast.Float4, ArgTypes: [4]ast.BaseType{ast.SamplerCube, ast.Float3}, NumArgs: 2})
	t = append(t, Intrinsic{Name: "texCUBEbias", ReturnType: ast.Float4, ArgTypes: [4]ast.BaseType{ast.SamplerCube, ast.Float4}, NumArgs: 2})

	return t
}

// intrinsicsByName groups Intrinsics' overloads by name for fast lookup
// during overload resolution.
var intrinsicsByName = func() map[string][]*Intrinsic {
	m := make(map[string][]*Intrinsic, 64)
	for i := range Intrinsics {
		m[Intrinsics[i].Name] = append(m[Intrinsics[i].Name], &Intrinsics[i])
	}
	return m
}()

// LookupIntrinsics returns every overload of the given built-in function
// name, or nil if name does not name an intrinsic.
func LookupIntrinsics(name string) []*Intrinsic {
	return intrinsicsByName[name]
}
