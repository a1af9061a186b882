package hlsl2glsl

import (
	"strings"
	"testing"

	"github.com/gogpu/hlsl2glsl/glsl"
	"github.com/gogpu/hlsl2glsl/hlsl"
)

const fragmentSource = `
struct PSInput {
    float4 position : SV_Position;
    float2 uv : TEXCOORD0;
};

cbuffer Constants {
    float4 tint;
};

sampler2D diffuseSampler;

float4 PS(PSInput input) : SV_Target {
    float4 color = tex2D(diffuseSampler, input.uv);
    return saturate(color * tint);
}
`

func TestCompileFragmentShader(t *testing.T) {
	opts := DefaultOptions()
	opts.Stage = glsl.FragmentStage
	opts.EntryPoint = "PS"

	result, err := Compile("fragment.hlsl", fragmentSource, opts)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	for _, want := range []string{
		"#version 140",
		"uniform Constants {",
		"uniform sampler2D diffuseSampler;",
		"texture(diffuseSampler",
		"clamp(",
		"in vec2 frag_TEXCOORD0;",
		"gl_FragCoord",
	} {
		if !strings.Contains(result.GLSL, want) {
			t.Errorf("GLSL output missing %q, got:\n%s", want, result.GLSL)
		}
	}
	if strings.Contains(result.GLSL, "tex2D(") {
		t.Errorf("tex2D should have been rewritten to texture(), got:\n%s", result.GLSL)
	}

	for _, want := range []string{
		"float4 tint;",
		"sampler2D diffuseSampler;",
		"tex2D(diffuseSampler",
		"saturate(",
	} {
		if !strings.Contains(result.HLSL, want) {
			t.Errorf("HLSL output missing %q, got:\n%s", want, result.HLSL)
		}
	}
	if strings.Contains(result.HLSL, "cbuffer") {
		t.Errorf("LegacyMode HLSL output should unwrap cbuffer, got:\n%s", result.HLSL)
	}
}

const vertexSource = `
struct VSInput {
    float3 position : POSITION;
    float2 uv : TEXCOORD0;
};

struct VSOutput {
    float4 position : SV_Position;
    float2 uv : TEXCOORD0;
};

cbuffer Transform {
    float4x4 worldViewProj;
};

VSOutput VS(VSInput input) {
    VSOutput output;
    output.position = mul(float4(input.position, 1.0), worldViewProj);
    output.uv = input.uv;
    return output;
}
`

func TestCompileVertexShader(t *testing.T) {
	opts := DefaultOptions()
	opts.Stage = glsl.VertexStage
	opts.HLSLMode = hlsl.ModernMode
	opts.EntryPoint = "VS"

	result, err := Compile("vertex.hlsl", vertexSource, opts)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	for _, want := range []string{
		"in vec3 POSITION;",
		"in vec2 TEXCOORD0;",
		"out vec2 frag_TEXCOORD0;",
		"vec4 _pos = result.position;",
		"gl_Position = _pos * vec4(1.0, -1.0, 2.0, 1.0)",
	} {
		if !strings.Contains(result.GLSL, want) {
			t.Errorf("GLSL output missing %q, got:\n%s", want, result.GLSL)
		}
	}

	for _, want := range []string{
		"cbuffer Transform {",
		"float4x4 worldViewProj;",
		"mul(",
	} {
		if !strings.Contains(result.HLSL, want) {
			t.Errorf("HLSL output missing %q, got:\n%s", want, result.HLSL)
		}
	}
}

func TestCompileReportsParseErrors(t *testing.T) {
	_, err := Compile("broken.hlsl", "float4 PS( : SV_Target { return 0; }", DefaultOptions())
	if err == nil {
		t.Fatal("expected a parse error, got nil")
	}
}

func TestCompileReportsUnknownEntryPoint(t *testing.T) {
	_, err := Compile("fragment.hlsl", fragmentSource, Options{Stage: glsl.FragmentStage, EntryPoint: "Missing"})
	if err == nil {
		t.Fatal("expected an unknown-entry-point error, got nil")
	}
}

func TestParseReturnsTreeOnSuccess(t *testing.T) {
	tree, errs := Parse("fragment.hlsl", fragmentSource)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if tree == nil || tree.Root == nil {
		t.Fatal("expected a non-nil tree with a root")
	}
}
