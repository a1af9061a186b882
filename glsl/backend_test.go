// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strings"
	"testing"

	"github.com/gogpu/hlsl2glsl/ast"
	"github.com/gogpu/hlsl2glsl/parser"
	"github.com/gogpu/hlsl2glsl/stringpool"
)

func parseOrFatal(t *testing.T, source string) *ast.Tree {
	t.Helper()
	pool := stringpool.New()
	tree := ast.NewTree(pool)
	p := parser.New("test.hlsl", source, tree)
	if errs := p.Parse(); len(errs) > 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	return tree
}

const simpleFragmentShader = `
struct PSInput {
    float4 position : SV_Position;
    float4 color : COLOR0;
};

float4 PS(PSInput input) : SV_Target {
    return input.color;
}
`

func TestCompileEmitsHeaderAndEntryWrapper(t *testing.T) {
	tree := parseOrFatal(t, simpleFragmentShader)
	out, err := Compile(tree, Options{Stage: FragmentStage, EntryPoint: "PS"})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, want := range []string{
		"#version 140",
		"in vec4 frag_COLOR0;",
		"void main() {",
		"PS(",
		"rast_SV_Target = result;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}

func TestCompileUnknownEntryPointFails(t *testing.T) {
	tree := parseOrFatal(t, simpleFragmentShader)
	if _, err := Compile(tree, Options{Stage: FragmentStage, EntryPoint: "Nope"}); err == nil {
		t.Fatal("expected an error for an unknown entry point")
	}
}

const vertexShaderMissingPosition = `
struct VSOutput {
    float4 color : COLOR0;
};

VSOutput VS() {
    VSOutput output;
    output.color = float4(1.0, 0.0, 0.0, 1.0);
    return output;
}
`

func TestCompileVertexEntryMustWriteClipPosition(t *testing.T) {
	tree := parseOrFatal(t, vertexShaderMissingPosition)
	if _, err := Compile(tree, Options{Stage: VertexStage, EntryPoint: "VS"}); err == nil {
		t.Fatal("expected an error: vertex entry point never writes gl_Position")
	}
}

const matrixElementShader = `
float4 PS() : SV_Target {
    float3x3 m;
    float x = m._m00;
    return float4(x, x, x, 1.0);
}
`

func TestMatrixElementAccessEmission(t *testing.T) {
	tree := parseOrFatal(t, matrixElementShader)
	out, err := Compile(tree, Options{Stage: FragmentStage, EntryPoint: "PS"})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !strings.Contains(out, "[0][0]") {
		t.Errorf("expected matrix-element access rewritten to [col][row], got:\n%s", out)
	}
}
