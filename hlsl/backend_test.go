// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

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

const samplerShader = `
sampler2D diffuseSampler;

float4 PS(float2 uv : TEXCOORD0) : SV_Target {
    return tex2D(diffuseSampler, uv);
}
`

func TestLegacyModeKeepsCombinedSampler(t *testing.T) {
	tree := parseOrFatal(t, samplerShader)
	out, err := Compile(tree, Options{Mode: LegacyMode, EntryPoint: "PS"})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, want := range []string{"sampler2D diffuseSampler;", "tex2D(diffuseSampler, uv)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}

func TestModernModeSplitsSamplerAndRewritesSample(t *testing.T) {
	tree := parseOrFatal(t, samplerShader)
	out, err := Compile(tree, Options{Mode: ModernMode, EntryPoint: "PS"})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, want := range []string{"Texture2D diffuseSamplerTexture;", "SamplerState diffuseSamplerSampler;", ".Sample(diffuseSamplerSampler, uv)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "sampler2D diffuseSampler;") {
		t.Errorf("modern mode should not keep the combined sampler declaration, got:\n%s", out)
	}
}

const cbufferShader = `
cbuffer Constants : register(b0) {
    float4 tint;
};

float4 PS() : SV_Target {
    return tint;
}
`

func TestLegacyModeUnwrapsCBuffer(t *testing.T) {
	tree := parseOrFatal(t, cbufferShader)
	out, err := Compile(tree, Options{Mode: LegacyMode, EntryPoint: "PS"})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if strings.Contains(out, "cbuffer") {
		t.Errorf("legacy mode should unwrap cbuffer, got:\n%s", out)
	}
	if !strings.Contains(out, "float4 tint;") {
		t.Errorf("expected unwrapped global tint, got:\n%s", out)
	}
}

func TestModernModeKeepsCBufferWithRegister(t *testing.T) {
	tree := parseOrFatal(t, cbufferShader)
	out, err := Compile(tree, Options{Mode: ModernMode, EntryPoint: "PS"})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !strings.Contains(out, "cbuffer Constants : register(b0) {") {
		t.Errorf("expected cbuffer block with register binding, got:\n%s", out)
	}
}

func TestCompileUnknownEntryPointFails(t *testing.T) {
	tree := parseOrFatal(t, cbufferShader)
	if _, err := Compile(tree, Options{Mode: LegacyMode, EntryPoint: "Nope"}); err == nil {
		t.Fatal("expected an error for an unknown entry point")
	}
}
