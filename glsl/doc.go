// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl translates a parsed HLSL compilation unit (an *ast.Tree,
// §4.5) into GLSL 1.40 source with NVIDIA pragmas. It never consumes
// naga's own IR — the HLSL grammar (cbuffers, register bindings, D3D
// semantics) has no equivalent shape there.
//
// # Basic usage
//
//	source, err := glsl.Compile(tree, glsl.Options{
//	    Stage:      glsl.FragmentStage,
//	    EntryPoint: "main",
//	})
//
// # Identifier sanitization
//
// GLSL reserves a handful of words HLSL does not (input, output, mod, mix).
// When the source happens to use one of those as an identifier, the writer
// substitutes a collision-free name generated against the whole source
// string pool, not just names this writer itself produced.
//
// # Semantic rewrites
//
// Vertex-stage output bound to SV_POSITION is rewritten into a
// Y-flip-and-depth-remap assignment to gl_Position; fragment-stage output
// bound to DEPTH is clamped and assigned to gl_FragDepth.
package glsl
