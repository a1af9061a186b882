// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

// glslKeywords contains GLSL 1.40's reserved words and built-in type names,
// trimmed from the teacher's broader GLSL 4.60/ES 3.20 table (glsl/keywords.go
// in the teacher copy) to the subset that actually exists at version 140.
var glslKeywords = map[string]struct{}{
	"void": {}, "bool": {}, "int": {}, "uint": {}, "float": {},
	"vec2": {}, "vec3": {}, "vec4": {},
	"ivec2": {}, "ivec3": {}, "ivec4": {},
	"uvec2": {}, "uvec3": {}, "uvec4": {},
	"bvec2": {}, "bvec3": {}, "bvec4": {},
	"mat2": {}, "mat3": {}, "mat4": {},
	"sampler2D": {}, "samplerCube": {}, "sampler1D": {}, "sampler3D": {},
	"sampler2DShadow": {}, "samplerCubeShadow": {},
	"in": {}, "out": {}, "inout": {}, "uniform": {}, "const": {}, "attribute": {}, "varying": {},
	"if": {}, "else": {}, "for": {}, "while": {}, "do": {}, "break": {}, "continue": {}, "return": {}, "discard": {},
	"true": {}, "false": {},
	"struct":   {},
	"gl_Position":   {}, "gl_FragDepth": {}, "gl_FragCoord": {}, "gl_FrontFacing": {},
	"gl_InstanceID": {}, "gl_VertexID": {},
	// Reserved by the spec even though HLSL permits them as identifiers
	// (§4.5.1): input/output collide with nothing this writer emits by
	// that exact name, but they are still reserved GLSL words and an HLSL
	// source file is free to use them as variable names.
	"input": {}, "output": {},
	// Reserved because the expression emitter itself names helpers/renamed
	// intrinsics "mod" and "mix" (§4.5.4: fmod->mod, lerp->mix).
	"mod": {}, "mix": {},
}

func isKeyword(name string) bool {
	_, ok := glslKeywords[name]
	return ok
}

// escapeKeyword prefixes name with an underscore if it collides with a
// GLSL reserved word or the gl_ built-in prefix. This covers accidental
// collisions in emitter-generated names (prelude helpers, struct I/O
// fields); user identifiers named input/output/mod/mix are instead routed
// through the Writer's substs table (§4.5.1) so the substitute is
// guaranteed not to occur anywhere in the source string pool.
func escapeKeyword(name string) string {
	if name == "" {
		return "_unnamed"
	}
	if isKeyword(name) {
		return "_" + name
	}
	if len(name) >= 3 && name[:3] == "gl_" {
		return "_" + name
	}
	return name
}

// reservedIdentifiers lists the GLSL-reserved, HLSL-legal identifier
// spellings §4.5.1 requires a substitute for.
var reservedIdentifiers = []string{"input", "output", "mod", "mix"}
