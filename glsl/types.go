// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/hlsl2glsl/ast"
)

// baseGLSLTypeNames maps every scalar/vector/matrix/sampler BaseType to its
// GLSL spelling. Half collapses onto the float family (GLSL 1.40 has no
// half-precision scalar type).
var baseGLSLTypeNames = map[ast.BaseType]string{
	ast.Float: "float", ast.Float2: "vec2", ast.Float3: "vec3", ast.Float4: "vec4",
	ast.Float3x3: "mat3", ast.Float4x4: "mat4",
	ast.Half: "float", ast.Half2: "vec2", ast.Half3: "vec3", ast.Half4: "vec4",
	ast.Half3x3: "mat3", ast.Half4x4: "mat4",
	ast.Bool: "bool",
	ast.Int: "int", ast.Int2: "ivec2", ast.Int3: "ivec3", ast.Int4: "ivec4",
	ast.Uint: "uint", ast.Uint2: "uvec2", ast.Uint3: "uvec3", ast.Uint4: "uvec4",
	ast.Sampler2D: "sampler2D", ast.SamplerCube: "samplerCube",
}

// glslType returns the GLSL spelling of t, consulting identName for
// UserDefined struct names (which may need reserved-word substitution) and
// appending an array suffix when t.Array is set. The empty string signals
// a type with no GLSL representation (ast.Texture — §4.5.4 "texture-typed
// uniforms are dropped").
func (w *Writer) glslType(t ast.HLSLType) string {
	var base string
	switch {
	case t.BaseType == ast.Texture:
		return ""
	case t.BaseType == ast.UserDefined:
		base = w.identName(t.TypeName)
	default:
		name, ok := baseGLSLTypeNames[t.BaseType]
		if !ok {
			base = t.BaseType.String()
		} else {
			base = name
		}
	}
	if !t.Array {
		return base
	}
	if t.ArraySize < 0 {
		return base + "[]"
	}
	return fmt.Sprintf("%s[%d]", base, t.ArraySize)
}

// vectorFamilyPrefix reports the GLSL component-constructor prefix for a
// scalar or vector type name ("" for float, "i" for int, "u" for uint, "b"
// for bool) — used to build m_scalar_swizzleN's per-family helper names.
func vectorFamilyPrefix(base string) string {
	switch base {
	case "int", "ivec2", "ivec3", "ivec4":
		return "i"
	case "uint", "uvec2", "uvec3", "uvec4":
		return "u"
	case "bool", "bvec2", "bvec3", "bvec4":
		return "b"
	default:
		return ""
	}
}
