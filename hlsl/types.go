// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"

	"github.com/gogpu/hlsl2glsl/ast"
)

// hlslType returns t's HLSL spelling. ast.BaseType.String() already speaks
// HLSL (float3, float4x4, sampler2D, ...), so this only needs to handle
// UserDefined names (which may need the §-equivalent case-insensitive
// collision check this package's namer performs for fabricated names) and
// the array suffix.
func (w *Writer) hlslType(t ast.HLSLType) string {
	var base string
	if t.BaseType == ast.UserDefined {
		base = w.identName(t.TypeName)
	} else {
		base = t.BaseType.String()
	}
	if !t.Array {
		return base
	}
	if t.ArraySize < 0 {
		return base + "[]"
	}
	return fmt.Sprintf("%s[%d]", base, t.ArraySize)
}
