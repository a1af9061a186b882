// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"

	"github.com/gogpu/hlsl2glsl/ast"
)

// Mode selects how cbuffers and sampler objects are rendered — see the
// package doc comment.
type Mode uint8

const (
	LegacyMode Mode = iota
	ModernMode
)

func (m Mode) String() string {
	if m == ModernMode {
		return "modern"
	}
	return "legacy"
}

// Options configures HLSL code generation.
type Options struct {
	Mode Mode

	// EntryPoint is the name of the HLSL function to treat as the
	// compilation's entry point. Unlike glsl.Options, hlslgen's own output
	// does not otherwise depend on which function is the entry point — it
	// is accepted for symmetry with glsl.Options and so the driver (§6.1)
	// can validate the name exists before emitting.
	EntryPoint string
}

// DefaultOptions returns the legacy-mode default.
func DefaultOptions() Options {
	return Options{Mode: LegacyMode}
}

// Compile pretty-prints tree as normalized HLSL source.
func Compile(tree *ast.Tree, options Options) (string, error) {
	fn := findFunction(tree, options.EntryPoint)
	if fn == nil {
		return "", NewError(ErrorNameResolution, fmt.Sprintf("hlsl: entry point %q not found", options.EntryPoint))
	}

	w := newWriter(tree, options, fn)
	w.writeModule()
	if w.err != nil {
		return "", w.err
	}
	return w.cw.String(), nil
}

func findFunction(tree *ast.Tree, name string) *ast.Function {
	var found *ast.Function
	ast.WalkStatements(tree.Root.First, func(s ast.Statement) {
		if found != nil {
			return
		}
		if fn, ok := s.(*ast.Function); ok && fn.Body != nil && tree.Strings.String(fn.Name) == name {
			found = fn
		}
	})
	return found
}
