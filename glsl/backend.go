// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"

	"github.com/gogpu/hlsl2glsl/ast"
)

// Stage selects which entry-point attribute-binding rules apply (§4.5.2):
// vertex stage uses no prefix on its "in" attributes and "frag_" on its
// "out" attributes; fragment stage uses "frag_" on its "in" attributes and
// "rast_" on its "out" attributes.
type Stage uint8

const (
	FragmentStage Stage = iota
	VertexStage
)

func (s Stage) String() string {
	if s == VertexStage {
		return "vertex"
	}
	return "fragment"
}

// Options configures GLSL code generation.
type Options struct {
	// Stage is the shading stage EntryPoint is compiled for.
	Stage Stage

	// EntryPoint is the name of the HLSL function to translate. Required —
	// unlike the teacher's naga.glsl.Options, there is no "first entry
	// point" fallback because ast.Tree does not tag functions as entry
	// points; the driver (§6.1) always supplies one explicitly.
	EntryPoint string
}

// DefaultOptions returns the fragment-stage default, matching the CLI's
// own default target (§6.1: "-fs selects fragment target (default)").
func DefaultOptions() Options {
	return Options{Stage: FragmentStage}
}

// Compile translates tree's EntryPoint function into GLSL 1.40 source.
func Compile(tree *ast.Tree, options Options) (string, error) {
	fn := findFunction(tree, options.EntryPoint)
	if fn == nil {
		return "", fmt.Errorf("glsl: entry point %q not found", options.EntryPoint)
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
