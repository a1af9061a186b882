// Package hlsl2glsl provides a pure Go source-to-source compiler for a
// D3D9-era HLSL dialect.
//
// It compiles HLSL source to GLSL 1.40 (for OpenGL-style renderers that
// never saw HLSL) and back to normalized HLSL (for consumers that want a
// single reformatted, optionally sampler-object-split dialect). The
// package provides a simple, high-level Compile entry point as well as
// access to the individual compilation stages (Parse, then glsl.Compile or
// hlsl.Compile) for callers who want to inspect the parsed tree or run both
// emitters over one parse.
//
// Example usage:
//
//	result, err := hlsl2glsl.Compile("shader.hlsl", source, hlsl2glsl.Options{
//	    Stage:      glsl.FragmentStage,
//	    EntryPoint: "PS",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.GLSL)
package hlsl2glsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/hlsl2glsl/ast"
	"github.com/gogpu/hlsl2glsl/glsl"
	"github.com/gogpu/hlsl2glsl/hlsl"
	"github.com/gogpu/hlsl2glsl/parser"
	"github.com/gogpu/hlsl2glsl/stringpool"
)

// Options configures a Compile call's two emitters.
type Options struct {
	Stage      glsl.Stage
	HLSLMode   hlsl.Mode
	EntryPoint string
}

// DefaultOptions returns the fragment-stage, legacy-HLSL-mode default.
func DefaultOptions() Options {
	return Options{Stage: glsl.FragmentStage, HLSLMode: hlsl.LegacyMode}
}

// Result holds both emitters' output from one Compile call.
type Result struct {
	GLSL string
	HLSL string
}

// Parse parses one HLSL file into an *ast.Tree, returning every diagnostic
// accumulated along the way (§6.4: the parser keeps reporting after an
// error instead of aborting). A non-empty error slice means tree is
// unusable for emission — §7's "no partial AST after failure" applies to
// the tree's well-typedness, not its allocation, so callers must check len
// before handing tree to glsl.Compile/hlsl.Compile.
func Parse(fileName, source string) (*ast.Tree, []error) {
	pool := stringpool.New()
	tree := ast.NewTree(pool)
	p := parser.New(fileName, source, tree)
	errs := p.Parse()
	return tree, errs
}

// Compile parses source and runs both emitters over the result, per §6.1's
// driver contract. It stops at the first failing stage: a parse error
// short-circuits before either emitter runs.
func Compile(fileName, source string, opts Options) (Result, error) {
	tree, errs := Parse(fileName, source)
	if len(errs) > 0 {
		return Result{}, joinErrors(errs)
	}

	glslOut, err := glsl.Compile(tree, glsl.Options{Stage: opts.Stage, EntryPoint: opts.EntryPoint})
	if err != nil {
		return Result{}, err
	}

	hlslOut, err := hlsl.Compile(tree, hlsl.Options{Mode: opts.HLSLMode, EntryPoint: opts.EntryPoint})
	if err != nil {
		return Result{}, err
	}

	return Result{GLSL: glslOut, HLSL: hlslOut}, nil
}

func joinErrors(errs []error) error {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("%s", strings.Join(msgs, "\n"))
}
