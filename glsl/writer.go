// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strings"

	"github.com/gogpu/hlsl2glsl/ast"
	"github.com/gogpu/hlsl2glsl/codewriter"
	"github.com/gogpu/hlsl2glsl/stringpool"
)

// Writer carries the state of one Compile call: the tree being translated,
// the resolved entry point, the output buffer, and the latched error the
// rest of the module checks before returning (§7: "the emitter's own
// latched flag" — once set, later passes keep running but stop mattering).
type Writer struct {
	tree   *ast.Tree
	opts   Options
	entry  *ast.Function
	cw     *codewriter.Writer
	substs map[string]string // reserved HLSL identifier -> collision-free substitute, §4.5.1
	err    error

	wroteGlPosition bool
}

func newWriter(tree *ast.Tree, opts Options, entry *ast.Function) *Writer {
	w := &Writer{
		tree:   tree,
		opts:   opts,
		entry:  entry,
		cw:     codewriter.New(false),
		substs: make(map[string]string),
	}
	for _, word := range reservedIdentifiers {
		if !tree.Strings.Contains(word) {
			continue
		}
		w.substs[word] = w.freshSubstitute(word)
	}
	return w
}

// freshSubstitute generates a name based on word that does not occur
// anywhere in the tree's string pool — §4.5.1 requires collision-freedom
// against the whole source, not just names this writer has produced so far.
func (w *Writer) freshSubstitute(word string) string {
	for n := 0; ; n++ {
		candidate := fmt.Sprintf("%s_%d", word, n)
		if !w.tree.Strings.Contains(candidate) {
			return candidate
		}
	}
}

// identName resolves a source identifier to its GLSL spelling: the §4.5.1
// substitute if one was generated for it, otherwise the keyword-escaped
// original spelling.
func (w *Writer) identName(h stringpool.Handle) string {
	s := w.tree.Strings.String(h)
	if sub, ok := w.substs[s]; ok {
		return sub
	}
	return escapeKeyword(s)
}

func (w *Writer) fail(format string, args ...any) {
	if w.err == nil {
		w.err = fmt.Errorf(format, args...)
	}
}

func (w *Writer) findStruct(name stringpool.Handle) *ast.Struct {
	var found *ast.Struct
	ast.WalkStatements(w.tree.Root.First, func(s ast.Statement) {
		if found != nil {
			return
		}
		if st, ok := s.(*ast.Struct); ok && st.Name == name {
			found = st
		}
	})
	return found
}

// writeModule runs the five emission passes of §4.5: header/pragmas,
// prelude helpers, declarations (structs, uniform blocks, uniforms,
// attributes), the translated function bodies, and the void main()
// entry-caller.
func (w *Writer) writeModule() {
	w.writeHeader()
	w.writePrelude()
	w.writeStructs()
	w.writeBuffers()
	w.writeGlobals()

	argBindings := w.writeInputAttributes()
	outBindings := w.writeOutputAttributes()

	w.writeFunctions()
	w.writeEntryWrapper(argBindings, outBindings)

	if w.opts.Stage == VertexStage && !w.wroteGlPosition {
		w.fail("glsl: vertex entry point %q never writes gl_Position", w.tree.Strings.String(w.entry.Name))
	}
}

func (w *Writer) writeHeader() {
	w.cw.WriteLine(0, "#version 140")
	w.cw.WriteLine(0, "#pragma optionNV(fastmath on)")
	w.cw.WriteLine(0, "#pragma optionNV(fastprecision on)")
	w.cw.Blank()
}

// writePrelude emits the fixed matrix_row/m_scalar_swizzleN helpers
// unconditionally (every emitted program can reach a row or scalar-swizzle
// access) and the legacy-intrinsic helpers only when the source actually
// uses them, checked with tree.Strings.Contains per §4.5 step 2.
func (w *Writer) writePrelude() {
	w.cw.WriteLine(0, "vec3 matrix_row(mat3 m, int r) { return vec3(m[0][r], m[1][r], m[2][r]); }")
	w.cw.WriteLine(0, "vec4 matrix_row(mat4 m, int r) { return vec4(m[0][r], m[1][r], m[2][r], m[3][r]); }")
	w.cw.Blank()

	for _, n := range []int{2, 3, 4} {
		w.cw.WriteLine(0, "vec%d m_scalar_swizzle%d(float x) { return vec%d(%s); }", n, n, n, repeatArg("x", n))
		w.cw.WriteLine(0, "ivec%d im_scalar_swizzle%d(int x) { return ivec%d(%s); }", n, n, n, repeatArg("x", n))
		w.cw.WriteLine(0, "uvec%d um_scalar_swizzle%d(uint x) { return uvec%d(%s); }", n, n, n, repeatArg("x", n))
	}
	w.cw.Blank()

	if w.tree.Strings.Contains("clip") {
		w.cw.WriteLine(0, "void clip(float x) { if (x < 0.0) discard; }")
	}
	if w.tree.Strings.Contains("tex2Dlod") {
		w.cw.WriteLine(0, "vec4 tex2Dlod(sampler2D s, vec4 c) { return textureLod(s, c.xy, c.w); }")
	}
	if w.tree.Strings.Contains("texCUBEbias") {
		w.cw.WriteLine(0, "vec4 texCUBEbias(samplerCube s, vec4 c) { return texture(s, c.xyz, c.w); }")
	}
	if w.tree.Strings.Contains("sincos") {
		w.cw.WriteLine(0, "void sincos(float x, out float s, out float c) { s = sin(x); c = cos(x); }")
	}
	w.cw.Blank()
}

func repeatArg(s string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = s
	}
	return strings.Join(parts, ", ")
}

func (w *Writer) writeStructs() {
	ast.WalkStatements(w.tree.Root.First, func(s ast.Statement) {
		st, ok := s.(*ast.Struct)
		if !ok {
			return
		}
		w.cw.WriteLine(0, "struct %s {", w.identName(st.Name))
		for f := st.Fields; f != nil; f = f.Next {
			typ := w.glslType(f.Type)
			if typ == "" {
				continue // texture-typed field, §4.5.4
			}
			w.cw.WriteLine(1, "%s %s;", typ, escapeKeyword(w.tree.Strings.String(f.Name)))
		}
		w.cw.WriteLine(0, "};")
		w.cw.Blank()
	})
}

// writeBuffers emits each cbuffer/tbuffer as a GLSL uniform block, eliding
// blocks with no emittable fields — §4.5.4 notes NVIDIA rejects an empty
// uniform block.
func (w *Writer) writeBuffers() {
	ast.WalkStatements(w.tree.Root.First, func(s ast.Statement) {
		b, ok := s.(*ast.Buffer)
		if !ok {
			return
		}
		var lines []string
		for f := b.Fields; f != nil; f = f.Next {
			typ := w.glslType(f.Type)
			if typ == "" {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s %s;", typ, escapeKeyword(w.tree.Strings.String(f.Name))))
		}
		if len(lines) == 0 {
			return
		}
		w.cw.WriteLine(0, "uniform %s {", w.identName(b.Name))
		for _, l := range lines {
			w.cw.WriteLine(1, "%s", l)
		}
		w.cw.WriteLine(0, "};")
		w.cw.Blank()
	})
}

// writeGlobals emits top-level non-buffer declarations, which HLSL treats
// as implicitly uniform, as plain GLSL uniform variables.
func (w *Writer) writeGlobals() {
	wrote := false
	for s := w.tree.Root.First; s != nil; s = s.Base().Next {
		d, ok := s.(*ast.Declaration)
		if !ok {
			continue
		}
		typ := w.glslType(d.Type)
		if typ == "" {
			continue // texture-typed uniform dropped, §4.5.4
		}
		w.cw.WriteLine(0, "uniform %s %s;", typ, w.identName(d.Name))
		wrote = true
	}
	if wrote {
		w.cw.Blank()
	}
}

// fieldBinding ties a struct field (or, for a flat scalar binding, no field
// at all) to the GLSL expression that supplies or receives its value: an
// "in"/"out" variable name or a gl_* built-in.
type fieldBinding struct {
	field *ast.StructField
	expr  string
}

// argBinding describes how one entry-point argument is assembled for the
// call inside main(). direct arguments pass a single expression straight
// through (a uniform global, a builtin, or a flat "in" variable); aggregate
// (struct) arguments need a local variable built up field by field.
type argBinding struct {
	arg    *ast.Argument
	direct bool
	expr   string
	fields []fieldBinding
}

// builtinFor maps an HLSL semantic name to the GLSL built-in variable that
// satisfies it, if any, given the stage and whether it is being read (input)
// or written (output) — §4.5.2/§4.5.3, supplemented with SV_InstanceID and
// SV_VertexID (vertex-stage inputs only; original_source has no direct
// analogue, but both are ordinary GLSL built-ins with no remapping needed).
func builtinFor(semantic string, stage Stage, isOutput bool) (string, bool) {
	switch strings.ToUpper(semantic) {
	case "SV_POSITION":
		if isOutput {
			return "gl_Position", true
		}
		return "gl_FragCoord", true
	case "DEPTH", "SV_DEPTH":
		if isOutput {
			return "gl_FragDepth", true
		}
	case "SV_INSTANCEID":
		if stage == VertexStage && !isOutput {
			return "gl_InstanceID", true
		}
	case "SV_VERTEXID":
		if stage == VertexStage && !isOutput {
			return "gl_VertexID", true
		}
	}
	return "", false
}

// writeInputAttributes implements §4.5.2's "in" half: every entry-point
// argument becomes either a direct pass-through (uniform global, built-in)
// or an aggregate assembled from per-field "in" variables.
func (w *Writer) writeInputAttributes() []argBinding {
	inPrefix := "frag_"
	if w.opts.Stage == VertexStage {
		inPrefix = ""
	}

	var bindings []argBinding
	for a := w.entry.Arguments; a != nil; a = a.Next {
		if a.Modifier == ast.ModifierUniform {
			bindings = append(bindings, argBinding{arg: a, direct: true, expr: w.identName(a.Name)})
			continue
		}

		if a.Type.BaseType == ast.UserDefined {
			st := w.findStruct(a.Type.TypeName)
			if st == nil {
				w.fail("glsl: argument %q has unknown struct type", w.tree.Strings.String(a.Name))
				continue
			}
			var fbs []fieldBinding
			for f := st.Fields; f != nil; f = f.Next {
				if !f.HasSemantic {
					fbs = append(fbs, fieldBinding{field: f, expr: w.glslType(f.Type) + "(0)"})
					continue
				}
				sem := w.tree.Strings.String(f.Semantic)
				if b, ok := builtinFor(sem, w.opts.Stage, false); ok {
					fbs = append(fbs, fieldBinding{field: f, expr: b})
					continue
				}
				glslName := inPrefix + sem
				if typ := w.glslType(f.Type); typ != "" {
					w.cw.WriteLine(0, "in %s %s;", typ, glslName)
				}
				fbs = append(fbs, fieldBinding{field: f, expr: glslName})
			}
			bindings = append(bindings, argBinding{arg: a, fields: fbs})
			continue
		}

		if !a.HasSemantic {
			bindings = append(bindings, argBinding{arg: a, direct: true, expr: w.glslType(a.Type) + "(0)"})
			continue
		}
		sem := w.tree.Strings.String(a.Semantic)
		if b, ok := builtinFor(sem, w.opts.Stage, false); ok {
			bindings = append(bindings, argBinding{arg: a, direct: true, expr: b})
			continue
		}
		glslName := inPrefix + sem
		if typ := w.glslType(a.Type); typ != "" {
			w.cw.WriteLine(0, "in %s %s;", typ, glslName)
		}
		bindings = append(bindings, argBinding{arg: a, direct: true, expr: glslName})
	}
	w.cw.Blank()
	return bindings
}

// writeOutputAttributes implements §4.5.2's "out" half for the entry
// point's return value.
func (w *Writer) writeOutputAttributes() []fieldBinding {
	outPrefix := "rast_"
	if w.opts.Stage == VertexStage {
		outPrefix = "frag_"
	}

	rt := w.entry.ReturnType
	if rt.IsVoid() {
		return nil
	}

	if rt.BaseType == ast.UserDefined {
		st := w.findStruct(rt.TypeName)
		if st == nil {
			w.fail("glsl: entry point return type has unknown struct type")
			return nil
		}
		var fbs []fieldBinding
		for f := st.Fields; f != nil; f = f.Next {
			if !f.HasSemantic {
				continue
			}
			sem := w.tree.Strings.String(f.Semantic)
			if b, ok := builtinFor(sem, w.opts.Stage, true); ok {
				fbs = append(fbs, fieldBinding{field: f, expr: b})
				continue
			}
			glslName := outPrefix + sem
			if typ := w.glslType(f.Type); typ != "" {
				w.cw.WriteLine(0, "out %s %s;", typ, glslName)
			}
			fbs = append(fbs, fieldBinding{field: f, expr: glslName})
		}
		w.cw.Blank()
		return fbs
	}

	if !w.entry.HasSemantic {
		return nil
	}
	sem := w.tree.Strings.String(w.entry.Semantic)
	if b, ok := builtinFor(sem, w.opts.Stage, true); ok {
		return []fieldBinding{{expr: b}}
	}
	glslName := outPrefix + sem
	if typ := w.glslType(rt); typ != "" {
		w.cw.WriteLine(0, "out %s %s;", typ, glslName)
	}
	w.cw.Blank()
	return []fieldBinding{{expr: glslName}}
}

func (w *Writer) writeFunctions() {
	ast.WalkStatements(w.tree.Root.First, func(s ast.Statement) {
		fn, ok := s.(*ast.Function)
		if !ok || fn.Body == nil {
			return
		}
		w.writeFunction(fn)
	})
}

func (w *Writer) writeFunction(fn *ast.Function) {
	retType := w.glslType(fn.ReturnType)
	if retType == "" {
		retType = "void"
	}
	w.cw.BeginLine(0, "", 0)
	w.cw.Write("%s %s(", retType, w.identName(fn.Name))
	first := true
	for a := fn.Arguments; a != nil; a = a.Next {
		if !first {
			w.cw.Write(", ")
		}
		first = false
		if a.Modifier == ast.ModifierInout {
			w.cw.Write("inout ")
		}
		w.cw.Write("%s %s", w.glslType(a.Type), w.identName(a.Name))
	}
	w.cw.Write(") {")
	w.cw.EndLine("")
	w.emitStatements(fn.Body, 1)
	w.cw.WriteLine(0, "}")
	w.cw.Blank()
}

// writeEntryWrapper emits §4.5 step 5: a void main() that assembles the
// entry point's argument(s) from the bindings built by
// writeInputAttributes, calls it, and writes the result back through
// outBindings — rewriting SV_Position into the gl_Position Y-flip/depth
// remap and DEPTH into a clamped gl_FragDepth assignment per §4.5.3.
func (w *Writer) writeEntryWrapper(argBindings []argBinding, outBindings []fieldBinding) {
	w.cw.WriteLine(0, "void main() {")

	callArgs := make([]string, 0, len(argBindings))
	for i, b := range argBindings {
		if b.direct {
			callArgs = append(callArgs, b.expr)
			continue
		}
		local := fmt.Sprintf("_arg%d", i)
		w.cw.WriteLine(1, "%s %s;", w.glslType(b.arg.Type), local)
		for _, fb := range b.fields {
			w.cw.WriteLine(1, "%s.%s = %s;", local, escapeKeyword(w.tree.Strings.String(fb.field.Name)), fb.expr)
		}
		callArgs = append(callArgs, local)
	}

	call := fmt.Sprintf("%s(%s)", w.identName(w.entry.Name), strings.Join(callArgs, ", "))
	if w.entry.ReturnType.IsVoid() {
		w.cw.WriteLine(1, "%s;", call)
		w.cw.WriteLine(0, "}")
		return
	}

	w.cw.WriteLine(1, "%s result = %s;", w.glslType(w.entry.ReturnType), call)
	for _, ob := range outBindings {
		resultExpr := "result"
		if ob.field != nil {
			resultExpr = "result." + escapeKeyword(w.tree.Strings.String(ob.field.Name))
		}
		switch ob.expr {
		case "gl_Position":
			w.cw.WriteLine(1, "vec4 _pos = %s;", resultExpr)
			w.cw.WriteLine(1, "gl_Position = _pos * vec4(1.0, -1.0, 2.0, 1.0) - vec4(0.0, 0.0, _pos.w, 0.0);")
			w.wroteGlPosition = true
		case "gl_FragDepth":
			w.cw.WriteLine(1, "gl_FragDepth = clamp(%s, 0.0, 1.0);", resultExpr)
		default:
			w.cw.WriteLine(1, "%s = %s;", ob.expr, resultExpr)
		}
	}
	w.cw.WriteLine(0, "}")
}
