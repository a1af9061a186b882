// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "github.com/gogpu/hlsl2glsl/ast"

// emitStatements walks a Next-linked statement chain, writing each one at
// the given indent level — §4.5.5.
func (w *Writer) emitStatements(first ast.Statement, indent int) {
	for s := first; s != nil; s = s.Base().Next {
		w.emitStmt(s, indent)
	}
}

func (w *Writer) emitStmt(s ast.Statement, indent int) {
	switch v := s.(type) {
	case *ast.Declaration:
		w.emitDeclaration(v, indent)
	case *ast.If:
		w.emitIf(v, indent)
	case *ast.For:
		w.emitFor(v, indent)
	case *ast.Return:
		w.cw.BeginLine(indent, "", 0)
		w.cw.Write("return")
		if v.Value != nil {
			w.cw.Write(" ")
			w.emitExpr(v.Value)
		}
		w.cw.EndLine(";")
	case *ast.Discard:
		// §4.5.5: discard has no meaning in a vertex shader and is elided.
		if w.opts.Stage == VertexStage {
			return
		}
		w.cw.WriteLine(indent, "discard;")
	case *ast.Break:
		w.cw.WriteLine(indent, "break;")
	case *ast.Continue:
		w.cw.WriteLine(indent, "continue;")
	case *ast.ExpressionStatement:
		w.cw.BeginLine(indent, "", 0)
		w.emitExpr(v.Expr)
		w.cw.EndLine(";")
	default:
		w.fail("glsl: unsupported statement kind %T", s)
	}
}

func (w *Writer) emitDeclaration(d *ast.Declaration, indent int) {
	w.cw.BeginLine(indent, "", 0)
	w.cw.Write("%s %s", w.glslType(d.Type), w.identName(d.Name))
	switch {
	case d.Initializer == nil:
	case d.Type.Array:
		elem := ast.HLSLType{BaseType: d.Type.BaseType, TypeName: d.Type.TypeName}
		w.cw.Write(" = %s[](", w.glslType(elem))
		w.emitArgList(d.Initializer)
		w.cw.Write(")")
	default:
		w.cw.Write(" = ")
		w.emitImplicitConvert(d.Initializer, d.Type)
	}
	w.cw.EndLine(";")
}

func (w *Writer) emitIf(v *ast.If, indent int) {
	w.cw.BeginLine(indent, "", 0)
	w.cw.Write("if (")
	w.emitBoolForced(v.Cond)
	w.cw.Write(") {")
	w.cw.EndLine("")
	w.emitStatements(v.Then, indent+1)
	if v.Else == nil {
		w.cw.WriteLine(indent, "}")
		return
	}
	w.cw.WriteLine(indent, "} else {")
	w.emitStatements(v.Else, indent+1)
	w.cw.WriteLine(indent, "}")
}

func (w *Writer) emitFor(v *ast.For, indent int) {
	w.cw.BeginLine(indent, "", 0)
	w.cw.Write("for (")
	if v.Init != nil {
		w.emitForInit(v.Init)
	}
	w.cw.Write("; ")
	if v.Cond != nil {
		w.emitBoolForced(v.Cond)
	}
	w.cw.Write("; ")
	if v.Increment != nil {
		w.emitExpr(v.Increment)
	}
	w.cw.Write(") {")
	w.cw.EndLine("")
	w.emitStatements(v.Body, indent+1)
	w.cw.WriteLine(indent, "}")
}

// emitForInit writes a for-loop's init clause inline, without its own
// trailing semicolon or indentation — the caller supplies both.
func (w *Writer) emitForInit(s ast.Statement) {
	switch v := s.(type) {
	case *ast.Declaration:
		w.cw.Write("%s %s", w.glslType(v.Type), w.identName(v.Name))
		if v.Initializer != nil {
			w.cw.Write(" = ")
			w.emitImplicitConvert(v.Initializer, v.Type)
		}
	case *ast.ExpressionStatement:
		w.emitExpr(v.Expr)
	default:
		w.fail("glsl: unsupported for-init statement kind %T", s)
	}
}
