// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import "github.com/gogpu/hlsl2glsl/ast"

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
		w.fail("hlsl: unsupported statement kind %T", s)
	}
}

func (w *Writer) emitDeclaration(d *ast.Declaration, indent int) {
	w.cw.BeginLine(indent, "", 0)
	if d.Type.Const {
		w.cw.Write("const ")
	}
	w.cw.Write("%s %s", w.hlslType(d.Type), w.identName(d.Name))
	if d.Initializer != nil {
		w.cw.Write(" = ")
		if d.Type.Array {
			w.cw.Write("{ ")
			w.emitArgList(d.Initializer)
			w.cw.Write(" }")
		} else {
			w.emitExpr(d.Initializer)
		}
	}
	w.cw.EndLine(";")
}

func (w *Writer) emitIf(v *ast.If, indent int) {
	w.cw.BeginLine(indent, "", 0)
	w.cw.Write("if (")
	w.emitExpr(v.Cond)
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
		w.emitExpr(v.Cond)
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

func (w *Writer) emitForInit(s ast.Statement) {
	switch v := s.(type) {
	case *ast.Declaration:
		w.cw.Write("%s %s", w.hlslType(v.Type), w.identName(v.Name))
		if v.Initializer != nil {
			w.cw.Write(" = ")
			w.emitExpr(v.Initializer)
		}
	case *ast.ExpressionStatement:
		w.emitExpr(v.Expr)
	default:
		w.fail("hlsl: unsupported for-init statement kind %T", s)
	}
}
