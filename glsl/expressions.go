// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/hlsl2glsl/ast"
	"github.com/gogpu/hlsl2glsl/semantic"
)

func (w *Writer) emitExpr(e ast.Expression) {
	switch v := e.(type) {
	case *ast.Literal:
		w.emitLiteral(v)
	case *ast.Identifier:
		w.cw.Write("%s", w.identName(v.Name))
	case *ast.Unary:
		w.emitUnary(v)
	case *ast.Binary:
		w.emitBinary(v)
	case *ast.Conditional:
		w.cw.Write("(")
		w.emitBoolForced(v.Cond)
		w.cw.Write(" ? ")
		w.emitExpr(v.Then)
		w.cw.Write(" : ")
		w.emitExpr(v.Else)
		w.cw.Write(")")
	case *ast.MemberAccess:
		w.emitMemberAccess(v)
	case *ast.ArrayAccess:
		w.emitArrayAccess(v)
	case *ast.Cast:
		w.cw.Write("%s(", w.glslType(v.TargetType))
		w.emitExpr(v.Inner)
		w.cw.Write(")")
	case *ast.Constructor:
		w.cw.Write("%s(", w.glslType(v.TargetType))
		w.emitArgList(v.Args)
		w.cw.Write(")")
	case *ast.FunctionCall:
		w.emitCall(v)
	default:
		w.fail("glsl: unsupported expression kind %T", e)
	}
}

func (w *Writer) emitArgList(head ast.Expression) {
	first := true
	for e := head; e != nil; e = e.Base().Next {
		if !first {
			w.cw.Write(", ")
		}
		first = false
		w.emitExpr(e)
	}
}

func (w *Writer) emitLiteral(l *ast.Literal) {
	switch l.LitKind {
	case ast.LiteralFloat, ast.LiteralHalf:
		w.cw.Write("%s", formatFloat(l.AsFloat))
	case ast.LiteralInt:
		w.cw.Write("%d", l.AsInt)
	case ast.LiteralUint:
		w.cw.Write("%du", l.AsUint)
	case ast.LiteralBool:
		if l.AsBool {
			w.cw.Write("true")
		} else {
			w.cw.Write("false")
		}
	}
}

// formatFloat renders f the way GLSL requires (a decimal point or exponent
// always present) independent of locale — §6.3, grounded on
// glsl.formatFloat/formatFloat64 in the teacher.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (w *Writer) emitUnary(u *ast.Unary) {
	switch u.Op {
	case ast.UnaryNegative:
		w.cw.Write("(-")
		w.emitExpr(u.Inner)
		w.cw.Write(")")
	case ast.UnaryPositive:
		w.emitExpr(u.Inner)
	case ast.UnaryNot:
		w.cw.Write("(!")
		w.emitBoolForced(u.Inner)
		w.cw.Write(")")
	case ast.UnaryPreIncrement:
		w.cw.Write("(++")
		w.emitExpr(u.Inner)
		w.cw.Write(")")
	case ast.UnaryPreDecrement:
		w.cw.Write("(--")
		w.emitExpr(u.Inner)
		w.cw.Write(")")
	case ast.UnaryPostIncrement:
		w.cw.Write("(")
		w.emitExpr(u.Inner)
		w.cw.Write("++)")
	case ast.UnaryPostDecrement:
		w.cw.Write("(")
		w.emitExpr(u.Inner)
		w.cw.Write("--)")
	}
}

var binaryOpText = map[ast.BinaryOp]string{
	ast.BinaryAdd: "+", ast.BinarySub: "-", ast.BinaryMul: "*", ast.BinaryDiv: "/",
	ast.BinaryLess: "<", ast.BinaryGreater: ">", ast.BinaryLessEqual: "<=", ast.BinaryGreaterEqual: ">=",
	ast.BinaryEqual: "==", ast.BinaryNotEqual: "!=",
	ast.BinaryAnd: "&&", ast.BinaryOr: "||",
	ast.BinaryAssign: "=", ast.BinaryAddAssign: "+=", ast.BinarySubAssign: "-=",
	ast.BinaryMulAssign: "*=", ast.BinaryDivAssign: "/=",
}

// emitBinary writes a binary expression. Logical && / || force both
// operands to bool() explicitly (§4.5.4: "the destination type is forced to
// Bool so conversions are explicit"), and the RHS of an assignment is
// narrowed to the LHS's type via a constructor call when the types differ.
func (w *Writer) emitBinary(b *ast.Binary) {
	if b.Op == ast.BinaryAnd || b.Op == ast.BinaryOr {
		w.cw.Write("(")
		w.emitBoolForced(b.LHS)
		w.cw.Write(" %s ", binaryOpText[b.Op])
		w.emitBoolForced(b.RHS)
		w.cw.Write(")")
		return
	}

	w.cw.Write("(")
	w.emitExpr(b.LHS)
	w.cw.Write(" %s ", binaryOpText[b.Op])
	if b.Op.IsAssignment() {
		w.emitImplicitConvert(b.RHS, b.LHS.ExprType())
	} else {
		w.emitExpr(b.RHS)
	}
	w.cw.Write(")")
}

func (w *Writer) emitBoolForced(e ast.Expression) {
	if e.ExprType().BaseType == ast.Bool {
		w.emitExpr(e)
		return
	}
	w.cw.Write("bool(")
	w.emitExpr(e)
	w.cw.Write(")")
}

// emitImplicitConvert wraps e in a GLSL constructor call when its static
// type differs from dest — §4.5.4's "implicit narrowing conversions...
// emitted as an explicit GLSL constructor call".
func (w *Writer) emitImplicitConvert(e ast.Expression, dest ast.HLSLType) {
	if e.ExprType().Equal(dest) {
		w.emitExpr(e)
		return
	}
	if _, isCast := e.(*ast.Cast); isCast {
		w.emitExpr(e)
		return
	}
	w.cw.Write("%s(", w.glslType(dest))
	w.emitExpr(e)
	w.cw.Write(")")
}

func (w *Writer) emitMemberAccess(m *ast.MemberAccess) {
	objType := m.Object.ExprType()
	field := w.tree.Strings.String(m.Field)

	switch {
	case objType.BaseType == ast.UserDefined:
		w.emitExpr(m.Object)
		w.cw.Write(".%s", escapeKeyword(field))
	case semantic.DimsOf(objType.BaseType) == 2:
		w.emitMatrixElementAccess(m.Object, objType, field)
	case semantic.DimsOf(objType.BaseType) == 0:
		w.emitScalarSwizzle(m.Object, objType, field)
	default:
		// Vector swizzle — GLSL supports xyzw/rgba swizzles natively.
		w.emitExpr(m.Object)
		w.cw.Write(".%s", field)
	}
}

// emitScalarSwizzle implements the scalar half of §4.4.3/§4.5.4: a 1-letter
// swizzle on a scalar is the identity; longer swizzles need the
// m_scalar_swizzleN prelude helper because GLSL has no swizzle syntax on
// scalar types.
func (w *Writer) emitScalarSwizzle(obj ast.Expression, objType ast.HLSLType, field string) {
	if len(field) == 1 {
		w.emitExpr(obj)
		return
	}
	w.cw.Write("%s(", w.scalarSwizzleHelperName(len(field), objType.BaseType))
	w.emitExpr(obj)
	w.cw.Write(")")
}

func (w *Writer) scalarSwizzleHelperName(n int, base ast.BaseType) string {
	prefix := vectorFamilyPrefix(baseGLSLTypeNames[base])
	return fmt.Sprintf("%sm_scalar_swizzle%d", prefix, n)
}

// emitMatrixElementAccess decomposes an `_m00`/`_11`-style field group
// (§4.4.3's matrix-element grammar) into chained GLSL `[col][row]` indexing,
// since HLSL matrices are row-major and GLSL matrices are column-major.
// A multi-element group is reassembled with a vector constructor.
func (w *Writer) emitMatrixElementAccess(obj ast.Expression, objType ast.HLSLType, field string) {
	type elem struct{ row, col int }
	var elems []elem

	n := field
	for len(n) > 0 {
		n = n[1:] // skip '_'
		base := 1
		if len(n) > 0 && n[0] == 'm' {
			base = 0
			n = n[1:]
		}
		row := int(n[0]-'0') - base
		col := int(n[1]-'0') - base
		elems = append(elems, elem{row, col})
		n = n[2:]
	}

	if len(elems) == 1 {
		w.emitExpr(obj)
		w.cw.Write("[%d][%d]", elems[0].col, elems[0].row)
		return
	}

	family, _ := semantic.FamilyOf(objType.BaseType)
	w.cw.Write("%s(", baseGLSLTypeNames[semantic.VectorOf(family, len(elems))])
	for i, el := range elems {
		if i > 0 {
			w.cw.Write(", ")
		}
		w.emitExpr(obj)
		w.cw.Write("[%d][%d]", el.col, el.row)
	}
	w.cw.Write(")")
}

func (w *Writer) emitArrayAccess(a *ast.ArrayAccess) {
	if semantic.DimsOf(a.Array.ExprType().BaseType) == 2 {
		// §4.5.4: row indexing on a row-major HLSL matrix goes through the
		// matrix_row helper rather than GLSL's native column-major m[i].
		w.cw.Write("matrix_row(")
		w.emitExpr(a.Array)
		w.cw.Write(", ")
		w.emitExpr(a.Index)
		w.cw.Write(")")
		return
	}
	w.emitExpr(a.Array)
	w.cw.Write("[")
	w.emitExpr(a.Index)
	w.cw.Write("]")
}

// simpleIntrinsicRenames covers the HLSL intrinsics §4.5.4 spells
// differently in GLSL with no change in argument shape.
var simpleIntrinsicRenames = map[string]string{
	"tex2D":     "texture",
	"tex2Dproj": "texture2DProj",
	"texCUBE":   "texture",
	"atan2":     "atan",
	"fmod":      "mod",
	"lerp":      "mix",
}

func (w *Writer) emitCall(c *ast.FunctionCall) {
	if c.Function != nil {
		w.cw.Write("%s(", w.identName(c.Function.Name))
		w.emitArgList(c.Args)
		w.cw.Write(")")
		return
	}

	name := w.tree.Strings.String(c.Name)
	switch name {
	case "saturate":
		w.cw.Write("clamp(")
		w.emitArgList(c.Args)
		w.cw.Write(", 0.0, 1.0)")
		return
	case "mul":
		args := collectArgs(c.Args)
		if len(args) != 2 {
			w.fail("glsl: mul() requires exactly 2 arguments, got %d", len(args))
			return
		}
		w.cw.Write("(")
		w.emitExpr(args[0])
		w.cw.Write(" * ")
		w.emitExpr(args[1])
		w.cw.Write(")")
		return
	case "clip", "tex2Dlod", "texCUBEbias", "sincos":
		// Prelude helpers keep the HLSL spelling — no rename needed.
		w.cw.Write("%s(", name)
		w.emitArgList(c.Args)
		w.cw.Write(")")
		return
	}

	if renamed, ok := simpleIntrinsicRenames[name]; ok {
		w.cw.Write("%s(", renamed)
		w.emitArgList(c.Args)
		w.cw.Write(")")
		return
	}

	w.cw.Write("%s(", name)
	w.emitArgList(c.Args)
	w.cw.Write(")")
}

func collectArgs(head ast.Expression) []ast.Expression {
	var out []ast.Expression
	for e := head; e != nil; e = e.Base().Next {
		out = append(out, e)
	}
	return out
}
