// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"strconv"
	"strings"

	"github.com/gogpu/hlsl2glsl/ast"
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
		w.emitExpr(v.Cond)
		w.cw.Write(" ? ")
		w.emitExpr(v.Then)
		w.cw.Write(" : ")
		w.emitExpr(v.Else)
		w.cw.Write(")")
	case *ast.MemberAccess:
		w.emitExpr(v.Object)
		w.cw.Write(".%s", w.tree.Strings.String(v.Field))
	case *ast.ArrayAccess:
		w.emitExpr(v.Array)
		w.cw.Write("[")
		w.emitExpr(v.Index)
		w.cw.Write("]")
	case *ast.Cast:
		w.cw.Write("(%s)", w.hlslType(v.TargetType))
		w.emitExpr(v.Inner)
	case *ast.Constructor:
		w.cw.Write("%s(", w.hlslType(v.TargetType))
		w.emitArgList(v.Args)
		w.cw.Write(")")
	case *ast.FunctionCall:
		w.emitCall(v)
	default:
		w.fail("hlsl: unsupported expression kind %T", e)
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
	case ast.LiteralFloat:
		w.cw.Write("%s", formatFloat(l.AsFloat))
	case ast.LiteralHalf:
		w.cw.Write("%sh", formatFloat(l.AsFloat))
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

// formatFloat renders f with a decimal point or exponent always present,
// independent of locale — §6.3, shared in spirit with glsl.formatFloat.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

type unaryText struct{ prefix, suffix string }

var hlslUnaryText = map[ast.UnaryOp]unaryText{
	ast.UnaryNegative:      {"-", ""},
	ast.UnaryPositive:      {"+", ""},
	ast.UnaryNot:           {"!", ""},
	ast.UnaryPreIncrement:  {"++", ""},
	ast.UnaryPreDecrement:  {"--", ""},
	ast.UnaryPostIncrement: {"", "++"},
	ast.UnaryPostDecrement: {"", "--"},
}

func (w *Writer) emitUnary(u *ast.Unary) {
	t := hlslUnaryText[u.Op]
	w.cw.Write("(%s", t.prefix)
	w.emitExpr(u.Inner)
	w.cw.Write("%s)", t.suffix)
}

var hlslBinaryOpText = map[ast.BinaryOp]string{
	ast.BinaryAdd: "+", ast.BinarySub: "-", ast.BinaryMul: "*", ast.BinaryDiv: "/",
	ast.BinaryLess: "<", ast.BinaryGreater: ">", ast.BinaryLessEqual: "<=", ast.BinaryGreaterEqual: ">=",
	ast.BinaryEqual: "==", ast.BinaryNotEqual: "!=",
	ast.BinaryAnd: "&&", ast.BinaryOr: "||",
	ast.BinaryAssign: "=", ast.BinaryAddAssign: "+=", ast.BinarySubAssign: "-=",
	ast.BinaryMulAssign: "*=", ast.BinaryDivAssign: "/=",
}

func (w *Writer) emitBinary(b *ast.Binary) {
	w.cw.Write("(")
	w.emitExpr(b.LHS)
	w.cw.Write(" %s ", hlslBinaryOpText[b.Op])
	w.emitExpr(b.RHS)
	w.cw.Write(")")
}

// emitCall rewrites a tex2D/texCUBE call on a ModernMode-split sampler
// object into a Texture.Sample(Sampler, uv) method call; every other call
// (user function or intrinsic) passes through unchanged since HLSL
// pretty-printed as HLSL needs no renaming.
func (w *Writer) emitCall(c *ast.FunctionCall) {
	if c.Function != nil {
		w.cw.Write("%s(", w.identName(c.Function.Name))
		w.emitArgList(c.Args)
		w.cw.Write(")")
		return
	}

	name := w.tree.Strings.String(c.Name)
	if w.opts.Mode == ModernMode && (name == "tex2D" || name == "texCUBE") {
		if args := collectArgs(c.Args); len(args) == 2 {
			if id, ok := args[0].(*ast.Identifier); ok {
				if pair, ok := w.samplers[id.Name]; ok {
					w.cw.Write("%s.Sample(%s, ", pair.textureName, pair.samplerName)
					w.emitExpr(args[1])
					w.cw.Write(")")
					return
				}
			}
		}
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
