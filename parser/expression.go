package parser

import (
	"strconv"

	"github.com/gogpu/hlsl2glsl/ast"
	"github.com/gogpu/hlsl2glsl/semantic"
	"github.com/gogpu/hlsl2glsl/stringpool"
	"github.com/gogpu/hlsl2glsl/token"
)

// expression is the grammar's entry point: an assignment expression, which
// is itself a conditional expression optionally followed by a right-
// associative assignment operator. Every lower precedence level
// (conditional, logical-or/and, equality, relational, additive,
// multiplicative, unary, postfix) is implemented as one step down from here,
// matching HLSLParser::ParseExpression's binary-operator precedence climb.
func (p *Parser) expression() (ast.Expression, bool) {
	return p.assignment()
}

var assignOps = map[token.Kind]ast.BinaryOp{
	token.Equal:       ast.BinaryAssign,
	token.PlusEqual:   ast.BinaryAddAssign,
	token.MinusEqual:  ast.BinarySubAssign,
	token.TimesEqual:  ast.BinaryMulAssign,
	token.DivideEqual: ast.BinaryDivAssign,
}

func (p *Parser) assignment() (ast.Expression, bool) {
	lhs, ok := p.conditional()
	if !ok {
		return nil, false
	}
	op, found := assignOps[p.tz.Token().Kind]
	if !found {
		return lhs, true
	}
	line := p.line()
	p.tz.Next()

	rhs, ok := p.assignment()
	if !ok {
		return nil, false
	}
	if semantic.CastRank(rhs.ExprType(), lhs.ExprType()) < 0 {
		p.errorf("cannot implicitly convert from %q to %q", rhs.ExprType().BaseType, lhs.ExprType().BaseType)
		return nil, false
	}

	b := p.tree.NewBinary(p.file, line)
	b.Op = op
	b.LHS = lhs
	b.RHS = rhs
	b.SetExprType(lhs.ExprType())
	return b, true
}

// conditional is `cond ? then : else`, right-associative, with the
// condition required to be bool and the two branches required to agree on a
// common implicit-conversion type.
func (p *Parser) conditional() (ast.Expression, bool) {
	cond, ok := p.logicalOr()
	if !ok {
		return nil, false
	}
	line := p.line()
	if !p.accept(token.Question) {
		return cond, true
	}
	if cond.ExprType().BaseType != ast.Bool {
		p.errorf("condition of '?:' must be bool")
		return nil, false
	}

	then, ok := p.expression()
	if !ok || !p.expect(token.Colon) {
		return nil, false
	}
	els, ok := p.assignment()
	if !ok {
		return nil, false
	}

	resultType := then.ExprType()
	if semantic.CastRank(els.ExprType(), resultType) < 0 && semantic.CastRank(resultType, els.ExprType()) < 0 {
		p.errorf("mismatched types %q and %q in '?:'", then.ExprType().BaseType, els.ExprType().BaseType)
		return nil, false
	}

	c := p.tree.NewConditional(p.file, line)
	c.Cond = cond
	c.Then = then
	c.Else = els
	c.SetExprType(resultType)
	return c, true
}

var logicalOrOps = map[token.Kind]ast.BinaryOp{token.BarBar: ast.BinaryOr}
var logicalAndOps = map[token.Kind]ast.BinaryOp{token.AndAnd: ast.BinaryAnd}
var equalityOps = map[token.Kind]ast.BinaryOp{token.EqualEqual: ast.BinaryEqual, token.NotEqual: ast.BinaryNotEqual}
var relationalOps = map[token.Kind]ast.BinaryOp{
	token.Less: ast.BinaryLess, token.Greater: ast.BinaryGreater,
	token.LessEqual: ast.BinaryLessEqual, token.GreaterEqual: ast.BinaryGreaterEqual,
}
var additiveOps = map[token.Kind]ast.BinaryOp{token.Plus: ast.BinaryAdd, token.Minus: ast.BinarySub}
var multiplicativeOps = map[token.Kind]ast.BinaryOp{token.Times: ast.BinaryMul, token.Divide: ast.BinaryDiv}

func (p *Parser) logicalOr() (ast.Expression, bool) { return p.binaryLevel(p.logicalAnd, logicalOrOps) }
func (p *Parser) logicalAnd() (ast.Expression, bool) { return p.binaryLevel(p.equality, logicalAndOps) }
func (p *Parser) equality() (ast.Expression, bool)  { return p.binaryLevel(p.relational, equalityOps) }
func (p *Parser) relational() (ast.Expression, bool) { return p.binaryLevel(p.additive, relationalOps) }
func (p *Parser) additive() (ast.Expression, bool)  { return p.binaryLevel(p.multiplicative, additiveOps) }
func (p *Parser) multiplicative() (ast.Expression, bool) {
	return p.binaryLevel(p.unary, multiplicativeOps)
}

// binaryLevel parses one left-associative precedence level: next parses one
// operand, and ops names every binary operator recognized at this level.
func (p *Parser) binaryLevel(next func() (ast.Expression, bool), ops map[token.Kind]ast.BinaryOp) (ast.Expression, bool) {
	lhs, ok := next()
	if !ok {
		return nil, false
	}
	for {
		op, found := ops[p.tz.Token().Kind]
		if !found {
			return lhs, true
		}
		line := p.line()
		p.tz.Next()

		rhs, ok := next()
		if !ok {
			return nil, false
		}

		resultType := semantic.BinaryResultType(op, lhs.ExprType(), rhs.ExprType())
		if resultType.BaseType == ast.Unknown {
			p.errorf("no global operator found for types %q and %q", lhs.ExprType().BaseType, rhs.ExprType().BaseType)
			return nil, false
		}

		b := p.tree.NewBinary(p.file, line)
		b.Op = op
		b.LHS = lhs
		b.RHS = rhs
		b.SetExprType(resultType)
		lhs = b
	}
}

// unary parses a prefix operator and its operand. The result type follows
// the operand for -, +, ++ and --, and is forced to bool for !.
func (p *Parser) unary() (ast.Expression, bool) {
	line := p.line()
	var op ast.UnaryOp
	switch {
	case p.accept(token.Minus):
		op = ast.UnaryNegative
	case p.accept(token.Plus):
		op = ast.UnaryPositive
	case p.accept(token.Bang):
		op = ast.UnaryNot
	case p.accept(token.PlusPlus):
		op = ast.UnaryPreIncrement
	case p.accept(token.MinusMinus):
		op = ast.UnaryPreDecrement
	default:
		return p.postfix()
	}

	inner, ok := p.unary()
	if !ok {
		return nil, false
	}
	u := p.tree.NewUnary(p.file, line)
	u.Op = op
	u.Inner = inner
	if op == ast.UnaryNot {
		u.SetExprType(ast.HLSLType{BaseType: ast.Bool})
	} else {
		u.SetExprType(inner.ExprType())
	}
	return u, true
}

// postfix parses a primary expression followed by any run of `.field`,
// `[index]`, and postfix `++`/`--`.
func (p *Parser) postfix() (ast.Expression, bool) {
	expr, ok := p.primary()
	if !ok {
		return nil, false
	}
	for {
		line := p.line()
		switch {
		case p.accept(token.Dot):
			name, ok := p.expectIdentifier()
			if !ok {
				return nil, false
			}
			field := p.tree.Strings.String(name)
			typ, ok := semantic.MemberType(expr.ExprType(), field, p.tree.Strings, p.findStruct)
			if !ok {
				p.errorf("invalid member %q of type %q", field, expr.ExprType().BaseType)
				return nil, false
			}
			m := p.tree.NewMemberAccess(p.file, line)
			m.Object = expr
			m.Field = name
			m.SetExprType(typ)
			expr = m

		case p.accept(token.LeftBracket):
			index, ok := p.expression()
			if !ok || !p.expect(token.RightBracket) {
				return nil, false
			}
			typ, ok := arrayElementType(expr.ExprType())
			if !ok {
				p.errorf("cannot index into type %q", expr.ExprType().BaseType)
				return nil, false
			}
			a := p.tree.NewArrayAccess(p.file, line)
			a.Array = expr
			a.Index = index
			a.SetExprType(typ)
			expr = a

		case p.accept(token.PlusPlus):
			u := p.tree.NewUnary(p.file, line)
			u.Op = ast.UnaryPostIncrement
			u.Inner = expr
			u.SetExprType(expr.ExprType())
			expr = u

		case p.accept(token.MinusMinus):
			u := p.tree.NewUnary(p.file, line)
			u.Op = ast.UnaryPostDecrement
			u.Inner = expr
			u.SetExprType(expr.ExprType())
			expr = u

		default:
			return expr, true
		}
	}
}

// arrayElementType resolves the result type of `x[i]`: an array's declared
// element type, a matrix's row vector, or a vector's scalar component.
func arrayElementType(t ast.HLSLType) (ast.HLSLType, bool) {
	if t.Array {
		return ast.HLSLType{BaseType: t.BaseType, TypeName: t.TypeName, Const: t.Const}, true
	}
	fam, ok := semantic.FamilyOf(t.BaseType)
	if !ok {
		return ast.HLSLType{}, false
	}
	switch semantic.DimsOf(t.BaseType) {
	case 1:
		return ast.HLSLType{BaseType: semantic.VectorOf(fam, 1)}, true
	case 2:
		rows, _ := semantic.MatrixShape(t.BaseType)
		return ast.HLSLType{BaseType: semantic.VectorOf(fam, rows)}, true
	default:
		return ast.HLSLType{}, false
	}
}

// primary parses a literal, a parenthesized expression or cast, an
// identifier (variable reference or function call), or a `type(args...)`
// constructor — matching HLSLParser::ParseTerminalExpression /
// ParsePartialConstructor.
func (p *Parser) primary() (ast.Expression, bool) {
	line := p.line()
	tok := p.tz.Token()

	switch tok.Kind {
	case token.IntLiteral, token.FloatLiteral:
		return p.literal()

	case token.KwTrue, token.KwFalse:
		lit := p.tree.NewLiteral(p.file, line)
		lit.LitKind = ast.LiteralBool
		lit.AsBool = tok.Kind == token.KwTrue
		lit.SetExprType(ast.HLSLType{BaseType: ast.Bool})
		p.tz.Next()
		return lit, true

	case token.LeftParen:
		return p.parenOrCast(line)

	case token.Identifier:
		return p.identifierOrCall(line)
	}

	if bt, ok := baseTypeKeywords[tok.Kind]; ok {
		p.tz.Next()
		return p.constructorCall(line, ast.HLSLType{BaseType: bt})
	}

	p.errorf("syntax error: expected an expression near %q", p.near())
	return nil, false
}

func (p *Parser) literal() (ast.Expression, bool) {
	tok := p.tz.Token()
	lit := p.tree.NewLiteral(p.file, tok.Line)
	text := tok.Text

	switch tok.Kind {
	case token.IntLiteral:
		body := text
		unsigned := len(body) > 0 && (body[len(body)-1] == 'u' || body[len(body)-1] == 'U')
		if unsigned {
			body = body[:len(body)-1]
		}
		if unsigned {
			v, err := strconv.ParseUint(body, 0, 64)
			if err != nil {
				p.errorf("invalid integer literal %q", text)
				return nil, false
			}
			lit.LitKind = ast.LiteralUint
			lit.AsUint = v
			lit.SetExprType(ast.HLSLType{BaseType: ast.Uint})
		} else {
			v, err := strconv.ParseInt(body, 0, 64)
			if err != nil {
				p.errorf("invalid integer literal %q", text)
				return nil, false
			}
			lit.LitKind = ast.LiteralInt
			lit.AsInt = v
			lit.SetExprType(ast.HLSLType{BaseType: ast.Int})
		}

	case token.FloatLiteral:
		body := text
		half := false
		if len(body) > 0 {
			switch body[len(body)-1] {
			case 'f', 'F':
				body = body[:len(body)-1]
			case 'h', 'H':
				half = true
				body = body[:len(body)-1]
			}
		}
		v, err := strconv.ParseFloat(body, 64)
		if err != nil {
			p.errorf("invalid float literal %q", text)
			return nil, false
		}
		lit.AsFloat = v
		if half {
			lit.LitKind = ast.LiteralHalf
			lit.SetExprType(ast.HLSLType{BaseType: ast.Half})
		} else {
			lit.LitKind = ast.LiteralFloat
			lit.SetExprType(ast.HLSLType{BaseType: ast.Float})
		}
	}

	p.tz.Next()
	return lit, true
}

// parenOrCast disambiguates `(expr)` grouping from `(type)expr` casting by
// speculatively accepting a type and checking for an immediately following
// `)` — a bare identifier that doesn't name a known type falls through to
// grouping, exactly as in HLSLParser's CheckTypeCast-guided dispatch.
func (p *Parser) parenOrCast(line int) (ast.Expression, bool) {
	p.tz.Next() // consume '('

	save := *p.tz
	if typ, ok := p.acceptType(false); ok && p.tz.Token().Kind == token.RightParen {
		p.tz.Next() // consume ')'
		inner, ok := p.unary()
		if !ok {
			return nil, false
		}
		if semantic.CastRank(inner.ExprType(), typ) < 0 {
			p.errorf("cannot cast from %q to %q", inner.ExprType().BaseType, typ.BaseType)
			return nil, false
		}
		c := p.tree.NewCast(p.file, line)
		c.TargetType = typ
		c.Inner = inner
		c.SetExprType(typ)
		return c, true
	}
	*p.tz = save

	inner, ok := p.expression()
	if !ok {
		return nil, false
	}
	if !p.expect(token.RightParen) {
		return nil, false
	}
	return inner, true
}

func (p *Parser) identifierOrCall(line int) (ast.Expression, bool) {
	nameText := p.tz.Token().Text
	name, _ := p.acceptIdentifier()

	if p.accept(token.LeftParen) {
		return p.functionCall(line, name, nameText)
	}

	typ, global, ok := p.findVariable(name)
	if !ok {
		p.errorf("undeclared identifier %q", nameText)
		return nil, false
	}
	id := p.tree.NewIdentifier(p.file, line)
	id.Name = name
	id.Global = global
	id.SetExprType(typ)
	return id, true
}

// functionCall parses a call's argument list and resolves it against the
// in-scope user functions and the intrinsic catalog (§4.4.2), reporting
// "undeclared identifier", "no overloaded function matched all of the
// arguments", or an ambiguity error exactly as ResolveOverload determines.
func (p *Parser) functionCall(line int, name stringpool.Handle, nameText string) (ast.Expression, bool) {
	args, n, ok := p.exprList(token.RightParen)
	if !ok {
		return nil, false
	}
	argTypes := make([]ast.HLSLType, 0, n)
	for e := args; e != nil; e = e.Base().Next {
		argTypes = append(argTypes, e.ExprType())
	}

	cand, err := semantic.ResolveOverload(nameText, p.functionsNamed(name), p.tree.Strings, argTypes)
	if err != nil {
		p.errorf("%s", err.Error())
		return nil, false
	}

	call := p.tree.NewFunctionCall(p.file, line)
	call.Name = name
	call.Function = cand.Function
	if cand.Intrinsic != nil {
		call.Intrinsic = cand.Intrinsic
	}
	call.Args = args
	call.NumArgs = n
	call.SetExprType(cand.ReturnType())
	return call, true
}

func (p *Parser) constructorCall(line int, targetType ast.HLSLType) (ast.Expression, bool) {
	if !p.expect(token.LeftParen) {
		return nil, false
	}
	args, n, ok := p.exprList(token.RightParen)
	if !ok {
		return nil, false
	}
	c := p.tree.NewConstructor(p.file, line)
	c.TargetType = targetType
	c.Args = args
	c.NumArgs = n
	c.SetExprType(targetType)
	return c, true
}

// exprList parses a comma-separated expression list up to and including the
// closing end token (RightParen for call/constructor argument lists).
func (p *Parser) exprList(end token.Kind) (ast.Expression, int, bool) {
	var first, last ast.Expression
	n := 0
	for !p.accept(end) {
		if n > 0 && !p.expect(token.Comma) {
			return nil, 0, false
		}
		if p.tz.Token().Kind == token.EOF {
			p.errorf("unexpected end of stream, expected %v", end)
			return nil, 0, false
		}
		e, ok := p.expression()
		if !ok {
			return nil, 0, false
		}
		if first == nil {
			first = e
		} else {
			last.Base().Next = e
		}
		last = e
		n++
	}
	return first, n, true
}
