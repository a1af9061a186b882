package parser

import (
	"github.com/gogpu/hlsl2glsl/ast"
	"github.com/gogpu/hlsl2glsl/semantic"
	"github.com/gogpu/hlsl2glsl/token"
)

// statementOrBlock parses `{ ... }` as a scoped block, or a single
// statement with no scope of its own.
func (p *Parser) statementOrBlock(returnType ast.HLSLType) (ast.Statement, bool) {
	if p.accept(token.LeftBrace) {
		p.beginScope()
		body, ok := p.block(returnType)
		p.endScope()
		return body, ok
	}
	return p.statement(returnType)
}

// block parses statements up to and including the closing `}`; the opening
// `{` has already been consumed by statementOrBlock or functionDecl.
func (p *Parser) block(returnType ast.HLSLType) (ast.Statement, bool) {
	var first, last ast.Statement
	for !p.accept(token.RightBrace) {
		if p.tz.Token().Kind == token.EOF {
			p.errorf("unexpected end of stream, expected '}'")
			return nil, false
		}
		stmt, ok := p.statement(returnType)
		if !ok {
			return nil, false
		}
		if stmt == nil {
			continue
		}
		if first == nil {
			first = stmt
		} else {
			last.Base().Next = stmt
		}
		last = stmt
	}
	return first, true
}

func (p *Parser) statement(returnType ast.HLSLType) (ast.Statement, bool) {
	line := p.line()

	if p.accept(token.Semicolon) {
		return nil, true
	}

	if p.accept(token.KwIf) {
		return p.ifStatement(line, returnType)
	}
	if p.accept(token.KwFor) {
		return p.forStatement(line, returnType)
	}
	if p.accept(token.KwDiscard) {
		s := p.tree.NewDiscard(p.file, line)
		return s, p.expect(token.Semicolon)
	}
	if p.accept(token.KwBreak) {
		s := p.tree.NewBreak(p.file, line)
		return s, p.expect(token.Semicolon)
	}
	if p.accept(token.KwContinue) {
		s := p.tree.NewContinue(p.file, line)
		return s, p.expect(token.Semicolon)
	}
	if p.accept(token.KwReturn) {
		return p.returnStatement(line, returnType)
	}

	if decl, ok := p.tryLocalDeclaration(line); ok {
		return decl, p.expect(token.Semicolon)
	}

	expr, ok := p.expression()
	if !ok {
		p.errorf("syntax error: expected a statement near %q", p.near())
		return nil, false
	}
	stmt := p.tree.NewExpressionStatement(p.file, line)
	stmt.Expr = expr
	return stmt, p.expect(token.Semicolon)
}

func (p *Parser) ifStatement(line int, returnType ast.HLSLType) (*ast.If, bool) {
	s := p.tree.NewIf(p.file, line)
	if !p.expect(token.LeftParen) {
		return nil, false
	}
	cond, ok := p.expression()
	if !ok || !p.expect(token.RightParen) {
		return nil, false
	}
	s.Cond = cond

	then, ok := p.statementOrBlock(returnType)
	if !ok {
		return nil, false
	}
	s.Then = then

	if p.accept(token.KwElse) {
		els, ok := p.statementOrBlock(returnType)
		if !ok {
			return nil, false
		}
		s.Else = els
	}
	return s, true
}

func (p *Parser) forStatement(line int, returnType ast.HLSLType) (*ast.For, bool) {
	s := p.tree.NewFor(p.file, line)
	if !p.expect(token.LeftParen) {
		return nil, false
	}
	p.beginScope()

	initLine := p.line()
	init, ok := p.tryLocalDeclaration(initLine)
	if !ok {
		p.endScope()
		return nil, false
	}
	s.Init = init
	if !p.expect(token.Semicolon) {
		p.endScope()
		return nil, false
	}

	if p.tz.Token().Kind != token.Semicolon {
		cond, ok := p.expression()
		if !ok {
			p.endScope()
			return nil, false
		}
		s.Cond = cond
	}
	if !p.expect(token.Semicolon) {
		p.endScope()
		return nil, false
	}

	if p.tz.Token().Kind != token.RightParen {
		inc, ok := p.expression()
		if !ok {
			p.endScope()
			return nil, false
		}
		s.Increment = inc
	}
	if !p.expect(token.RightParen) {
		p.endScope()
		return nil, false
	}

	body, ok := p.statementOrBlock(returnType)
	p.endScope()
	if !ok {
		return nil, false
	}
	s.Body = body
	return s, true
}

func (p *Parser) returnStatement(line int, returnType ast.HLSLType) (*ast.Return, bool) {
	s := p.tree.NewReturn(p.file, line)
	if p.tz.Token().Kind != token.Semicolon {
		val, ok := p.expression()
		if !ok {
			return nil, false
		}
		s.Value = val
		if semantic.CastRank(val.ExprType(), returnType) < 0 {
			p.errorf("cannot implicitly convert from %q to %q", val.ExprType().BaseType, returnType.BaseType)
			return nil, false
		}
	} else if !returnType.IsVoid() {
		p.errorf("missing return value")
		return nil, false
	}
	return s, p.expect(token.Semicolon)
}

// tryLocalDeclaration attempts to parse a declaration statement at the
// current position. It reports ok=false with no error recorded if the
// lookahead simply doesn't start a type — the caller falls through to
// expression-statement parsing in that case, exactly like
// HLSLParser::ParseDeclaration's use as a soft try inside ParseStatement.
func (p *Parser) tryLocalDeclaration(line int) (*ast.Declaration, bool) {
	save := *p.tz
	typ, ok := p.acceptType(true)
	if !ok {
		return nil, false
	}
	if p.tz.Token().Kind != token.Identifier {
		*p.tz = save
		return nil, false
	}
	name, _ := p.expectIdentifier()

	decl := p.tree.NewDeclaration(p.file, line)
	decl.Type = typ
	decl.Name = name
	p.declareVariable(name, typ)

	if !p.declarationAssignment(decl) {
		return nil, false
	}
	return decl, true
}

// declarationAssignment parses the optional `= initializer` suffix shared
// by global, local, and for-loop-init declarations. Array declarations use
// `{ e, e, ... }` braces with an optional trailing comma.
func (p *Parser) declarationAssignment(decl *ast.Declaration) bool {
	if !p.accept(token.Equal) {
		return true
	}
	if decl.Type.Array {
		if !p.expect(token.LeftBrace) {
			return false
		}
		var first, last ast.Expression
		for !p.accept(token.RightBrace) {
			if first != nil && !p.accept(token.Comma) {
				return false
			}
			if p.tz.Token().Kind == token.RightBrace {
				p.tz.Next()
				break
			}
			e, ok := p.expression()
			if !ok {
				return false
			}
			if first == nil {
				first = e
			} else {
				last.Base().Next = e
			}
			last = e
		}
		decl.Initializer = first
		return true
	}
	e, ok := p.expression()
	if !ok {
		return false
	}
	decl.Initializer = e
	return true
}
