package parser

import (
	"github.com/gogpu/hlsl2glsl/ast"
	"github.com/gogpu/hlsl2glsl/stringpool"
	"github.com/gogpu/hlsl2glsl/token"
)

// topLevel parses one top-level item: a struct, a cbuffer/tbuffer, or a
// global declaration that is either a function definition (if a `(`
// follows the name) or a uniform variable declaration.
func (p *Parser) topLevel() (ast.Statement, bool) {
	line := p.line()

	switch {
	case p.accept(token.KwStruct):
		return p.structDecl(line)
	case p.accept(token.KwCBuffer):
		return p.bufferDecl(line, false)
	case p.accept(token.KwTBuffer):
		return p.bufferDecl(line, true)
	}

	typ, ok := p.acceptType(true)
	if !ok {
		p.errorf("syntax error: expected a type, 'struct', 'cbuffer', or 'tbuffer' near %q", p.near())
		return nil, false
	}

	name, ok := p.expectIdentifier()
	if !ok {
		return nil, false
	}

	if p.accept(token.LeftParen) {
		fn, ok := p.functionDecl(line, typ, name)
		return fn, ok
	}

	decl := p.tree.NewDeclaration(p.file, line)
	decl.Name = name
	decl.Type = typ

	if p.accept(token.LeftBracket) {
		decl.Type.Array = true
		if !p.accept(token.RightBracket) {
			size, ok := p.expression()
			if !ok || !p.expect(token.RightBracket) {
				return nil, false
			}
			decl.ArraySize = size
			if lit, isLit := size.(*ast.Literal); isLit && lit.LitKind == ast.LiteralInt {
				decl.Type.ArraySize = int(lit.AsInt)
			} else {
				decl.Type.ArraySize = -1
			}
		} else {
			decl.Type.ArraySize = -1
		}
	}

	if p.accept(token.Colon) {
		if !p.expect(token.KwRegister) || !p.expect(token.LeftParen) {
			return nil, false
		}
		reg, ok := p.expectIdentifier()
		if !ok || !p.expect(token.RightParen) {
			return nil, false
		}
		decl.Register = reg
		decl.HasRegister = true
	}

	p.declareVariable(name, decl.Type)

	if !p.declarationAssignment(decl) {
		return nil, false
	}
	if !p.expect(token.Semicolon) {
		return nil, false
	}
	return decl, true
}

func (p *Parser) structDecl(line int) (*ast.Struct, bool) {
	name, ok := p.expectIdentifier()
	if !ok {
		return nil, false
	}
	if p.findStruct(name) != nil {
		p.errorf("struct already defined")
		return nil, false
	}
	if !p.expect(token.LeftBrace) {
		return nil, false
	}

	s := p.tree.NewStruct(p.file, line)
	s.Name = name
	p.structs = append(p.structs, s)

	var last *ast.StructField
	for !p.accept(token.RightBrace) {
		if p.tz.Token().Kind == token.EOF {
			p.errorf("unexpected end of stream, expected '}'")
			return nil, false
		}
		field, ok := p.structField()
		if !ok {
			return nil, false
		}
		if last == nil {
			s.Fields = field
		} else {
			last.Next = field
		}
		last = field
	}
	if !p.expect(token.Semicolon) {
		return nil, false
	}
	return s, true
}

func (p *Parser) structField() (*ast.StructField, bool) {
	line := p.line()
	typ, ok := p.acceptType(false)
	if !ok {
		p.errorf("syntax error: expected a field declaration near %q", p.near())
		return nil, false
	}
	name, ok := p.expectIdentifier()
	if !ok {
		return nil, false
	}
	field := p.tree.NewStructField(p.file, line)
	field.Name = name
	field.Type = typ

	if p.accept(token.Colon) {
		sem, ok := p.expectIdentifier()
		if !ok {
			return nil, false
		}
		field.Semantic = sem
		field.HasSemantic = true
	}
	if !p.expect(token.Semicolon) {
		return nil, false
	}
	return field, true
}

func (p *Parser) bufferDecl(line int, isTexture bool) (*ast.Buffer, bool) {
	buf := p.tree.NewBuffer(p.file, line)
	buf.IsTexture = isTexture
	if name, ok := p.acceptIdentifier(); ok {
		buf.Name = name
	}

	if p.accept(token.Colon) {
		if !p.expect(token.KwRegister) || !p.expect(token.LeftParen) {
			return nil, false
		}
		reg, ok := p.expectIdentifier()
		if !ok || !p.expect(token.RightParen) {
			return nil, false
		}
		buf.Register = reg
		buf.HasRegister = true
	}

	if !p.expect(token.LeftBrace) {
		return nil, false
	}

	var last *ast.BufferField
	for !p.accept(token.RightBrace) {
		if p.tz.Token().Kind == token.EOF {
			p.errorf("unexpected end of stream, expected '}'")
			return nil, false
		}
		field, ok := p.bufferField()
		if !ok {
			p.errorf("expected variable declaration")
			return nil, false
		}
		p.declareVariable(field.Name, field.Type)
		if last == nil {
			buf.Fields = field
		} else {
			last.Next = field
		}
		last = field
	}
	// The `;` after the closing brace is optional.
	p.accept(token.Semicolon)
	return buf, true
}

func (p *Parser) bufferField() (*ast.BufferField, bool) {
	line := p.line()
	typ, ok := p.acceptType(false)
	if !ok {
		return nil, false
	}
	name, ok := p.expectIdentifier()
	if !ok {
		return nil, false
	}
	field := p.tree.NewBufferField(p.file, line)
	field.Name = name
	field.Type = typ

	// Optional packoffset(c.xyzw) annotation: recognized and discarded, it
	// does not change the field's type.
	if p.accept(token.Colon) {
		if !p.expect(token.KwPackOffset) || !p.expect(token.LeftParen) {
			return nil, false
		}
		if _, ok := p.expectIdentifier(); !ok {
			return nil, false
		}
		if !p.expect(token.Dot) {
			return nil, false
		}
		if _, ok := p.expectIdentifier(); !ok {
			return nil, false
		}
		if !p.expect(token.RightParen) {
			return nil, false
		}
	}
	if !p.expect(token.Semicolon) {
		return nil, false
	}
	return field, true
}

func (p *Parser) functionDecl(line int, returnType ast.HLSLType, name stringpool.Handle) (*ast.Function, bool) {
	fn := p.tree.NewFunction(p.file, line)
	fn.Name = name
	fn.ReturnType = returnType

	p.beginScope()

	var lastArg *ast.Argument
	for !p.accept(token.RightParen) {
		if p.tz.Token().Kind == token.EOF {
			p.errorf("unexpected end of stream, expected ')'")
			p.endScope()
			return nil, false
		}
		if lastArg != nil && !p.expect(token.Comma) {
			p.endScope()
			return nil, false
		}
		arg, ok := p.argument()
		if !ok {
			p.endScope()
			return nil, false
		}
		p.declareVariable(arg.Name, arg.Type)
		if lastArg == nil {
			fn.Arguments = arg
		} else {
			lastArg.Next = arg
		}
		lastArg = arg
		fn.NumArguments++
	}

	if p.accept(token.Colon) {
		sem, ok := p.expectIdentifier()
		if !ok {
			p.endScope()
			return nil, false
		}
		fn.Semantic = sem
		fn.HasSemantic = true
	}

	// The function is visible to recursive/forward calls and to overload
	// resolution for the body about to be parsed.
	p.functions = append(p.functions, fn)

	if !p.expect(token.LeftBrace) {
		p.endScope()
		return nil, false
	}
	body, ok := p.block(returnType)
	p.endScope()
	if !ok {
		return nil, false
	}
	fn.Body = body
	return fn, true
}

func (p *Parser) argument() (*ast.Argument, bool) {
	line := p.line()
	arg := p.tree.NewArgument(p.file, line)

	switch {
	case p.accept(token.KwUniform):
		arg.Modifier = ast.ModifierUniform
	case p.accept(token.KwIn):
		arg.Modifier = ast.ModifierIn
	case p.accept(token.KwInOut):
		arg.Modifier = ast.ModifierInout
	case p.accept(token.KwOut):
		arg.Modifier = ast.ModifierInout
	}

	typ, ok := p.acceptType(true)
	if !ok {
		p.errorf("syntax error: expected a parameter declaration near %q", p.near())
		return nil, false
	}
	name, ok := p.expectIdentifier()
	if !ok {
		return nil, false
	}
	arg.Type = typ
	arg.Name = name

	if p.accept(token.Colon) {
		sem, ok := p.expectIdentifier()
		if !ok {
			return nil, false
		}
		arg.Semantic = sem
		arg.HasSemantic = true
	}
	return arg, true
}
