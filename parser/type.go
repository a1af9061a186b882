package parser

import (
	"github.com/gogpu/hlsl2glsl/ast"
	"github.com/gogpu/hlsl2glsl/token"
)

var baseTypeKeywords = map[token.Kind]ast.BaseType{
	token.KwVoid:        ast.Void,
	token.KwFloat:       ast.Float,
	token.KwFloat2:      ast.Float2,
	token.KwFloat3:      ast.Float3,
	token.KwFloat4:      ast.Float4,
	token.KwFloat3x3:    ast.Float3x3,
	token.KwFloat4x4:    ast.Float4x4,
	token.KwHalf:        ast.Half,
	token.KwHalf2:       ast.Half2,
	token.KwHalf3:       ast.Half3,
	token.KwHalf4:       ast.Half4,
	token.KwHalf3x3:     ast.Half3x3,
	token.KwHalf4x4:     ast.Half4x4,
	token.KwBool:        ast.Bool,
	token.KwInt:         ast.Int,
	token.KwInt2:        ast.Int2,
	token.KwInt3:        ast.Int3,
	token.KwInt4:        ast.Int4,
	token.KwUint:        ast.Uint,
	token.KwUint2:       ast.Uint2,
	token.KwUint3:       ast.Uint3,
	token.KwUint4:       ast.Uint4,
	token.KwTexture:     ast.Texture,
	token.KwSampler2D:   ast.Sampler2D,
	token.KwSamplerCube: ast.SamplerCube,
}

// acceptType accepts a built-in base-type keyword, a `static`/`row_major`/
// `column_major` qualifier run (consumed and otherwise ignored — this
// dialect keeps every matrix row-major and has no static storage
// distinction to preserve), or a bare identifier naming a previously
// declared struct. allowConst additionally accepts a leading `const`.
func (p *Parser) acceptType(allowConst bool) (ast.HLSLType, bool) {
	for p.accept(token.KwStatic) || p.accept(token.KwRowMajor) || p.accept(token.KwColumnMajor) {
	}

	constant := false
	if allowConst && p.accept(token.KwConst) {
		constant = true
	}

	if bt, ok := baseTypeKeywords[p.tz.Token().Kind]; ok {
		p.tz.Next()
		return ast.HLSLType{BaseType: bt, Const: constant}, true
	}

	if p.tz.Token().Kind == token.Identifier {
		name := p.tree.Strings.Intern(p.tz.Token().Text)
		if s := p.findStruct(name); s != nil {
			p.tz.Next()
			return ast.HLSLType{BaseType: ast.UserDefined, TypeName: name, Const: constant}, true
		}
	}

	return ast.HLSLType{}, false
}
