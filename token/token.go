// Package token implements a one-token-lookahead tokenizer over HLSL
// source text: punctuation, compound punctuation, keywords, identifiers,
// and literals, per §4.3.
package token

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind uint8

const (
	EOF Kind = iota
	ErrorKind

	Identifier
	IntLiteral
	FloatLiteral

	// Punctuation
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Semicolon
	Comma
	Dot
	Colon
	Question

	// Compound punctuation
	EqualEqual
	NotEqual
	LessEqual
	GreaterEqual
	Less
	Greater
	AndAnd
	BarBar
	PlusPlus
	MinusMinus
	PlusEqual
	MinusEqual
	TimesEqual
	DivideEqual
	Plus
	Minus
	Times
	Divide
	Equal
	Bang

	// Base-type keywords (§3.4)
	KwFloat
	KwFloat2
	KwFloat3
	KwFloat4
	KwFloat3x3
	KwFloat4x4
	KwHalf
	KwHalf2
	KwHalf3
	KwHalf4
	KwHalf3x3
	KwHalf4x4
	KwBool
	KwInt
	KwInt2
	KwInt3
	KwInt4
	KwUint
	KwUint2
	KwUint3
	KwUint4
	KwTexture
	KwSampler2D
	KwSamplerCube

	// Other reserved keywords
	KwConst
	KwVoid
	KwStruct
	KwCBuffer
	KwTBuffer
	KwRegister
	KwPackOffset
	KwIf
	KwElse
	KwFor
	KwReturn
	KwDiscard
	KwBreak
	KwContinue
	KwTrue
	KwFalse
	KwIn
	KwOut
	KwInOut
	KwUniform
	KwStatic
	KwRowMajor
	KwColumnMajor
)

var kindNames = map[Kind]string{
	EOF:           "end of stream",
	ErrorKind:     "error",
	Identifier:    "identifier",
	IntLiteral:    "integer literal",
	FloatLiteral:  "float literal",
	LeftParen:     "(",
	RightParen:    ")",
	LeftBrace:     "{",
	RightBrace:    "}",
	LeftBracket:   "[",
	RightBracket:  "]",
	Semicolon:     ";",
	Comma:         ",",
	Dot:           ".",
	Colon:         ":",
	Question:      "?",
	EqualEqual:    "==",
	NotEqual:      "!=",
	LessEqual:     "<=",
	GreaterEqual:  ">=",
	Less:          "<",
	Greater:       ">",
	AndAnd:        "&&",
	BarBar:        "||",
	PlusPlus:      "++",
	MinusMinus:    "--",
	PlusEqual:     "+=",
	MinusEqual:    "-=",
	TimesEqual:    "*=",
	DivideEqual:   "/=",
	Plus:          "+",
	Minus:         "-",
	Times:         "*",
	Divide:        "/",
	Equal:         "=",
	Bang:          "!",
	KwFloat:       "float",
	KwFloat2:      "float2",
	KwFloat3:      "float3",
	KwFloat4:      "float4",
	KwFloat3x3:    "float3x3",
	KwFloat4x4:    "float4x4",
	KwHalf:        "half",
	KwHalf2:       "half2",
	KwHalf3:       "half3",
	KwHalf4:       "half4",
	KwHalf3x3:     "half3x3",
	KwHalf4x4:     "half4x4",
	KwBool:        "bool",
	KwInt:         "int",
	KwInt2:        "int2",
	KwInt3:        "int3",
	KwInt4:        "int4",
	KwUint:        "uint",
	KwUint2:       "uint2",
	KwUint3:       "uint3",
	KwUint4:       "uint4",
	KwTexture:     "texture",
	KwSampler2D:   "sampler2D",
	KwSamplerCube: "samplerCUBE",
	KwConst:       "const",
	KwVoid:        "void",
	KwStruct:      "struct",
	KwCBuffer:     "cbuffer",
	KwTBuffer:     "tbuffer",
	KwRegister:    "register",
	KwPackOffset:  "packoffset",
	KwIf:          "if",
	KwElse:        "else",
	KwFor:         "for",
	KwReturn:      "return",
	KwDiscard:     "discard",
	KwBreak:       "break",
	KwContinue:    "continue",
	KwTrue:        "true",
	KwFalse:       "false",
	KwIn:          "in",
	KwOut:         "out",
	KwInOut:       "inout",
	KwUniform:     "uniform",
	KwStatic:      "static",
	KwRowMajor:    "row_major",
	KwColumnMajor: "column_major",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// keywords maps reserved identifier text to its keyword Kind. Contextual
// keywords (linear, centroid, nointerpolation, noperspective, sample) are
// deliberately absent, so they scan as plain identifiers; no parser rule
// treats them as modifiers.
var keywords = map[string]Kind{
	"float":        KwFloat,
	"float2":       KwFloat2,
	"float3":       KwFloat3,
	"float4":       KwFloat4,
	"float3x3":     KwFloat3x3,
	"float4x4":     KwFloat4x4,
	"half":         KwHalf,
	"half2":        KwHalf2,
	"half3":        KwHalf3,
	"half4":        KwHalf4,
	"half3x3":      KwHalf3x3,
	"half4x4":      KwHalf4x4,
	"bool":         KwBool,
	"int":          KwInt,
	"int2":         KwInt2,
	"int3":         KwInt3,
	"int4":         KwInt4,
	"uint":         KwUint,
	"uint2":        KwUint2,
	"uint3":        KwUint3,
	"uint4":        KwUint4,
	"texture":      KwTexture,
	"sampler2D":    KwSampler2D,
	"samplerCUBE":  KwSamplerCube,
	"const":        KwConst,
	"void":         KwVoid,
	"struct":       KwStruct,
	"cbuffer":      KwCBuffer,
	"tbuffer":      KwTBuffer,
	"register":     KwRegister,
	"packoffset":   KwPackOffset,
	"if":           KwIf,
	"else":         KwElse,
	"for":          KwFor,
	"return":       KwReturn,
	"discard":      KwDiscard,
	"break":        KwBreak,
	"continue":     KwContinue,
	"true":         KwTrue,
	"false":        KwFalse,
	"in":           KwIn,
	"out":          KwOut,
	"inout":        KwInOut,
	"uniform":      KwUniform,
	"static":       KwStatic,
	"row_major":    KwRowMajor,
	"column_major": KwColumnMajor,
}

// Token is one lexical unit: its Kind, the exact source text it spans
// (needed for identifiers and literals; informational for fixed
// punctuation), and the 1-based source line it starts on.
type Token struct {
	Kind Kind
	Text string
	Line int
}
