// Package ast defines the typed abstract syntax tree produced by the parser
// and consumed read-only by the GLSL and HLSL emitters.
//
// Every node embeds a small header (kind tag, file handle, source line) as
// its first field, and statement/expression lists are singly linked via
// Next-style fields rather than a generic container — this mirrors the
// arena's bump allocation model and keeps the tree acyclic by construction:
// a node only ever points at its children or its next sibling, never back
// at a parent.
package ast

import "github.com/gogpu/hlsl2glsl/stringpool"

// Kind tags every node with its concrete variant so that emitters can
// dispatch with a type switch instead of virtual calls.
type Kind uint8

const (
	KindRoot Kind = iota

	// Statements.
	KindDeclaration
	KindStruct
	KindStructField
	KindBuffer
	KindBufferField
	KindFunction
	KindArgument
	KindIf
	KindFor
	KindReturn
	KindDiscard
	KindBreak
	KindContinue
	KindExpressionStatement

	// Expressions.
	KindIdentifier
	KindLiteral
	KindConstructor
	KindCast
	KindUnary
	KindBinary
	KindConditional
	KindMemberAccess
	KindArrayAccess
	KindFunctionCall
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindDeclaration:
		return "Declaration"
	case KindStruct:
		return "Struct"
	case KindStructField:
		return "StructField"
	case KindBuffer:
		return "Buffer"
	case KindBufferField:
		return "BufferField"
	case KindFunction:
		return "Function"
	case KindArgument:
		return "Argument"
	case KindIf:
		return "If"
	case KindFor:
		return "For"
	case KindReturn:
		return "Return"
	case KindDiscard:
		return "Discard"
	case KindBreak:
		return "Break"
	case KindContinue:
		return "Continue"
	case KindExpressionStatement:
		return "ExpressionStatement"
	case KindIdentifier:
		return "Identifier"
	case KindLiteral:
		return "Literal"
	case KindConstructor:
		return "Constructor"
	case KindCast:
		return "Cast"
	case KindUnary:
		return "Unary"
	case KindBinary:
		return "Binary"
	case KindConditional:
		return "Conditional"
	case KindMemberAccess:
		return "MemberAccess"
	case KindArrayAccess:
		return "ArrayAccess"
	case KindFunctionCall:
		return "FunctionCall"
	default:
		return "Unknown"
	}
}

// NodeHeader is the common header embedded as the first field of every node
// kind that does not itself sit in the nextStatement/nextExpression chains
// (StructField, BufferField, Argument — these have their own typed Next
// field instead, since their lists are scoped to their owning Struct,
// Buffer, or Function rather than to a surrounding statement block).
type NodeHeader struct {
	Kind Kind
	File stringpool.Handle
	Line int
}

// StmtHeader is the common header embedded as the first field of every
// statement node that can appear in a block's top-level sequence.
type StmtHeader struct {
	NodeHeader
	Next Statement // nextStatement linkage
}

func (h *StmtHeader) Base() *StmtHeader { return h }

// ExprHeader is the common header embedded as the first field of every
// expression node. Type is filled in by the parser the moment the
// expression's enclosing statement finishes parsing — it is never Unknown
// for a well-typed program.
type ExprHeader struct {
	NodeHeader
	Next Expression // nextExpression linkage, used within argument/initializer lists
	Type HLSLType
}

func (h *ExprHeader) Base() *ExprHeader { return h }

// Statement is implemented by every statement node kind.
type Statement interface {
	Base() *StmtHeader
}

// Expression is implemented by every expression node kind. Every expression
// carries its own inferred HLSLType via ExprHeader.
type Expression interface {
	Base() *ExprHeader
	ExprType() HLSLType
	SetExprType(HLSLType)
}

// ExprType returns the expression's inferred type.
func (h *ExprHeader) ExprType() HLSLType { return h.Type }

// SetExprType records the expression's inferred type. Called exactly once,
// by the parser, as soon as the expression is fully parsed.
func (h *ExprHeader) SetExprType(t HLSLType) { h.Type = t }
