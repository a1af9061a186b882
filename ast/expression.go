package ast

import "github.com/gogpu/hlsl2glsl/stringpool"

// Identifier references a variable by name. Global reports whether the
// binding lives in the file's global scope rather than a local one. The
// parser sets it; neither emitter reads it.
type Identifier struct {
	ExprHeader
	Name   stringpool.Handle
	Global bool
}

// LiteralKind tags the numeric family of a Literal's payload.
type LiteralKind uint8

const (
	LiteralFloat LiteralKind = iota
	LiteralHalf
	LiteralInt
	LiteralUint
	LiteralBool
)

// Literal is a numeric or boolean constant. Exactly one of the payload
// fields is meaningful, selected by LitKind.
type Literal struct {
	ExprHeader
	LitKind  LiteralKind
	AsFloat  float64
	AsInt    int64
	AsUint   uint64
	AsBool   bool
}

// Constructor is `type(args...)`, e.g. `float3(1, 0, 0)`.
type Constructor struct {
	ExprHeader
	TargetType HLSLType
	Args       Expression // head of argument list via Next
	NumArgs    int
}

// Cast is `(type)expr`.
type Cast struct {
	ExprHeader
	TargetType HLSLType
	Inner      Expression
}

// UnaryOp enumerates HLSL's unary operators.
type UnaryOp uint8

const (
	UnaryNegative UnaryOp = iota
	UnaryPositive
	UnaryNot
	UnaryPreIncrement
	UnaryPreDecrement
	UnaryPostIncrement
	UnaryPostDecrement
)

// Unary is a prefix or postfix unary expression.
type Unary struct {
	ExprHeader
	Op    UnaryOp
	Inner Expression
}

// BinaryOp enumerates HLSL's binary operators, grouped by the result-typing
// rule that applies to them (see semantic.BinaryResultType).
type BinaryOp uint8

const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv

	BinaryLess
	BinaryGreater
	BinaryLessEqual
	BinaryGreaterEqual
	BinaryEqual
	BinaryNotEqual

	BinaryAnd
	BinaryOr

	BinaryAssign
	BinaryAddAssign
	BinarySubAssign
	BinaryMulAssign
	BinaryDivAssign
)

// IsComparison reports whether op always yields Bool.
func (op BinaryOp) IsComparison() bool {
	switch op {
	case BinaryLess, BinaryGreater, BinaryLessEqual, BinaryGreaterEqual,
		BinaryEqual, BinaryNotEqual, BinaryAnd, BinaryOr:
		return true
	default:
		return false
	}
}

// IsAssignment reports whether op is `=` or a compound assignment, which
// take the LHS type per the binary-op result rule.
func (op BinaryOp) IsAssignment() bool {
	switch op {
	case BinaryAssign, BinaryAddAssign, BinarySubAssign, BinaryMulAssign, BinaryDivAssign:
		return true
	default:
		return false
	}
}

// Binary is a two-operand expression, covering arithmetic, comparison,
// logical, assignment, and compound-assignment operators.
type Binary struct {
	ExprHeader
	Op  BinaryOp
	LHS Expression
	RHS Expression
}

// Conditional is `Cond ? Then : Else`.
type Conditional struct {
	ExprHeader
	Cond Expression
	Then Expression
	Else Expression
}

// MemberAccess is `Object.Field` — a struct field, a swizzle, or a matrix
// element-group access, disambiguated by Object's type at emission time.
type MemberAccess struct {
	ExprHeader
	Object Expression
	Field  stringpool.Handle
}

// ArrayAccess is `Array[Index]`.
type ArrayAccess struct {
	ExprHeader
	Array Expression
	Index Expression
}

// FunctionCall is a call to a user function or an intrinsic. Function is a
// non-nil pointer to the selected overload once the parser has resolved it;
// Intrinsic is set instead when the callee is a built-in.
type FunctionCall struct {
	ExprHeader
	Name      stringpool.Handle
	Function  *Function        // resolved user-function overload, or nil
	Intrinsic IntrinsicRef     // resolved intrinsic overload, or nil interface value
	Args      Expression       // head of argument list via Next
	NumArgs   int
}

// IntrinsicRef is an opaque handle to a resolved intrinsic signature. The
// semantic package defines the concrete type; ast only needs to store and
// compare it, so it is declared here as a small interface to avoid an
// import cycle between ast and semantic.
type IntrinsicRef interface {
	IntrinsicName() string
}
