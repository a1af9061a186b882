package ast

import "github.com/gogpu/hlsl2glsl/stringpool"

// Root holds the first top-level statement of a compilation unit. Every
// struct, cbuffer/tbuffer, function, and uniform declaration in the file
// hangs off Root.First via the usual Next chain.
type Root struct {
	StmtHeader
	First Statement
}

// ArgumentModifier enumerates the HLSL parameter-passing modifiers.
type ArgumentModifier uint8

const (
	ModifierNone ArgumentModifier = iota
	ModifierIn
	ModifierInout
	ModifierUniform
)

// Declaration is a typed variable declaration, optionally const, arrayed,
// register-bound, or initialized.
type Declaration struct {
	StmtHeader
	Name        stringpool.Handle
	Type        HLSLType
	ArraySize   Expression // nil unless the declared array size is an expression, e.g. `float a[N]`
	Register    stringpool.Handle
	HasRegister bool
	Initializer Expression // nil if absent; for arrays this is the head of a `{ e, e, ... }` list via Next
}

// Struct is a named aggregate; Fields is the head of a singly linked list of
// StructField via Next.
type Struct struct {
	StmtHeader
	Name   stringpool.Handle
	Fields *StructField
}

// StructField is one field of a Struct.
type StructField struct {
	NodeHeader
	Name        stringpool.Handle
	Type        HLSLType
	Semantic    stringpool.Handle
	HasSemantic bool
	Next        *StructField
}

// Buffer is a cbuffer/tbuffer declaration.
type Buffer struct {
	StmtHeader
	Name        stringpool.Handle
	Register    stringpool.Handle
	HasRegister bool
	IsTexture   bool // tbuffer vs cbuffer
	Fields      *BufferField
}

// BufferField is one field of a Buffer. Buffer fields carry no semantic.
type BufferField struct {
	NodeHeader
	Name stringpool.Handle
	Type HLSLType
	Next *BufferField
}

// Function is a top-level function definition. Intrinsics are not Function
// nodes; see semantic.Intrinsic.
type Function struct {
	StmtHeader
	Name         stringpool.Handle
	ReturnType   HLSLType
	Semantic     stringpool.Handle
	HasSemantic  bool
	Arguments    *Argument
	NumArguments int
	Body         Statement // head of the body's statement list; nil for a forward declaration
}

// Argument is one parameter of a Function.
type Argument struct {
	NodeHeader
	Name        stringpool.Handle
	Modifier    ArgumentModifier
	Type        HLSLType
	Semantic    stringpool.Handle
	HasSemantic bool
	Next        *Argument
}

// If is `if (Cond) Then [else Else]`.
type If struct {
	StmtHeader
	Cond Expression
	Then Statement
	Else Statement // nil if no else clause
}

// For is `for (Init; Cond; Increment) Body`. Init is itself a Statement so
// that `for (float x = 0; ...)` and `for (x = 0; ...)` both fit.
type For struct {
	StmtHeader
	Init      Statement
	Cond      Expression
	Increment Expression
	Body      Statement
}

// Return is `return [Value];`.
type Return struct {
	StmtHeader
	Value Expression // nil for a bare `return;` in a void function
}

// Discard is HLSL's `discard;`.
type Discard struct {
	StmtHeader
}

// Break is `break;`.
type Break struct {
	StmtHeader
}

// Continue is `continue;`.
type Continue struct {
	StmtHeader
}

// ExpressionStatement is a bare expression used as a statement, e.g.
// `x = y + 1;` or `f(x);`.
type ExpressionStatement struct {
	StmtHeader
	Expr Expression
}
