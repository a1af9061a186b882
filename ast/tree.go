package ast

import (
	"github.com/gogpu/hlsl2glsl/arena"
	"github.com/gogpu/hlsl2glsl/stringpool"
)

// Tree owns every node of one compilation unit plus the string pool they
// reference. Arena, string pool, and tree are created together and are
// never mutated once the parser has finished: emitters only ever read them.
type Tree struct {
	Strings *stringpool.Pool
	Root    *Root

	roots                arena.Pool[Root]
	declarations         arena.Pool[Declaration]
	structs              arena.Pool[Struct]
	structFields         arena.Pool[StructField]
	buffers              arena.Pool[Buffer]
	bufferFields         arena.Pool[BufferField]
	functions            arena.Pool[Function]
	arguments            arena.Pool[Argument]
	ifs                  arena.Pool[If]
	fors                 arena.Pool[For]
	returns              arena.Pool[Return]
	discards             arena.Pool[Discard]
	breaks               arena.Pool[Break]
	continues            arena.Pool[Continue]
	expressionStatements arena.Pool[ExpressionStatement]
	identifiers          arena.Pool[Identifier]
	literals             arena.Pool[Literal]
	constructors         arena.Pool[Constructor]
	casts                arena.Pool[Cast]
	unaries              arena.Pool[Unary]
	binaries             arena.Pool[Binary]
	conditionals         arena.Pool[Conditional]
	memberAccesses       arena.Pool[MemberAccess]
	arrayAccesses        arena.Pool[ArrayAccess]
	functionCalls        arena.Pool[FunctionCall]
}

// NewTree creates an empty tree backed by the given string pool.
func NewTree(strings *stringpool.Pool) *Tree {
	return &Tree{Strings: strings}
}

func nodeHeader(kind Kind, file stringpool.Handle, line int) NodeHeader {
	return NodeHeader{Kind: kind, File: file, Line: line}
}

func stmtHeader(kind Kind, file stringpool.Handle, line int) StmtHeader {
	return StmtHeader{NodeHeader: nodeHeader(kind, file, line)}
}

func exprHeader(kind Kind, file stringpool.Handle, line int) ExprHeader {
	return ExprHeader{NodeHeader: nodeHeader(kind, file, line)}
}

// NewRoot allocates the tree's single Root node.
func (t *Tree) NewRoot(file stringpool.Handle, line int) *Root {
	n := t.roots.Alloc()
	n.StmtHeader = stmtHeader(KindRoot, file, line)
	return n
}

// NewDeclaration allocates a Declaration node.
func (t *Tree) NewDeclaration(file stringpool.Handle, line int) *Declaration {
	n := t.declarations.Alloc()
	n.StmtHeader = stmtHeader(KindDeclaration, file, line)
	return n
}

// NewStruct allocates a Struct node.
func (t *Tree) NewStruct(file stringpool.Handle, line int) *Struct {
	n := t.structs.Alloc()
	n.StmtHeader = stmtHeader(KindStruct, file, line)
	return n
}

// NewStructField allocates a StructField node.
func (t *Tree) NewStructField(file stringpool.Handle, line int) *StructField {
	n := t.structFields.Alloc()
	n.NodeHeader = nodeHeader(KindStructField, file, line)
	return n
}

// NewBuffer allocates a Buffer node.
func (t *Tree) NewBuffer(file stringpool.Handle, line int) *Buffer {
	n := t.buffers.Alloc()
	n.StmtHeader = stmtHeader(KindBuffer, file, line)
	return n
}

// NewBufferField allocates a BufferField node.
func (t *Tree) NewBufferField(file stringpool.Handle, line int) *BufferField {
	n := t.bufferFields.Alloc()
	n.NodeHeader = nodeHeader(KindBufferField, file, line)
	return n
}

// NewFunction allocates a Function node.
func (t *Tree) NewFunction(file stringpool.Handle, line int) *Function {
	n := t.functions.Alloc()
	n.StmtHeader = stmtHeader(KindFunction, file, line)
	return n
}

// NewArgument allocates an Argument node.
func (t *Tree) NewArgument(file stringpool.Handle, line int) *Argument {
	n := t.arguments.Alloc()
	n.NodeHeader = nodeHeader(KindArgument, file, line)
	return n
}

// NewIf allocates an If node.
func (t *Tree) NewIf(file stringpool.Handle, line int) *If {
	n := t.ifs.Alloc()
	n.StmtHeader = stmtHeader(KindIf, file, line)
	return n
}

// NewFor allocates a For node.
func (t *Tree) NewFor(file stringpool.Handle, line int) *For {
	n := t.fors.Alloc()
	n.StmtHeader = stmtHeader(KindFor, file, line)
	return n
}

// NewReturn allocates a Return node.
func (t *Tree) NewReturn(file stringpool.Handle, line int) *Return {
	n := t.returns.Alloc()
	n.StmtHeader = stmtHeader(KindReturn, file, line)
	return n
}

// NewDiscard allocates a Discard node.
func (t *Tree) NewDiscard(file stringpool.Handle, line int) *Discard {
	n := t.discards.Alloc()
	n.StmtHeader = stmtHeader(KindDiscard, file, line)
	return n
}

// NewBreak allocates a Break node.
func (t *Tree) NewBreak(file stringpool.Handle, line int) *Break {
	n := t.breaks.Alloc()
	n.StmtHeader = stmtHeader(KindBreak, file, line)
	return n
}

// NewContinue allocates a Continue node.
func (t *Tree) NewContinue(file stringpool.Handle, line int) *Continue {
	n := t.continues.Alloc()
	n.StmtHeader = stmtHeader(KindContinue, file, line)
	return n
}

// NewExpressionStatement allocates an ExpressionStatement node.
func (t *Tree) NewExpressionStatement(file stringpool.Handle, line int) *ExpressionStatement {
	n := t.expressionStatements.Alloc()
	n.StmtHeader = stmtHeader(KindExpressionStatement, file, line)
	return n
}

// NewIdentifier allocates an Identifier node.
func (t *Tree) NewIdentifier(file stringpool.Handle, line int) *Identifier {
	n := t.identifiers.Alloc()
	n.ExprHeader = exprHeader(KindIdentifier, file, line)
	return n
}

// NewLiteral allocates a Literal node.
func (t *Tree) NewLiteral(file stringpool.Handle, line int) *Literal {
	n := t.literals.Alloc()
	n.ExprHeader = exprHeader(KindLiteral, file, line)
	return n
}

// NewConstructor allocates a Constructor node.
func (t *Tree) NewConstructor(file stringpool.Handle, line int) *Constructor {
	n := t.constructors.Alloc()
	n.ExprHeader = exprHeader(KindConstructor, file, line)
	return n
}

// NewCast allocates a Cast node.
func (t *Tree) NewCast(file stringpool.Handle, line int) *Cast {
	n := t.casts.Alloc()
	n.ExprHeader = exprHeader(KindCast, file, line)
	return n
}

// NewUnary allocates a Unary node.
func (t *Tree) NewUnary(file stringpool.Handle, line int) *Unary {
	n := t.unaries.Alloc()
	n.ExprHeader = exprHeader(KindUnary, file, line)
	return n
}

// NewBinary allocates a Binary node.
func (t *Tree) NewBinary(file stringpool.Handle, line int) *Binary {
	n := t.binaries.Alloc()
	n.ExprHeader = exprHeader(KindBinary, file, line)
	return n
}

// NewConditional allocates a Conditional node.
func (t *Tree) NewConditional(file stringpool.Handle, line int) *Conditional {
	n := t.conditionals.Alloc()
	n.ExprHeader = exprHeader(KindConditional, file, line)
	return n
}

// NewMemberAccess allocates a MemberAccess node.
func (t *Tree) NewMemberAccess(file stringpool.Handle, line int) *MemberAccess {
	n := t.memberAccesses.Alloc()
	n.ExprHeader = exprHeader(KindMemberAccess, file, line)
	return n
}

// NewArrayAccess allocates an ArrayAccess node.
func (t *Tree) NewArrayAccess(file stringpool.Handle, line int) *ArrayAccess {
	n := t.arrayAccesses.Alloc()
	n.ExprHeader = exprHeader(KindArrayAccess, file, line)
	return n
}

// NewFunctionCall allocates a FunctionCall node.
func (t *Tree) NewFunctionCall(file stringpool.Handle, line int) *FunctionCall {
	n := t.functionCalls.Alloc()
	n.ExprHeader = exprHeader(KindFunctionCall, file, line)
	return n
}
