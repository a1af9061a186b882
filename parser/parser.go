// Package parser implements the recursive-descent HLSL parser described in
// §4.4: a single Parse entry point that walks a token.Tokenizer and fills in
// an ast.Tree, propagating failure as a plain bool rather than building up
// an error value at every level — exactly the error-handling shape
// HLSLParser.cpp uses, carried over because the grammar itself (Accept,
// Expect, soft keyword accept) depends on it.
package parser

import (
	"fmt"

	"github.com/gogpu/hlsl2glsl/ast"
	"github.com/gogpu/hlsl2glsl/stringpool"
	"github.com/gogpu/hlsl2glsl/token"
)

// Parser holds the tokenizer, the tree under construction, and the scope
// stack used for variable/function lookup. One Parser parses one file.
type Parser struct {
	tz      *token.Tokenizer
	tree    *ast.Tree
	file    stringpool.Handle
	fileStr string

	scope      []scopeEntry
	numGlobals int

	functions []*ast.Function
	structs   []*ast.Struct

	errs []error
}

// New creates a Parser over src, whose diagnostics are tagged with file.
func New(file, src string, tree *ast.Tree) *Parser {
	return &Parser{
		tz:      token.New(file, src),
		tree:    tree,
		file:    tree.Strings.Intern(file),
		fileStr: file,
	}
}

// Parse runs the parser to completion, filling in p's tree. It returns the
// accumulated diagnostics (lexical and syntax errors); a nil/empty result
// means the file parsed cleanly. Parsing always proceeds top-level item by
// top-level item even after an error within one item, so one bad function
// does not prevent diagnostics from later, independent errors — the
// exception is a lexical error, which the tokenizer itself latches past.
func (p *Parser) Parse() []error {
	p.tree.Root = p.tree.NewRoot(p.file, p.line())

	var last ast.Statement
	for p.tz.Token().Kind != token.EOF {
		stmt, ok := p.topLevel()
		if !ok {
			p.resyncTopLevel()
			continue
		}
		if stmt == nil {
			continue
		}
		if last == nil {
			p.tree.Root.First = stmt
		} else {
			p.appendStatement(last, stmt)
		}
		last = stmt
	}

	if lexErr := p.tz.Err(); lexErr != nil {
		p.errs = append(p.errs, lexErr)
	}
	return p.errs
}

// appendStatement sets the Next link on the shared statement chain. Every
// concrete statement type embeds ast.StmtHeader, so Base().Next is always
// addressable.
func (p *Parser) appendStatement(prev, next ast.Statement) {
	prev.Base().Next = next
}

// resyncTopLevel discards tokens until the next plausible top-level
// boundary (a `;` or `}` is consumed, matching the original's
// skip-to-resync behavior, or EOF is reached) so a single syntax error
// does not cascade into spurious ones for the rest of the file.
func (p *Parser) resyncTopLevel() {
	for {
		switch p.tz.Token().Kind {
		case token.EOF:
			return
		case token.Semicolon, token.RightBrace:
			p.tz.Next()
			return
		default:
			p.tz.Next()
		}
	}
}

func (p *Parser) line() int { return p.tz.Token().Line }

func (p *Parser) errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	p.errs = append(p.errs, fmt.Errorf("%s:%d: %s", p.fileStr, p.line(), msg))
}

// accept consumes and reports true if the lookahead matches kind.
func (p *Parser) accept(kind token.Kind) bool {
	if p.tz.Token().Kind == kind {
		p.tz.Next()
		return true
	}
	return false
}

// acceptWord is a soft accept for contextual keywords that are not reserved
// identifiers (linear, centroid, nointerpolation, noperspective, sample): it
// only matches an Identifier token whose text equals word. No grammar rule
// calls it.
func (p *Parser) acceptWord(word string) bool {
	if tok := p.tz.Token(); tok.Kind == token.Identifier && tok.Text == word {
		p.tz.Next()
		return true
	}
	return false
}

// expect consumes kind or reports a syntax error naming what was expected
// and what was found instead.
func (p *Parser) expect(kind token.Kind) bool {
	if p.accept(kind) {
		return true
	}
	p.errorf("syntax error: expected %v near %q", kind, p.near())
	return false
}

func (p *Parser) near() string {
	tok := p.tz.Token()
	if tok.Text != "" {
		return tok.Text
	}
	return tok.Kind.String()
}

// acceptIdentifier consumes an identifier token and interns its text.
func (p *Parser) acceptIdentifier() (stringpool.Handle, bool) {
	if p.tz.Token().Kind != token.Identifier {
		return stringpool.Invalid, false
	}
	h := p.tree.Strings.Intern(p.tz.Token().Text)
	p.tz.Next()
	return h, true
}

func (p *Parser) expectIdentifier() (stringpool.Handle, bool) {
	h, ok := p.acceptIdentifier()
	if !ok {
		p.errorf("syntax error: expected identifier near %q", p.near())
		return stringpool.Invalid, false
	}
	return h, true
}
