package parser

import (
	"github.com/gogpu/hlsl2glsl/ast"
	"github.com/gogpu/hlsl2glsl/stringpool"
)

// scopeEntry is either a (name, type) binding or, when sentinel is true, a
// scope-boundary marker pushed by beginScope.
type scopeEntry struct {
	sentinel bool
	name     stringpool.Handle
	typ      ast.HLSLType
}

// beginScope pushes a scope-boundary sentinel.
func (p *Parser) beginScope() {
	p.scope = append(p.scope, scopeEntry{sentinel: true})
}

// endScope pops back to and including the most recent sentinel.
func (p *Parser) endScope() {
	for len(p.scope) > 0 {
		top := p.scope[len(p.scope)-1]
		p.scope = p.scope[:len(p.scope)-1]
		if top.sentinel {
			return
		}
	}
}

// declareVariable binds name to typ in the current scope. Bindings made
// before any beginScope call (i.e. while the scope stack holds no
// sentinels) are global; numGlobals tracks how many entries at the bottom
// of the stack are global so findVariable can report it.
func (p *Parser) declareVariable(name stringpool.Handle, typ ast.HLSLType) {
	isGlobal := len(p.scope) == p.numGlobals
	p.scope = append(p.scope, scopeEntry{name: name, typ: typ})
	if isGlobal {
		p.numGlobals++
	}
}

// findVariable looks up name from the innermost scope outward. global
// reports whether the binding lives in the global region.
func (p *Parser) findVariable(name stringpool.Handle) (typ ast.HLSLType, global bool, ok bool) {
	for i := len(p.scope) - 1; i >= 0; i-- {
		e := p.scope[i]
		if e.sentinel {
			continue
		}
		if e.name == name {
			return e.typ, i < p.numGlobals, true
		}
	}
	return ast.HLSLType{}, false, false
}

// findFunction returns the first declared function named name, or nil.
func (p *Parser) findFunction(name stringpool.Handle) *ast.Function {
	for _, fn := range p.functions {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// functionsNamed returns every declared function named name — overload
// resolution needs the full candidate set, not just the first.
func (p *Parser) functionsNamed(name stringpool.Handle) []*ast.Function {
	var out []*ast.Function
	for _, fn := range p.functions {
		if fn.Name == name {
			out = append(out, fn)
		}
	}
	return out
}

// findStruct returns the struct declared under typeName, or nil.
func (p *Parser) findStruct(typeName stringpool.Handle) *ast.Struct {
	for _, s := range p.structs {
		if s.Name == typeName {
			return s
		}
	}
	return nil
}
