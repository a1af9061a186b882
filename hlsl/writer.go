// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"

	"github.com/gogpu/hlsl2glsl/ast"
	"github.com/gogpu/hlsl2glsl/codewriter"
	"github.com/gogpu/hlsl2glsl/stringpool"
)

// samplerPair records the fabricated Texture2D/TextureCube + SamplerState
// names ModernMode splits a sampler2D/samplerCUBE declaration into, keyed by
// the original declaration's interned name.
type samplerPair struct {
	textureName string
	samplerName string
}

// Writer carries the state of one Compile call.
type Writer struct {
	tree  *ast.Tree
	opts  Options
	entry *ast.Function
	cw    *codewriter.Writer
	names *namer

	samplers map[stringpool.Handle]samplerPair

	err error
}

func newWriter(tree *ast.Tree, opts Options, entry *ast.Function) *Writer {
	return &Writer{
		tree:     tree,
		opts:     opts,
		entry:    entry,
		cw:       codewriter.New(false),
		names:    newNamer(),
		samplers: make(map[stringpool.Handle]samplerPair),
	}
}

// identName returns the HLSL spelling of a source identifier. Re-emitting
// valid HLSL as HLSL needs no keyword escaping — every name that parsed
// successfully is already a legal HLSL identifier.
func (w *Writer) identName(h stringpool.Handle) string {
	return w.tree.Strings.String(h)
}

func (w *Writer) fail(format string, args ...any) {
	if w.err == nil {
		w.err = NewError(ErrorEmission, fmt.Sprintf(format, args...))
	}
}

func (w *Writer) writeModule() {
	w.writeStructs()
	w.writeBuffers()
	w.writeGlobals()
	w.writeFunctions()
}

func (w *Writer) writeStructs() {
	ast.WalkStatements(w.tree.Root.First, func(s ast.Statement) {
		st, ok := s.(*ast.Struct)
		if !ok {
			return
		}
		w.cw.WriteLine(0, "struct %s {", w.identName(st.Name))
		for f := st.Fields; f != nil; f = f.Next {
			if f.HasSemantic {
				w.cw.WriteLine(1, "%s %s : %s;", w.hlslType(f.Type), w.identName(f.Name), w.tree.Strings.String(f.Semantic))
			} else {
				w.cw.WriteLine(1, "%s %s;", w.hlslType(f.Type), w.identName(f.Name))
			}
		}
		w.cw.WriteLine(0, "};")
		w.cw.Blank()
	})
}

// writeBuffers renders each cbuffer/tbuffer per the active mode: ModernMode
// keeps the block, LegacyMode unwraps its fields into plain globals since
// shader model 3 has no constant-buffer construct.
func (w *Writer) writeBuffers() {
	ast.WalkStatements(w.tree.Root.First, func(s ast.Statement) {
		b, ok := s.(*ast.Buffer)
		if !ok {
			return
		}
		if w.opts.Mode == LegacyMode {
			for f := b.Fields; f != nil; f = f.Next {
				w.cw.WriteLine(0, "%s %s;", w.hlslType(f.Type), w.identName(f.Name))
			}
			return
		}

		keyword := "cbuffer"
		if b.IsTexture {
			keyword = "tbuffer"
		}
		if b.HasRegister {
			w.cw.WriteLine(0, "%s %s : register(%s) {", keyword, w.identName(b.Name), w.tree.Strings.String(b.Register))
		} else {
			w.cw.WriteLine(0, "%s %s {", keyword, w.identName(b.Name))
		}
		for f := b.Fields; f != nil; f = f.Next {
			w.cw.WriteLine(1, "%s %s;", w.hlslType(f.Type), w.identName(f.Name))
		}
		w.cw.WriteLine(0, "};")
	})
	w.cw.Blank()
}

// writeGlobals renders top-level non-buffer declarations. A sampler object
// in ModernMode is split into its Texture2D/TextureCube + SamplerState pair
// instead of being emitted as a combined sampler declaration.
func (w *Writer) writeGlobals() {
	for s := w.tree.Root.First; s != nil; s = s.Base().Next {
		d, ok := s.(*ast.Declaration)
		if !ok {
			continue
		}
		if w.opts.Mode == ModernMode && (d.Type.BaseType == ast.Sampler2D || d.Type.BaseType == ast.SamplerCube) {
			w.writeSamplerPair(d)
			continue
		}
		reg := ""
		if d.HasRegister {
			reg = fmt.Sprintf(" : register(%s)", w.tree.Strings.String(d.Register))
		}
		w.cw.WriteLine(0, "%s %s%s;", w.hlslType(d.Type), w.identName(d.Name), reg)
	}
	w.cw.Blank()
}

func (w *Writer) writeSamplerPair(d *ast.Declaration) {
	base := w.identName(d.Name)
	texName := w.names.callWithPrefix("", base+"Texture")
	sampName := w.names.callWithPrefix("", base+"Sampler")

	texType := "Texture2D"
	if d.Type.BaseType == ast.SamplerCube {
		texType = "TextureCube"
	}
	w.cw.WriteLine(0, "%s %s;", texType, texName)
	w.cw.WriteLine(0, "SamplerState %s;", sampName)
	w.samplers[d.Name] = samplerPair{textureName: texName, samplerName: sampName}
}

func (w *Writer) writeFunctions() {
	ast.WalkStatements(w.tree.Root.First, func(s ast.Statement) {
		fn, ok := s.(*ast.Function)
		if !ok || fn.Body == nil {
			return
		}
		w.writeFunction(fn)
	})
}

func (w *Writer) writeFunction(fn *ast.Function) {
	w.cw.BeginLine(0, "", 0)
	w.cw.Write("%s %s(", w.hlslType(fn.ReturnType), w.identName(fn.Name))
	first := true
	for a := fn.Arguments; a != nil; a = a.Next {
		if !first {
			w.cw.Write(", ")
		}
		first = false
		switch a.Modifier {
		case ast.ModifierIn:
			w.cw.Write("in ")
		case ast.ModifierInout:
			w.cw.Write("inout ")
		case ast.ModifierUniform:
			w.cw.Write("uniform ")
		}
		w.cw.Write("%s %s", w.hlslType(a.Type), w.identName(a.Name))
		if a.HasSemantic {
			w.cw.Write(" : %s", w.tree.Strings.String(a.Semantic))
		}
	}
	w.cw.Write(")")
	if fn.HasSemantic {
		w.cw.Write(" : %s", w.tree.Strings.String(fn.Semantic))
	}
	w.cw.Write(" {")
	w.cw.EndLine("")
	w.emitStatements(fn.Body, 1)
	w.cw.WriteLine(0, "}")
	w.cw.Blank()
}
