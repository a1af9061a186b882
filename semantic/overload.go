package semantic

import (
	"fmt"
	"sort"

	"github.com/gogpu/hlsl2glsl/ast"
	"github.com/gogpu/hlsl2glsl/stringpool"
)

// Candidate is one overload considered during resolution: either a
// user-defined Function or a built-in Intrinsic, never both.
type Candidate struct {
	Function  *ast.Function
	Intrinsic *Intrinsic
}

// ReturnType is the result type the call site's expression node takes on
// once this candidate is selected.
func (c Candidate) ReturnType() ast.HLSLType {
	if c.Function != nil {
		return c.Function.ReturnType
	}
	return ast.HLSLType{BaseType: c.Intrinsic.ReturnType}
}

func (c Candidate) numArgs() int {
	if c.Function != nil {
		return c.Function.NumArguments
	}
	return c.Intrinsic.NumArgs
}

func (c Candidate) argType(i int) ast.HLSLType {
	if c.Function != nil {
		arg := c.Function.Arguments
		for j := 0; j < i && arg != nil; j++ {
			arg = arg.Next
		}
		if arg == nil {
			return ast.HLSLType{BaseType: ast.Unknown}
		}
		return arg.Type
	}
	return ast.HLSLType{BaseType: c.Intrinsic.ArgTypes[i]}
}

// ResolveOverload implements §4.4.2: it collects every entry of functions
// whose name matches, plus every registered intrinsic overload under name,
// ranks each candidate's arguments by CastRank, and returns the unique best
// match.
//
// functions should already be narrowed to same-named, in-scope candidates —
// scope lookup is the parser's job. strings resolves each Function's Name
// handle for the comparison.
func ResolveOverload(name string, functions []*ast.Function, strings *stringpool.Pool, argTypes []ast.HLSLType) (Candidate, error) {
	var candidates []Candidate
	for _, fn := range functions {
		if strings.String(fn.Name) == name {
			candidates = append(candidates, Candidate{Function: fn})
		}
	}
	for _, intr := range LookupIntrinsics(name) {
		candidates = append(candidates, Candidate{Intrinsic: intr})
	}
	if len(candidates) == 0 {
		return Candidate{}, fmt.Errorf("undeclared identifier %q", name)
	}

	type scored struct {
		c     Candidate
		ranks []int
	}
	var viable []scored
	for _, c := range candidates {
		if c.numArgs() != len(argTypes) {
			continue
		}
		ranks := make([]int, len(argTypes))
		ok := true
		for i, arg := range argTypes {
			r := CastRank(arg, c.argType(i))
			if r < 0 {
				ok = false
				break
			}
			ranks[i] = r
		}
		if ok {
			sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
			viable = append(viable, scored{c, ranks})
		}
	}
	if len(viable) == 0 {
		return Candidate{}, fmt.Errorf("no overloaded function matched all of the arguments")
	}

	best := viable[0]
	ties := 1
	for _, v := range viable[1:] {
		switch compareRankVectors(v.ranks, best.ranks) {
		case -1:
			best = v
			ties = 1
		case 0:
			ties++
		}
	}
	if ties > 1 {
		return Candidate{}, fmt.Errorf("%d overloads have similar conversions", ties)
	}
	return best.c, nil
}

// compareRankVectors compares two sorted-descending rank vectors
// lexicographically, returning -1/0/1 as a < b / a == b / a > b. Both slices
// are the same length: callers only compare candidates with the same
// argument count.
func compareRankVectors(a, b []int) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
