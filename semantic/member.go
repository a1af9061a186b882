package semantic

import (
	"github.com/gogpu/hlsl2glsl/ast"
	"github.com/gogpu/hlsl2glsl/stringpool"
)

// MemberType implements §4.4.3: resolving `object.field` on a struct yields
// that field's declared type; on a numeric scalar/vector it is a swizzle
// (xyzw/rgba, 1-4 letters, same family as the object, vector width equal to
// the swizzle length); on a matrix it is a `_m00`/`_11`-style element-group
// access. findStruct resolves a UserDefined type's fields; it is only
// consulted when objType.BaseType is ast.UserDefined.
func MemberType(objType ast.HLSLType, field string, strings *stringpool.Pool, findStruct func(stringpool.Handle) *ast.Struct) (ast.HLSLType, bool) {
	if objType.BaseType == ast.UserDefined {
		s := findStruct(objType.TypeName)
		if s == nil {
			return ast.HLSLType{}, false
		}
		for f := s.Fields; f != nil; f = f.Next {
			if strings.String(f.Name) == field {
				return f.Type, true
			}
		}
		return ast.HLSLType{}, false
	}

	info, ok := numericTable[objType.BaseType]
	if !ok {
		return ast.HLSLType{}, false
	}

	var length int
	if info.Dims <= 1 {
		length = len(field)
		for _, c := range field {
			switch c {
			case 'x', 'y', 'z', 'w', 'r', 'g', 'b', 'a':
			default:
				return ast.HLSLType{}, false
			}
		}
		if length == 0 {
			return ast.HLSLType{}, false
		}
	} else {
		rows, cols := MatrixShape(objType.BaseType)
		n := field
		for len(n) > 0 {
			if n[0] != '_' {
				return ast.HLSLType{}, false
			}
			n = n[1:]
			base := 1
			if len(n) > 0 && n[0] == 'm' {
				base = 0
				n = n[1:]
			}
			if len(n) < 2 || !isDigit(n[0]) || !isDigit(n[1]) {
				return ast.HLSLType{}, false
			}
			r := int(n[0]-'0') - base
			c := int(n[1]-'0') - base
			if r < 0 || c < 0 || r >= rows || c >= cols {
				return ast.HLSLType{}, false
			}
			length++
			n = n[2:]
		}
		if length == 0 {
			return ast.HLSLType{}, false
		}
	}

	if length > 4 {
		return ast.HLSLType{}, false
	}
	if info.Family == FamilyBool && length > 1 {
		// No bool vector types exist in this dialect.
		return ast.HLSLType{}, false
	}

	return ast.HLSLType{BaseType: VectorOf(info.Family, length)}, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
