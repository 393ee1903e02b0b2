// Package lower turns syntactic AstType nodes into canonical semantic
// Type values (spec.md §4.3). Lowering cannot fail structurally: a
// missing base name becomes "unknown", and a non-literal array dimension
// becomes size 0 (unspecified).
package lower

import (
	"strconv"
	"strings"

	"ferrontend/internal/frontend/ast"
	"ferrontend/internal/types"
)

// Type lowers a single AstType into its canonical Type, applying suffixes
// in the order the grammar dictates: pre-stars, then dimensions, then
// post-stars.
func Type(t *ast.AstType) types.Type {
	if t == nil {
		return types.Unknown(false)
	}

	base := base(t)

	for i := 0; i < t.PreStars; i++ {
		base = types.NewPointer(base, false)
	}
	for _, dim := range t.Dimensions {
		base = types.NewArray(base, dimensionSize(dim), false)
	}
	for i := 0; i < t.PostStars; i++ {
		base = types.NewPointer(base, false)
	}

	return base
}

// base lowers the case-specific payload (regular/function/grouped),
// carrying each case's own IsConst flag.
func base(t *ast.AstType) types.Type {
	switch t.Case {
	case ast.FunctionTypeCase:
		params := make([]types.Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = Type(p)
		}
		var ret types.Type
		if t.Return != nil {
			ret = Type(t.Return)
		}
		return types.NewFunction(params, ret, t.IsConstBase)

	case ast.GroupedType:
		if t.Inner == nil {
			return types.Unknown(t.IsConstBase)
		}
		inner := Type(t.Inner)
		if t.IsConstBase {
			switch v := inner.(type) {
			case *types.Primitive:
				return types.NewPrimitive(v.Name, true)
			case *types.Pointer:
				return types.NewPointer(v.Elem, true)
			case *types.Array:
				return types.NewArray(v.Elem, v.Size, true)
			case *types.Function:
				return types.NewFunction(v.Params, v.Return, true)
			}
		}
		return inner

	default: // ast.RegularType
		name := t.BaseName
		if name == "" {
			return types.Unknown(t.IsConstBase)
		}
		return types.NewPrimitive(name, t.IsConstBase)
	}
}

// dimensionSize extracts the size of a `[expr]` suffix: an integer
// literal yields its parsed value; anything else (including the
// unspecified `[]` form, whose Expr is nil) yields 0.
func dimensionSize(dim ast.Dimension) int {
	lit, ok := dim.Expr.(*ast.Literal)
	if !ok || lit.Kind != ast.IntLiteral {
		return 0
	}
	// ParseInt with base 0 honors the 0x/0o/0b prefixes the lexer's
	// integer pattern accepts, in addition to plain decimal. Leading zeros
	// of a plain digit run are trimmed first so "010" stays decimal rather
	// than being read as a C-style octal literal.
	s := strings.TrimSpace(lit.Value)
	if len(s) > 1 && s[0] == '0' && s[1] >= '0' && s[1] <= '9' {
		s = strings.TrimLeft(s, "0")
	}
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0
	}
	return int(n)
}

// Function lowers a function declaration's signature directly, without
// requiring the caller to first build an AstType for it.
func Function(params []*ast.Param, ret *ast.AstType) *types.Function {
	paramTypes := make([]types.Type, len(params))
	for i, p := range params {
		paramTypes[i] = Type(p.Type)
	}
	var retType types.Type
	if ret != nil {
		retType = Type(ret)
	}
	return types.NewFunction(paramTypes, retType, false)
}
