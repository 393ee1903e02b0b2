// Package types holds the canonical semantic Type representation that
// AstType nodes lower into: primitive, pointer, array, and function,
// arbitrarily nested, each carrying an IsConst flag.
package types

import (
	"fmt"
	"strings"
)

// Type is the canonical semantic type. Every variant is immutable after
// construction, structurally comparable via Equals, and deterministically
// printable via String.
type Type interface {
	String() string
	Equals(other Type) bool
	IsConst() bool

	// isType prevents implementations outside this package, mirroring
	// the closed variant set spec.md §3 names.
	isType()
}

// Primitive is a named base type: one of the lexer's primitive-type-name
// tokens (i8/i16/.../f64/bool), a user identifier used as a type name, or
// "unknown" when lowering could not determine a base name.
type Primitive struct {
	Name  string
	Const bool
}

func NewPrimitive(name string, isConst bool) *Primitive {
	return &Primitive{Name: name, Const: isConst}
}

func (p *Primitive) String() string {
	if p.Const {
		return "const " + p.Name
	}
	return p.Name
}

func (p *Primitive) IsConst() bool { return p.Const }
func (p *Primitive) isType()       {}

func (p *Primitive) Equals(other Type) bool {
	o, ok := other.(*Primitive)
	return ok && p.Name == o.Name
}

// Pointer is a pointer to another Type.
type Pointer struct {
	Elem  Type
	Const bool
}

func NewPointer(elem Type, isConst bool) *Pointer {
	return &Pointer{Elem: elem, Const: isConst}
}

func (p *Pointer) String() string {
	s := p.Elem.String() + "*"
	if p.Const {
		return "const " + s
	}
	return s
}

func (p *Pointer) IsConst() bool { return p.Const }
func (p *Pointer) isType()       {}

func (p *Pointer) Equals(other Type) bool {
	o, ok := other.(*Pointer)
	return ok && p.Elem.Equals(o.Elem)
}

// Array is a fixed-size array of another Type. Size 0 means unspecified
// (the dimension expression was not an integer literal).
type Array struct {
	Elem  Type
	Size  int
	Const bool
}

func NewArray(elem Type, size int, isConst bool) *Array {
	return &Array{Elem: elem, Size: size, Const: isConst}
}

func (a *Array) String() string {
	s := fmt.Sprintf("array(%d, %s)", a.Size, a.Elem.String())
	if a.Const {
		return "const " + s
	}
	return s
}

func (a *Array) IsConst() bool { return a.Const }
func (a *Array) isType()       {}

func (a *Array) Equals(other Type) bool {
	o, ok := other.(*Array)
	return ok && a.Size == o.Size && a.Elem.Equals(o.Elem)
}

// Function is a function signature: ordered parameter types plus an
// optional return type (nil means no declared return type).
type Function struct {
	Params []Type
	Return Type
	Const  bool
}

func NewFunction(params []Type, ret Type, isConst bool) *Function {
	return &Function{Params: params, Return: ret, Const: isConst}
}

func (f *Function) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	ret := "void"
	if f.Return != nil {
		ret = f.Return.String()
	}
	s := fmt.Sprintf("fn(%s) -> %s", strings.Join(parts, ", "), ret)
	if f.Const {
		return "const " + s
	}
	return s
}

func (f *Function) IsConst() bool { return f.Const }
func (f *Function) isType()       {}

func (f *Function) Equals(other Type) bool {
	o, ok := other.(*Function)
	if !ok || len(f.Params) != len(o.Params) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Equals(o.Params[i]) {
			return false
		}
	}
	if f.Return == nil || o.Return == nil {
		return f.Return == nil && o.Return == nil
	}
	return f.Return.Equals(o.Return)
}

// Unknown is the sentinel primitive type lowering uses when an AstType
// is missing a base name.
func Unknown(isConst bool) *Primitive { return NewPrimitive("unknown", isConst) }
