package ast

import "ferrontend/internal/source"

// TypeCase tags which of the three AstType shapes a given record holds.
type TypeCase int

const (
	// RegularType names a base type (primitive or user identifier).
	RegularType TypeCase = iota
	// FunctionTypeCase is a function type: parameters plus an optional
	// return type, with its own suffix descriptors layered on top.
	FunctionTypeCase
	// GroupedType is a parenthesized type, used to override suffix
	// precedence (e.g. `(i32[10])*`).
	GroupedType
)

// Dimension is one `[...]` suffix on a type. Expr is nil for the
// unspecified-size form `[]`; otherwise it is the parsed dimension
// expression (only an integer literal lowers to a concrete size —
// anything else becomes size 0, per the lowering pass).
type Dimension struct {
	Expr Expr
}

// AstType is the single record covering all three syntactic type shapes
// (spec: regular / function / grouped). Suffixes are recorded in the
// order the grammar applies them: pre-stars, then dimensions, then
// post-stars, all against the same base/inner/function payload.
type AstType struct {
	Case TypeCase

	// Regular case.
	BaseName string

	// Function case.
	Params []*AstType
	Return *AstType

	// Grouped case.
	Inner *AstType

	// Shared across all three cases.
	IsConstBase bool
	PreStars    int
	Dimensions  []Dimension
	PostStars   int

	Location source.Location
}

func (t *AstType) INode()               {}
func (t *AstType) Loc() source.Location { return t.Location }

// TypeNode wraps an AstType so it can appear wherever the grammar embeds
// a type as a first-class node (spec.md §3 lists `type` among the AST
// node kinds alongside declarations and expressions).
type TypeNode struct {
	Type *AstType
	Sem
	Location source.Location
}

func (t *TypeNode) INode()             {}
func (t *TypeNode) Loc() source.Location { return t.Location }
