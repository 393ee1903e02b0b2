// Package ast defines the tree the parser builds: a tagged sum of node
// structs reached through the Node/Expr/Stmt/Decl marker interfaces.
package ast

import (
	"ferrontend/internal/source"
)

// Node is the base interface every AST node implements.
type Node interface {
	INode()
	Loc() source.Location
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action inside a block.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is a top-level declaration (function or variable).
type Decl interface {
	Node
	declNode()
}

// Sem carries the two semantic-analysis slots, both at their zero values
// when a node is built: whether the node is a compile-time constant
// expression, and its lowered semantic type. Expression nodes,
// VariableDecl, FunctionDecl, Param and TypeNode embed it; Program,
// Block, the other statement nodes and AstType do not. This front-end
// never fills either slot.
type Sem struct {
	IsConstExpr bool
	SemType     any
}
