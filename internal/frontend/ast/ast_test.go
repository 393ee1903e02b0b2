package ast

import "testing"

func TestSemSlotsStartEmpty(t *testing.T) {
	id := &Identifier{Name: "x"}
	if id.IsConstExpr {
		t.Error("IsConstExpr should default to false")
	}
	if id.SemType != nil {
		t.Error("SemType should default to nil until a later pass fills it in")
	}
}

func TestVariableDeclIsBothDeclAndStmt(t *testing.T) {
	v := &VariableDecl{Name: "x"}
	var _ Decl = v
	var _ Stmt = v
}

func TestNodeInterfacesCoverTheCatalog(t *testing.T) {
	var nodes []Node = []Node{
		&Program{},
		&FunctionDecl{},
		&Param{},
		&VariableDecl{},
		&Block{},
		&If{},
		&While{},
		&For{},
		&Return{},
		&Break{},
		&Continue{},
		&ExprStmt{},
		&Literal{},
		&Identifier{},
		&BinaryExpr{},
		&UnaryExpr{},
		&PostfixExpr{},
		&AssignmentExpr{},
		&Call{},
		&Subscript{},
		&InitializerList{},
		&AstType{},
		&TypeNode{},
	}
	if len(nodes) == 0 {
		t.Fatal("expected a non-empty node catalog")
	}
}
