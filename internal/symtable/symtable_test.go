package symtable

import (
	"testing"

	"ferrontend/internal/frontend/ast"
)

func TestBuildGlobalScopeSeparatesFunctionsAndVariables(t *testing.T) {
	prog := &ast.Program{
		Declarations: []ast.Decl{
			&ast.FunctionDecl{Name: "add", Return: &ast.AstType{Case: ast.RegularType, BaseName: "i32"}},
			&ast.VariableDecl{Name: "x", Type: &ast.AstType{Case: ast.RegularType, BaseName: "i32"}},
		},
	}

	scope, err := BuildGlobalScope(prog)
	if err != nil {
		t.Fatalf("BuildGlobalScope: %v", err)
	}
	if scope.Functions.Len() != 1 || scope.Variables.Len() != 1 {
		t.Fatalf("got %d functions, %d variables; want 1 each", scope.Functions.Len(), scope.Variables.Len())
	}
	if _, ok := scope.Functions.Lookup("add"); !ok {
		t.Error("expected function add in functions table")
	}
	if _, ok := scope.Variables.Lookup("x"); !ok {
		t.Error("expected variable x in variables table")
	}
}

func TestFunctionAndVariableMaySharedName(t *testing.T) {
	prog := &ast.Program{
		Declarations: []ast.Decl{
			&ast.FunctionDecl{Name: "f"},
			&ast.VariableDecl{Name: "f", Type: &ast.AstType{Case: ast.RegularType, BaseName: "i32"}},
		},
	}
	if _, err := BuildGlobalScope(prog); err != nil {
		t.Errorf("functions and variables are disjoint namespaces, should not collide: %v", err)
	}
}

func TestDuplicateFunctionNameFails(t *testing.T) {
	prog := &ast.Program{
		Declarations: []ast.Decl{
			&ast.FunctionDecl{Name: "f"},
			&ast.FunctionDecl{Name: "f"},
		},
	}
	_, err := BuildGlobalScope(prog)
	if err == nil {
		t.Fatal("expected a duplicate-symbol error")
	}
	if _, ok := err.(*DuplicateSymbolError); !ok {
		t.Errorf("got %T, want *DuplicateSymbolError", err)
	}
}

func TestDuplicateVariableNameFails(t *testing.T) {
	prog := &ast.Program{
		Declarations: []ast.Decl{
			&ast.VariableDecl{Name: "x", Type: &ast.AstType{Case: ast.RegularType, BaseName: "i32"}},
			&ast.VariableDecl{Name: "x", Type: &ast.AstType{Case: ast.RegularType, BaseName: "i32"}},
		},
	}
	_, err := BuildGlobalScope(prog)
	if err == nil {
		t.Fatal("expected a duplicate-symbol error")
	}
}
