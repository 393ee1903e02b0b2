// Package symtable builds the global scope: two disjoint symbol tables,
// one for functions and one for variables, populated from a Program's
// top-level declarations (spec.md §4.4).
package symtable

import (
	"fmt"

	"ferrontend/internal/frontend/ast"
	"ferrontend/internal/lower"
	"ferrontend/internal/types"
)

// Symbol is one top-level binding: a borrowed name (owned by the AST),
// its lowered semantic type, and whether it denotes a constant
// expression.
type Symbol struct {
	Name        string
	SemType     types.Type
	IsConstExpr bool
}

// Table is a hash map of symbols keyed by name, with reject-on-duplicate
// insert semantics.
type Table struct {
	symbols map[string]*Symbol
}

func newTable() *Table {
	return &Table{symbols: make(map[string]*Symbol)}
}

// Insert adds sym, failing if its name is already present.
func (t *Table) Insert(sym *Symbol) error {
	if _, exists := t.symbols[sym.Name]; exists {
		return fmt.Errorf("duplicate symbol %q", sym.Name)
	}
	t.symbols[sym.Name] = sym
	return nil
}

// Lookup finds a symbol by name in this table only.
func (t *Table) Lookup(name string) (*Symbol, bool) {
	sym, ok := t.symbols[name]
	return sym, ok
}

// Remove deletes a symbol by name.
func (t *Table) Remove(name string) {
	delete(t.symbols, name)
}

// ForEach visits every symbol in the table. Iteration order is
// unspecified (backed by a Go map).
func (t *Table) ForEach(f func(*Symbol)) {
	for _, sym := range t.symbols {
		f(sym)
	}
}

func (t *Table) Len() int { return len(t.symbols) }

// Scope pairs the two namespaces a given lexical level owns, with an
// optional non-owning link to the enclosing scope. Only the global
// scope is populated by this front-end; function-body scopes are
// reserved for a future name-resolution pass and stay empty.
type Scope struct {
	Variables *Table
	Functions *Table
	Parent    *Scope
}

func newScope(parent *Scope) *Scope {
	return &Scope{Variables: newTable(), Functions: newTable(), Parent: parent}
}

// DuplicateSymbolError names the table and symbol that collided.
type DuplicateSymbolError struct {
	Table string
	Name  string
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("duplicate symbol %q in %s table", e.Name, e.Table)
}

// BuildGlobalScope walks prog's declarations in source order, lowering
// each one's type and inserting it into the matching table. Functions
// and variables occupy disjoint namespaces, so a function and a
// variable may share a name (spec.md §4.4, §9 open question #1).
func BuildGlobalScope(prog *ast.Program) (*Scope, error) {
	scope := newScope(nil)

	for _, decl := range prog.Declarations {
		switch d := decl.(type) {
		case *ast.FunctionDecl:
			sym := &Symbol{
				Name:        d.Name,
				SemType:     lower.Function(d.Params, d.Return),
				IsConstExpr: false,
			}
			if err := scope.Functions.Insert(sym); err != nil {
				return scope, &DuplicateSymbolError{Table: "functions", Name: d.Name}
			}

		case *ast.VariableDecl:
			sym := &Symbol{
				Name:        d.Name,
				SemType:     lower.Type(d.Type),
				IsConstExpr: false,
			}
			if err := scope.Variables.Insert(sym); err != nil {
				return scope, &DuplicateSymbolError{Table: "variables", Name: d.Name}
			}
		}
	}

	return scope, nil
}
