package ast

import "ferrontend/internal/source"

// Program is the root node: the whole file's declaration list.
type Program struct {
	Declarations []Decl
	Location     source.Location
}

func (p *Program) INode()               {}
func (p *Program) Loc() source.Location { return p.Location }

// Param is one function parameter: `IDENT ':' Type`.
type Param struct {
	Name string
	Type *AstType
	Sem
	Location source.Location
}

func (p *Param) INode()               {}
func (p *Param) Loc() source.Location { return p.Location }

// FunctionDecl is `'fn' IDENT '(' ParamList? ')' ('->' Type)? Block`.
type FunctionDecl struct {
	Name    string
	Params  []*Param
	Return  *AstType // nil when no '-> Type' is present
	Body    *Block
	Sem
	Location source.Location
}

func (f *FunctionDecl) INode()               {}
func (f *FunctionDecl) declNode()            {}
func (f *FunctionDecl) Loc() source.Location { return f.Location }

// VariableDecl is `IDENT ':' 'const'? Type ('=' (Expression | InitList))?`.
// It implements both Decl (as a top-level declaration) and Stmt (as a
// VariableDeclStmt inside a block, or as a ForInit) since the grammar
// reuses the same production in both positions.
type VariableDecl struct {
	Name string
	Type *AstType
	Init Expr // nil when there is no initializer
	Sem
	Location source.Location
}

func (v *VariableDecl) INode()               {}
func (v *VariableDecl) declNode()            {}
func (v *VariableDecl) stmtNode()            {}
func (v *VariableDecl) Loc() source.Location { return v.Location }
