// Package dump renders the front-end's outputs for the CLI's debug flags
// (--tokens/--ast/--sym-table). It only consumes core types; nothing in
// the front-end depends on it.
package dump

import (
	"fmt"
	"io"
	"sort"

	"ferrontend/colors"
	"ferrontend/internal/frontend/ast"
	"ferrontend/internal/lower"
	"ferrontend/internal/symtable"
	"ferrontend/internal/tokens"
)

// Tokens writes one line per token: position, quoted lexeme, and kind in
// parentheses (omitted when the kind's own spelling is the lexeme),
// mirroring the teacher's Token.Debug layout.
func Tokens(w io.Writer, filename string, toks []tokens.Token) {
	for _, tok := range toks {
		colors.GREY.Fprintf(w, "%s:%d:%d ", filename, tok.Line, tok.Column)
		if tok.Lexeme == string(tok.Kind) {
			fmt.Fprintf(w, "%q\n", tok.Lexeme)
		} else {
			fmt.Fprintf(w, "%q (%s)\n", tok.Lexeme, tok.Kind)
		}
	}
}

// AST writes an indented tree of the program's declarations.
func AST(w io.Writer, prog *ast.Program) {
	if prog == nil {
		fmt.Fprintln(w, "<nil program>")
		return
	}
	for _, decl := range prog.Declarations {
		dumpDecl(w, decl, 0)
	}
}

func dumpDecl(w io.Writer, decl ast.Decl, depth int) {
	switch d := decl.(type) {
	case *ast.FunctionDecl:
		line(w, depth, "FunctionDecl %s", d.Name)
		for _, p := range d.Params {
			line(w, depth+1, "Param %s: %s", p.Name, lower.Type(p.Type).String())
		}
		if d.Return != nil {
			line(w, depth+1, "Return %s", lower.Type(d.Return).String())
		}
		dumpBlock(w, d.Body, depth+1)
	case *ast.VariableDecl:
		line(w, depth, "VariableDecl %s: %s", d.Name, lower.Type(d.Type).String())
		if d.Init != nil {
			dumpExpr(w, d.Init, depth+1)
		}
	}
}

func dumpBlock(w io.Writer, b *ast.Block, depth int) {
	if b == nil {
		return
	}
	line(w, depth, "Block")
	for _, s := range b.Statements {
		dumpStmt(w, s, depth+1)
	}
}

func dumpStmt(w io.Writer, s ast.Stmt, depth int) {
	switch v := s.(type) {
	case *ast.VariableDecl:
		dumpDecl(w, v, depth)
	case *ast.Block:
		dumpBlock(w, v, depth)
	case *ast.If:
		line(w, depth, "If")
		dumpExpr(w, v.Cond, depth+1)
		dumpBlock(w, v.Then, depth+1)
		if v.Else != nil {
			dumpStmt(w, v.Else, depth+1)
		}
	case *ast.While:
		line(w, depth, "While")
		dumpExpr(w, v.Cond, depth+1)
		dumpBlock(w, v.Body, depth+1)
	case *ast.For:
		line(w, depth, "For")
		if v.Init != nil {
			dumpStmt(w, v.Init, depth+1)
		}
		if v.Cond != nil {
			dumpExpr(w, v.Cond, depth+1)
		}
		if v.Post != nil {
			dumpExpr(w, v.Post, depth+1)
		}
		dumpBlock(w, v.Body, depth+1)
	case *ast.Return:
		line(w, depth, "Return")
		if v.Value != nil {
			dumpExpr(w, v.Value, depth+1)
		}
	case *ast.Break:
		line(w, depth, "Break")
	case *ast.Continue:
		line(w, depth, "Continue")
	case *ast.ExprStmt:
		dumpExpr(w, v.X, depth)
	}
}

func dumpExpr(w io.Writer, e ast.Expr, depth int) {
	switch v := e.(type) {
	case *ast.Literal:
		line(w, depth, "Literal %s", v.Value)
	case *ast.Identifier:
		line(w, depth, "Identifier %s", v.Name)
	case *ast.BinaryExpr:
		line(w, depth, "BinaryExpr %s", v.Op.Lexeme)
		dumpExpr(w, v.X, depth+1)
		dumpExpr(w, v.Y, depth+1)
	case *ast.UnaryExpr:
		line(w, depth, "UnaryExpr %s", v.Op.Lexeme)
		dumpExpr(w, v.X, depth+1)
	case *ast.PostfixExpr:
		line(w, depth, "PostfixExpr %s", v.Op.Lexeme)
		dumpExpr(w, v.X, depth+1)
	case *ast.AssignmentExpr:
		line(w, depth, "AssignmentExpr %s", v.Op.Lexeme)
		dumpExpr(w, v.Target, depth+1)
		dumpExpr(w, v.Value, depth+1)
	case *ast.Call:
		line(w, depth, "Call")
		dumpExpr(w, v.Callee, depth+1)
		for _, arg := range v.Args {
			dumpExpr(w, arg, depth+1)
		}
	case *ast.Subscript:
		line(w, depth, "Subscript")
		dumpExpr(w, v.X, depth+1)
		dumpExpr(w, v.Index, depth+1)
	case *ast.InitializerList:
		line(w, depth, "InitializerList")
		for _, el := range v.Elements {
			dumpExpr(w, el, depth+1)
		}
	}
}

func line(w io.Writer, depth int, format string, args ...any) {
	for i := 0; i < depth; i++ {
		fmt.Fprint(w, "  ")
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// SymbolTable writes a deterministically sorted dump of a global scope's
// two namespaces.
func SymbolTable(w io.Writer, scope *symtable.Scope) {
	fmt.Fprintln(w, "Functions:")
	dumpTable(w, scope.Functions)
	fmt.Fprintln(w, "Variables:")
	dumpTable(w, scope.Variables)
}

func dumpTable(w io.Writer, t *symtable.Table) {
	if t.Len() == 0 {
		fmt.Fprintln(w, "  (empty)")
		return
	}
	var names []string
	t.ForEach(func(sym *symtable.Symbol) { names = append(names, sym.Name) })
	sort.Strings(names)
	for _, name := range names {
		sym, _ := t.Lookup(name)
		fmt.Fprintf(w, "  %s : %s\n", sym.Name, sym.SemType.String())
	}
}
