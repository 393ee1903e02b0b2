// Package pipeline wires the front-end stages together: load, lex, parse,
// lower, bind (spec.md §5). There is no concurrency model — stages run
// strictly in that order, synchronously, on a single source file.
package pipeline

import (
	"fmt"
	"os"

	"ferrontend/colors"
	"ferrontend/internal/diagnostics"
	"ferrontend/internal/frontend/ast"
	"ferrontend/internal/frontend/lexer"
	"ferrontend/internal/frontend/parser"
	"ferrontend/internal/symtable"
	"ferrontend/internal/tokens"
)

// Options configures one Compile call. Either EntryFile or Code supplies
// the source; Code wins when both are set (the REPL's in-memory path).
type Options struct {
	EntryFile string
	Code      string
	Debug     bool
}

// Result carries whatever stages completed before the run stopped.
// Exactly one of Diagnostic or Err is set on failure; both are nil on
// success.
type Result struct {
	Success    bool
	Filename   string
	Tokens     []tokens.Token
	Program    *ast.Program
	Scope      *symtable.Scope
	Diagnostic *diagnostics.ParseDiagnostic
	Err        error
}

// Compile runs the front-end on a single source file (or in-memory
// source) to completion or to the first diagnostic, whichever comes
// first (spec.md §4.2, §5: on first error, parsing aborts and no later
// declaration is parsed).
func Compile(opts Options) Result {
	filename := opts.EntryFile
	if filename == "" {
		filename = "<memory>"
	}

	buf, err := load(opts)
	if err != nil {
		return Result{Filename: filename, Err: fmt.Errorf("load: %w", err)}
	}

	if opts.Debug {
		colors.CYAN.Printf("[phase] lex %s\n", filename)
	}
	toks, lexErr := lexer.Lex(buf)
	if lexErr != nil {
		return Result{Filename: filename, Err: lexErr}
	}

	if opts.Debug {
		colors.CYAN.Printf("[phase] parse %s\n", filename)
	}
	prog, diag := parser.Parse(toks, filename)
	if diag != nil {
		return Result{Filename: filename, Tokens: toks, Diagnostic: diag}
	}

	if opts.Debug {
		colors.CYAN.Printf("[phase] lower + bind %s\n", filename)
	}
	scope, bindErr := symtable.BuildGlobalScope(prog)
	if bindErr != nil {
		return Result{Filename: filename, Tokens: toks, Program: prog, Err: bindErr}
	}

	return Result{
		Success:  true,
		Filename: filename,
		Tokens:   toks,
		Program:  prog,
		Scope:    scope,
	}
}

func load(opts Options) ([]byte, error) {
	if opts.Code != "" {
		return []byte(opts.Code), nil
	}
	return os.ReadFile(opts.EntryFile)
}
