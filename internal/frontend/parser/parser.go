// Package parser is a hand-written recursive-descent parser: one-token
// lookahead (plus one extra peek to disambiguate `IDENT ':'`), strict
// first-error-and-stop semantics, and a non-trivial suffix-precedence
// type grammar (see typ.go).
package parser

import (
	"fmt"

	"ferrontend/internal/diagnostics"
	"ferrontend/internal/frontend/ast"
	"ferrontend/internal/source"
	"ferrontend/internal/tokens"
)

// Parser holds the transient state of parsing a single token stream.
// It is created fresh for each call to Parse, never reused.
type Parser struct {
	tokens   []tokens.Token
	current  int
	filename string
	err      *diagnostics.ParseDiagnostic
}

// Parse builds the Program node for toks. On the first grammar violation
// it stops and returns the accumulated diagnostic instead of a tree; no
// partial-recovery is attempted (spec.md §4.2: "on first error... parsing
// aborts").
func Parse(toks []tokens.Token, filename string) (*ast.Program, *diagnostics.ParseDiagnostic) {
	p := &Parser{tokens: toks, filename: filename}
	prog := p.parseProgram()
	if p.err != nil {
		return nil, p.err
	}
	return prog, nil
}

func (p *Parser) parseProgram() *ast.Program {
	start := p.peek()
	prog := &ast.Program{}

	for !p.atEnd() && p.err == nil {
		decl := p.parseDeclaration()
		if p.err != nil {
			return nil
		}
		prog.Declarations = append(prog.Declarations, decl)
	}
	if p.err != nil {
		return nil
	}

	if !p.check(tokens.EOF) {
		p.failKind(p.peek(), diagnostics.ParseTrailingTokens, "unexpected tokens after program end")
		return nil
	}

	prog.Location = p.spanFrom(start)
	return prog
}

// parseDeclaration chooses by lookahead: 'fn' -> function, IDENTIFIER ->
// variable; anything else at top level is an error.
func (p *Parser) parseDeclaration() ast.Decl {
	switch p.peek().Kind {
	case tokens.FN:
		return p.parseFunctionDecl()
	case tokens.IDENTIFIER:
		decl := p.parseVariableDecl()
		if p.err != nil {
			return nil
		}
		p.expectSemi()
		return decl
	default:
		p.fail(p.peek(), fmt.Sprintf("expected a declaration, got %s", p.peek().Kind))
		return nil
	}
}

// failKind is fail with an explicit diagnostic kind, for call sites whose
// error does not fit the generic "expected token" shape.
func (p *Parser) failKind(tok tokens.Token, kind diagnostics.Kind, message string) {
	if p.err != nil {
		return
	}
	p.err = diagnostics.New(p.filename, tok, kind, message)
}

// --- token stream helpers ---

func (p *Parser) peek() tokens.Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF sentinel
	}
	return p.tokens[p.current]
}

func (p *Parser) peekAt(offset int) tokens.Token {
	idx := p.current + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) previous() tokens.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.err != nil || p.peek().Kind == tokens.EOF
}

func (p *Parser) check(kind tokens.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) checkAny(kinds ...tokens.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			return true
		}
	}
	return false
}

func (p *Parser) advance() tokens.Token {
	tok := p.peek()
	if p.current < len(p.tokens)-1 {
		p.current++
	}
	return tok
}

// match advances and returns true if the current token has kind.
func (p *Parser) match(kind tokens.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes kind or fails with a generic "expected X" diagnostic.
func (p *Parser) expect(kind tokens.Kind) tokens.Token {
	if p.check(kind) {
		return p.advance()
	}
	p.fail(p.peek(), fmt.Sprintf("expected %s, got %s", kind, p.peek().Kind))
	return tokens.Token{}
}

// expectSemi consumes a ';' or, if missing, anchors the diagnostic at the
// end of the previous token rather than under whatever follows it — the
// caret points at the gap where the semicolon belongs.
func (p *Parser) expectSemi() {
	if p.err != nil {
		return
	}
	if p.check(tokens.SEMI) {
		p.advance()
		return
	}
	prev := p.previous()
	p.err = diagnostics.AtEndOf(p.filename, prev, "expected ';' at end of statement")
}

func (p *Parser) fail(tok tokens.Token, message string) {
	if p.err != nil {
		return
	}
	p.err = diagnostics.New(p.filename, tok, diagnostics.ParseExpectedToken, message)
}

// spanFrom builds a Location from start's first byte to the previously
// consumed token's last byte.
func (p *Parser) spanFrom(start tokens.Token) source.Location {
	end := p.previous()
	return source.Location{
		Filename: p.filename,
		Start:    source.Position{Line: start.Line, Column: start.Column},
		End:      source.Position{Line: end.Line, Column: end.Column + len(end.Lexeme)},
	}
}
