// Package lexer turns a source buffer into a token stream.
//
// The matching algorithm is a hybrid of fixed-spelling and regex-described
// rules (spec.md §4.1): fixed spellings are tried first with longest-match
// and an identifier-boundary check for keyword-shaped spellings; only if
// none match does the lexer fall back to the ordered pattern registry.
package lexer

import (
	"fmt"
	"regexp"

	"ferrontend/internal/source"
	"ferrontend/internal/tokens"
)

// ErrorKind distinguishes lexer failure modes (spec.md §7).
type ErrorKind int

const (
	UnknownToken ErrorKind = iota
	UnterminatedString
	UnterminatedChar
)

// Error is a fatal lexer failure; lexing stops at the first one.
type Error struct {
	Kind   ErrorKind
	Line   int
	Column int
	Byte   byte
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnterminatedString:
		return fmt.Sprintf("unterminated string literal at %d:%d", e.Line, e.Column)
	case UnterminatedChar:
		return fmt.Sprintf("unterminated character literal at %d:%d", e.Line, e.Column)
	default:
		return fmt.Sprintf("unknown token %q at %d:%d", e.Byte, e.Line, e.Column)
	}
}

// fixedSpelling is one entry in the longest-match registry: punctuation,
// operators, keywords, and primitive type names all share this table.
type fixedSpelling struct {
	spelling string
	kind     tokens.Kind
}

// Order doesn't matter; matchFixed checks every entry and keeps the
// longest spelling that matches, so the longest candidate always wins.
var fixedSpellings = []fixedSpelling{
	{"continue", tokens.CONTINUE},
	{"sizeof", tokens.SIZEOF},
	{"->", tokens.ARROW},
	{"const", tokens.CONST},
	{"while", tokens.WHILE},
	{"break", tokens.BREAK},
	{"false", tokens.FALSE},
	{"else", tokens.ELSE},
	{"true", tokens.TRUE},
	{"bool", tokens.BOOL},
	{"for", tokens.FOR},
	{"i16", tokens.I16},
	{"i32", tokens.I32},
	{"i64", tokens.I64},
	{"u16", tokens.U16},
	{"u32", tokens.U32},
	{"u64", tokens.U64},
	{"f32", tokens.F32},
	{"f64", tokens.F64},
	{"if", tokens.IF},
	{"fn", tokens.FN},
	{"i8", tokens.I8},
	{"u8", tokens.U8},
	{"++", tokens.PLUS_PLUS},
	{"--", tokens.MINUS_MINUS},
	{"+=", tokens.PLUS_EQ},
	{"-=", tokens.MINUS_EQ},
	{"*=", tokens.STAR_EQ},
	{"/=", tokens.SLASH_EQ},
	{"%=", tokens.PERCENT_EQ},
	{"==", tokens.EQ},
	{"!=", tokens.NOT_EQ},
	{"<=", tokens.LT_EQ},
	{">=", tokens.GT_EQ},
	{"&&", tokens.AND_AND},
	{"||", tokens.OR_OR},
	{"return", tokens.RETURN},
	{"(", tokens.LPAREN},
	{")", tokens.RPAREN},
	{"{", tokens.LBRACE},
	{"}", tokens.RBRACE},
	{"[", tokens.LBRACKET},
	{"]", tokens.RBRACKET},
	{",", tokens.COMMA},
	{";", tokens.SEMI},
	{":", tokens.COLON},
	{"=", tokens.ASSIGN},
	{"<", tokens.LT},
	{">", tokens.GT},
	{"+", tokens.PLUS},
	{"-", tokens.MINUS},
	{"*", tokens.STAR},
	{"/", tokens.SLASH},
	{"%", tokens.PERCENT},
	{"!", tokens.NOT},
	{"&", tokens.AMP},
}

// patternRule is a pattern-described token: its shape is a compiled regex
// anchored to the start of the remaining input. Order matters: more
// specific classes are registered before more general ones (float before
// integer, since both start with a digit run).
type patternRule struct {
	re   *regexp.Regexp
	kind tokens.Kind
}

var patternRules = []patternRule{
	{regexp.MustCompile(`^[0-9]+\.[0-9]+`), tokens.FLOAT},
	{regexp.MustCompile(`^0[xX][0-9a-fA-F]+|^0[oO][0-7]+|^0[bB][01]+|^[0-9]+`), tokens.INTEGER},
	{regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*`), tokens.IDENTIFIER},
}

// Lexer scans a source buffer into tokens.
type Lexer struct {
	buf []byte
	pos source.Position
}

func New(buf []byte) *Lexer {
	return &Lexer{buf: buf, pos: source.Position{Line: 1, Column: 1}}
}

func (l *Lexer) atEOF() bool { return l.pos.Index >= len(l.buf) }

func (l *Lexer) remainder() []byte { return l.buf[l.pos.Index:] }

// Lex runs the lexer to completion, dropping comments, and returns the
// token stream terminated by a single EOF token. It stops at the first
// error (§4.1, §7: lexer errors are fatal).
func Lex(buf []byte) ([]tokens.Token, error) {
	l := New(buf)
	var out []tokens.Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == tokens.COMMENT {
			continue
		}
		out = append(out, tok)
		if tok.Kind == tokens.EOF {
			return out, nil
		}
	}
}

func (l *Lexer) next() (tokens.Token, error) {
	l.skipWhitespace()

	if l.atEOF() {
		return tokens.New(tokens.EOF, "", l.pos.Line, l.pos.Column), nil
	}

	line, col := l.pos.Line, l.pos.Column

	if len(l.remainder()) >= 2 && l.remainder()[0] == '/' && l.remainder()[1] == '/' {
		return l.scanLineComment(line, col), nil
	}

	if l.remainder()[0] == '"' {
		return l.scanString(line, col)
	}
	if l.remainder()[0] == '\'' {
		return l.scanChar(line, col)
	}

	if kind, lexeme, ok := l.matchFixed(); ok {
		l.pos.Advance(lexeme)
		return tokens.New(kind, lexeme, line, col), nil
	}

	if kind, lexeme, ok := l.matchPattern(); ok {
		l.pos.Advance(lexeme)
		return tokens.New(kind, lexeme, line, col), nil
	}

	bad := l.remainder()[0]
	return tokens.Token{}, &Error{Kind: UnknownToken, Line: line, Column: col, Byte: bad}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEOF() {
		switch l.remainder()[0] {
		case ' ', '\t', '\r', '\n':
			l.pos.Advance(string(l.remainder()[0]))
		default:
			return
		}
	}
}

func (l *Lexer) scanLineComment(line, col int) tokens.Token {
	rest := l.remainder()
	end := 0
	for end < len(rest) && rest[end] != '\n' {
		end++
	}
	lexeme := string(rest[:end])
	l.pos.Advance(lexeme)
	return tokens.New(tokens.COMMENT, lexeme, line, col)
}

// matchFixed tries every fixed spelling and keeps the longest one whose
// boundary rule (if it is keyword-shaped) is satisfied.
func (l *Lexer) matchFixed() (tokens.Kind, string, bool) {
	rest := l.remainder()
	best := ""
	var bestKind tokens.Kind

	for _, fs := range fixedSpellings {
		if len(fs.spelling) <= len(best) {
			continue
		}
		if !hasPrefix(rest, fs.spelling) {
			continue
		}
		if isIdentShaped(fs.spelling) && !identBoundaryOK(rest, len(fs.spelling)) {
			continue
		}
		best = fs.spelling
		bestKind = fs.kind
	}

	if best == "" {
		return "", "", false
	}
	return bestKind, best, true
}

func (l *Lexer) matchPattern() (tokens.Kind, string, bool) {
	rest := l.remainder()
	for _, pr := range patternRules {
		if loc := pr.re.FindIndex(rest); loc != nil && loc[0] == 0 {
			return pr.kind, string(rest[loc[0]:loc[1]]), true
		}
	}
	return "", "", false
}

func hasPrefix(rest []byte, spelling string) bool {
	if len(rest) < len(spelling) {
		return false
	}
	return string(rest[:len(spelling)]) == spelling
}

func isIdentShaped(spelling string) bool {
	c := spelling[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func identBoundaryOK(rest []byte, matched int) bool {
	if matched >= len(rest) {
		return true
	}
	c := rest[matched]
	return !(c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'))
}

func (l *Lexer) scanString(line, col int) (tokens.Token, error) {
	rest := l.remainder()
	i := 1
	for i < len(rest) && rest[i] != '"' && rest[i] != '\n' {
		i++
	}
	if i >= len(rest) || rest[i] != '"' {
		return tokens.Token{}, &Error{Kind: UnterminatedString, Line: line, Column: col}
	}
	lexeme := string(rest[:i+1])
	l.pos.Advance(lexeme)
	return tokens.New(tokens.STRING, lexeme, line, col), nil
}

func (l *Lexer) scanChar(line, col int) (tokens.Token, error) {
	rest := l.remainder()
	i := 1
	for i < len(rest) && rest[i] != '\'' && rest[i] != '\n' {
		i++
	}
	if i >= len(rest) || rest[i] != '\'' {
		return tokens.Token{}, &Error{Kind: UnterminatedChar, Line: line, Column: col}
	}
	lexeme := string(rest[:i+1])
	l.pos.Advance(lexeme)
	return tokens.New(tokens.CHAR, lexeme, line, col), nil
}
