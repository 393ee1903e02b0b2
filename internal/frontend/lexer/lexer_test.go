package lexer

import (
	"testing"

	"ferrontend/internal/tokens"
)

func kinds(toks []tokens.Token) []tokens.Kind {
	out := make([]tokens.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexKeywordVsIdentifierBoundary(t *testing.T) {
	toks, err := Lex([]byte("if ifx"))
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	got := kinds(toks)
	want := []tokens.Kind{tokens.IF, tokens.IDENTIFIER, tokens.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexLongestMatchOperators(t *testing.T) {
	toks, err := Lex([]byte("a += 1; a++;"))
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	got := kinds(toks)
	want := []tokens.Kind{
		tokens.IDENTIFIER, tokens.PLUS_EQ, tokens.INTEGER, tokens.SEMI,
		tokens.IDENTIFIER, tokens.PLUS_PLUS, tokens.SEMI, tokens.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexDropsComments(t *testing.T) {
	toks, err := Lex([]byte("x // trailing comment\ny"))
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	got := kinds(toks)
	want := []tokens.Kind{tokens.IDENTIFIER, tokens.IDENTIFIER, tokens.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v (comments must not surface)", got, want)
	}
}

func TestLexFloatBeforeInteger(t *testing.T) {
	toks, err := Lex([]byte("3.14 42"))
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if toks[0].Kind != tokens.FLOAT || toks[0].Lexeme != "3.14" {
		t.Errorf("got %+v, want float 3.14", toks[0])
	}
	if toks[1].Kind != tokens.INTEGER || toks[1].Lexeme != "42" {
		t.Errorf("got %+v, want integer 42", toks[1])
	}
}

func TestLexHexOctalBinaryIntegers(t *testing.T) {
	toks, err := Lex([]byte("0x1F 0o17 0b101"))
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	want := []string{"0x1F", "0o17", "0b101"}
	for i, w := range want {
		if toks[i].Kind != tokens.INTEGER || toks[i].Lexeme != w {
			t.Errorf("token %d: got %+v, want integer %q", i, toks[i], w)
		}
	}
}

func TestLexStringAndCharLiterals(t *testing.T) {
	toks, err := Lex([]byte(`"hello" 'c'`))
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if toks[0].Kind != tokens.STRING || toks[0].Lexeme != `"hello"` {
		t.Errorf("got %+v, want string literal", toks[0])
	}
	if toks[1].Kind != tokens.CHAR || toks[1].Lexeme != "'c'" {
		t.Errorf("got %+v, want char literal", toks[1])
	}
}

func TestLexUnterminatedStringIsFatal(t *testing.T) {
	_, err := Lex([]byte(`"hello`))
	if err == nil {
		t.Fatal("expected an unterminated string error")
	}
	lexErr, ok := err.(*Error)
	if !ok || lexErr.Kind != UnterminatedString {
		t.Errorf("got %v, want UnterminatedString", err)
	}
}

func TestLexUnknownTokenIsFatal(t *testing.T) {
	_, err := Lex([]byte("x @ y"))
	if err == nil {
		t.Fatal("expected an unknown-token error")
	}
	lexErr, ok := err.(*Error)
	if !ok || lexErr.Kind != UnknownToken || lexErr.Byte != '@' {
		t.Errorf("got %v, want UnknownToken at '@'", err)
	}
}

func TestLexArrowVsMinus(t *testing.T) {
	toks, err := Lex([]byte("fn f() -> i32 { return 1 - 2; }"))
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	foundArrow := false
	for _, tok := range toks {
		if tok.Kind == tokens.ARROW {
			foundArrow = true
		}
	}
	if !foundArrow {
		t.Errorf("expected an ARROW token, got %v", kinds(toks))
	}
}

func TestLexSizeofIsAKeywordNotAnIdentifierPrefix(t *testing.T) {
	toks, err := Lex([]byte("sizeof sizeofx"))
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	want := []tokens.Kind{tokens.SIZEOF, tokens.IDENTIFIER, tokens.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexTracksLineAndColumn(t *testing.T) {
	toks, err := Lex([]byte("x\n  y"))
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if toks[1].Line != 2 || toks[1].Column != 3 {
		t.Errorf("got line %d col %d, want line 2 col 3", toks[1].Line, toks[1].Column)
	}
}
