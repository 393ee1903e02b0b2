package pipeline

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nalgeon/be"

	"ferrontend/internal/tokens"
)

func TestCompileSucceedsOnWellFormedSource(t *testing.T) {
	res := Compile(Options{Code: "x: i32 = 10;"})
	if !res.Success {
		t.Fatalf("Compile: want success, got Diagnostic=%v Err=%v", res.Diagnostic, res.Err)
	}
	if res.Scope.Variables.Len() != 1 {
		t.Errorf("Variables.Len() = %d, want 1", res.Scope.Variables.Len())
	}
}

func TestCompileStopsAtFirstParseDiagnostic(t *testing.T) {
	res := Compile(Options{Code: "x = 10;"})
	if res.Success {
		t.Fatal("Compile: want failure for a top-level assignment")
	}
	if res.Diagnostic == nil {
		t.Fatal("Compile: want a parse diagnostic, got nil")
	}
	if res.Program != nil {
		t.Error("Program should be nil when parsing fails")
	}
}

func TestCompileReportsLexErrorSeparatelyFromParseDiagnostic(t *testing.T) {
	res := Compile(Options{Code: "x: i32 = `;"})
	if res.Success {
		t.Fatal("Compile: want failure for an unknown token")
	}
	if res.Err == nil {
		t.Fatal("Compile: want a lex Err, got nil")
	}
	if res.Diagnostic != nil {
		t.Error("Diagnostic should be nil on a lexer-level failure")
	}
}

func TestCompileFailsOnDuplicateTopLevelName(t *testing.T) {
	res := Compile(Options{Code: "fn f() -> i32 {} fn f() -> i32 {}"})
	if res.Success {
		t.Fatal("Compile: want failure for duplicate top-level function name")
	}
	if res.Err == nil {
		t.Fatal("Compile: want a bind Err for the duplicate name, got nil")
	}
	if res.Program == nil {
		t.Error("Program should still be populated; the failure is at the bind stage")
	}
}

func TestCompileReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sample.fe"
	if err := os.WriteFile(path, []byte("y: bool = true;"), 0o644); err != nil {
		t.Fatalf("os.WriteFile: %v", err)
	}

	res := Compile(Options{EntryFile: path})
	if !res.Success {
		t.Fatalf("Compile: want success, got Diagnostic=%v Err=%v", res.Diagnostic, res.Err)
	}
	if res.Filename != path {
		t.Errorf("Filename = %q, want %q", res.Filename, path)
	}
}

func TestCompileReportsLoadErrorForMissingFile(t *testing.T) {
	res := Compile(Options{EntryFile: "/nonexistent/path/does-not-exist.fe"})
	be.True(t, res.Err != nil)
}

func TestCompileProducesExpectedTokenKindSequence(t *testing.T) {
	res := Compile(Options{Code: "x: i32 = 1 + 2;"})
	if !res.Success {
		t.Fatalf("Compile: want success, got Diagnostic=%v Err=%v", res.Diagnostic, res.Err)
	}

	var got []tokens.Kind
	for _, tok := range res.Tokens {
		got = append(got, tok.Kind)
	}
	want := []tokens.Kind{
		tokens.IDENTIFIER, tokens.COLON, tokens.I32, tokens.ASSIGN,
		tokens.INTEGER, tokens.PLUS, tokens.INTEGER, tokens.SEMI, tokens.EOF,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token kind sequence mismatch (-want +got):\n%s", diff)
	}
}
