package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ferrontend/colors"
	"ferrontend/internal/config"
	"ferrontend/internal/diagnostics"
	"ferrontend/internal/dump"
	"ferrontend/internal/pipeline"
	"ferrontend/internal/selftest"
	"ferrontend/internal/source"
)

const version = "0.1.0"

func main() {
	var (
		showTokens  = flag.Bool("tokens", false, "print the token stream")
		showAST     = flag.Bool("ast", false, "print the parsed AST")
		showSymbols = flag.Bool("sym-table", false, "print the global symbol table")
		showTime    = flag.Bool("time", false, "print how long compilation took")
		runTests    = flag.Bool("test", false, "run the selftest fixtures under --fixtures and exit")
		repl        = flag.Bool("repl", false, "start an interactive prompt instead of compiling a file")
		fixtureDir  = flag.String("fixtures", "", "directory of selftest fixture YAML files (default: config's fixture_dir, else testdata)")
		colorMode   = flag.String("color", "", "color output: auto, always, or never (default: config's color, else auto)")
		debug       = flag.Bool("debug", false, "print pipeline phase transitions")
		showVersion = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("ferrontend %s\n", version)
		return
	}

	args := flag.Args()
	cfg, err := config.Load(startDir(args))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading config: %v\n", err)
		os.Exit(1)
	}
	applyConfig(cfg, *colorMode)
	if *fixtureDir == "" {
		*fixtureDir = cfg.FixtureDir
	}

	if *runTests {
		runSelftest(*fixtureDir)
		return
	}

	if *repl {
		runRepl()
		return
	}

	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: ferrontend [options] <file>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if !runFile(args[0], fileOpts{tokens: *showTokens, ast: *showAST, symbols: *showSymbols, elapsed: *showTime, debug: *debug}) {
		os.Exit(1)
	}
}

// startDir picks the directory config.Load walks up from: the entry
// file's directory when one was given, the working directory otherwise
// (--repl and --test have no entry file).
func startDir(args []string) string {
	if len(args) > 0 {
		return filepath.Dir(args[0])
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

// applyConfig resolves the caret printer's tab width and the color mode
// from cfg, with an explicit --color flag (flagColor) taking precedence
// over the config file's own "color" setting.
func applyConfig(cfg config.Config, flagColor string) {
	diagnostics.TabWidth = cfg.TabWidth

	mode := flagColor
	if mode == "" {
		mode = cfg.Color
	}
	switch mode {
	case "always":
		colors.Enabled = true
	case "never":
		colors.Enabled = false
	default: // "auto"
		colors.Enabled = isTerminal(os.Stdout)
	}
}

// isTerminal reports whether f looks like an interactive terminal rather
// than a pipe or redirected file, so "auto" color mode can disable ANSI
// escapes for piped or CI output (spec.md §2) without a dedicated TTY
// library — os.ModeCharDevice is stdlib's own signal for this.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

type fileOpts struct {
	tokens  bool
	ast     bool
	symbols bool
	elapsed bool
	debug   bool
}

// runFile compiles one file and prints whichever debug views were
// requested. It returns false when compilation failed, so main can set
// the process exit code.
func runFile(path string, opts fileOpts) bool {
	started := time.Now()
	res := pipeline.Compile(pipeline.Options{EntryFile: path, Debug: opts.debug})

	if opts.tokens && res.Tokens != nil {
		dump.Tokens(os.Stdout, res.Filename, res.Tokens)
	}
	if opts.ast && res.Program != nil {
		dump.AST(os.Stdout, res.Program)
	}
	if opts.symbols && res.Scope != nil {
		dump.SymbolTable(os.Stdout, res.Scope)
	}
	if opts.elapsed {
		fmt.Fprintf(os.Stderr, "compiled in %s\n", time.Since(started))
	}

	return reportResult(res)
}

// reportResult renders whichever failure the run produced and returns
// whether compilation succeeded.
func reportResult(res pipeline.Result) bool {
	if res.Success {
		return true
	}
	if res.Diagnostic != nil {
		printDiagnostic(res.Diagnostic)
		return false
	}
	if res.Err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", res.Err)
	}
	return false
}

// printDiagnostic renders d against its source line, when there's a real
// file to read one from. The REPL compiles in-memory source under the
// synthetic filename "<memory>", which has nothing on disk to read.
func printDiagnostic(d *diagnostics.ParseDiagnostic) {
	var line string
	if d.Filename != "<memory>" {
		line, _ = source.Line(d.Filename, d.Line)
	}
	fmt.Fprint(os.Stderr, d.Render(line))
}

func runSelftest(fixtureDir string) {
	cases, err := selftest.LoadCases(fixtureDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	outcomes := selftest.Run(cases)
	failures := 0
	for _, o := range outcomes {
		status := "PASS"
		if !o.Passed {
			status = "FAIL"
			failures++
		}
		fmt.Printf("[%s] %s\n", status, o.Case.Label)
		if !o.Passed {
			fmt.Printf("       %s\n", o.Detail)
		}
	}
	fmt.Printf("%d/%d passed\n", len(outcomes)-failures, len(outcomes))
	if failures > 0 {
		os.Exit(1)
	}
}
