package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/peterh/liner"

	"ferrontend/internal/dump"
	"ferrontend/internal/pipeline"
)

var historyFile = filepath.Join(xdg.DataHome, "ferrontend", ".ferrontend_history")

// runRepl reads one declaration or statement at a time and reports
// whether it compiles, reusing the same pipeline a file run does. It
// keeps no state between lines; each line is compiled as a standalone
// program.
func runRepl() {
	line := liner.NewLiner()
	defer func() {
		if err := os.MkdirAll(filepath.Dir(historyFile), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(historyFile); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(historyFile); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	for {
		input, err := line.Prompt("ferrontend> ")
		if err != nil {
			return
		}
		line.AppendHistory(input)

		res := pipeline.Compile(pipeline.Options{Code: input})
		if !reportResult(res) {
			continue
		}
		if res.Scope != nil {
			dump.SymbolTable(os.Stdout, res.Scope)
		}
	}
}
