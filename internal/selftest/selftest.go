// Package selftest runs the YAML-described fixtures under a testdata
// directory through the pipeline and reports pass/fail per case,
// backing the CLI's --test flag.
package selftest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ferrontend/internal/pipeline"
)

// Case is one fixture: a labeled source snippet and what running it
// through the pipeline should produce. Disabled cases are skipped.
type Case struct {
	Label   string `yaml:"label"`
	Enable  bool   `yaml:"enable"`
	Input   string `yaml:"input"`
	WantErr bool   `yaml:"want_err"`
}

// LoadCases reads every *.yaml file directly under dir and returns the
// enabled cases across all of them.
func LoadCases(dir string) ([]Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var all []Case
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		buf, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		var cases []Case
		if err := yaml.Unmarshal(buf, &cases); err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		for _, c := range cases {
			if c.Enable {
				all = append(all, c)
			}
		}
	}
	return all, nil
}

// Outcome is one case's result after running it through the pipeline.
type Outcome struct {
	Case   Case
	Passed bool
	Detail string
}

// Run executes every case and reports whether its pass/fail status
// matches WantErr.
func Run(cases []Case) []Outcome {
	outcomes := make([]Outcome, 0, len(cases))
	for _, c := range cases {
		res := pipeline.Compile(pipeline.Options{Code: c.Input})
		failed := !res.Success

		switch {
		case failed == c.WantErr:
			outcomes = append(outcomes, Outcome{Case: c, Passed: true})
		case failed:
			outcomes = append(outcomes, Outcome{Case: c, Passed: false, Detail: "expected success but compilation failed"})
		default:
			outcomes = append(outcomes, Outcome{Case: c, Passed: false, Detail: "expected failure but compilation succeeded"})
		}
	}
	return outcomes
}
