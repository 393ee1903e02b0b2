// Package config loads the optional project-level tuning knobs the CLI
// driver reads before running the pipeline: tab width for the caret
// printer, whether color output is forced on/off, and where selftest
// fixtures live.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config is the merged view of project and user settings. Load starts
// from defaults() (tab width 4, color "auto", fixtures in "testdata"), so
// every field of a loaded Config has a usable value even when no file
// sets it.
type Config struct {
	TabWidth   int    `yaml:"tab_width"`
	Color      string `yaml:"color"` // "auto", "always", "never"
	FixtureDir string `yaml:"fixture_dir"`
}

func defaults() Config {
	return Config{TabWidth: 4, Color: "auto", FixtureDir: "testdata"}
}

// ProjectFile is the name of the optional per-repository config file,
// expected next to the entry file or in one of its ancestor directories.
const ProjectFile = ".ferrontend.yaml"

// UserFile is the XDG-resolved path to the user-level override, applied
// before the project file so project settings win on conflict.
func UserFile() string {
	return filepath.Join(xdg.ConfigHome, "ferrontend", "config.yaml")
}

// Load merges defaults, the user-level file (if present), and the
// project file discovered by walking up from startDir (if present).
// Missing files are not an error; a malformed one is.
func Load(startDir string) (Config, error) {
	cfg := defaults()

	if err := mergeFile(&cfg, UserFile()); err != nil {
		return cfg, err
	}

	if path, ok := findProjectFile(startDir); ok {
		if err := mergeFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	buf, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, cfg)
}

// findProjectFile walks up from dir looking for ProjectFile, stopping at
// the filesystem root.
func findProjectFile(dir string) (string, bool) {
	for {
		candidate := filepath.Join(dir, ProjectFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
