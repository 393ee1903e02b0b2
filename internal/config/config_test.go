package config

import (
	"os"
	"path/filepath"
	"testing"
)

// Note: xdg.ConfigHome is resolved once at process start, so these tests
// exercise the project-file half of Load directly rather than relying on
// XDG_CONFIG_HOME overrides taking effect mid-test.

func TestLoadReturnsDefaultsWhenNoProjectFileExists(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TabWidth != defaults().TabWidth || cfg.Color != defaults().Color || cfg.FixtureDir != defaults().FixtureDir {
		t.Errorf("Load() = %+v, want the field-by-field defaults %+v", cfg, defaults())
	}
}

func TestLoadFindsProjectFileInAncestorDirectory(t *testing.T) {
	root := t.TempDir()

	if err := os.WriteFile(filepath.Join(root, ProjectFile), []byte("tab_width: 2\ncolor: never\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	cfg, err := Load(nested)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TabWidth != 2 || cfg.Color != "never" {
		t.Errorf("Load() = %+v, want tab_width=2 color=never", cfg)
	}
	if cfg.FixtureDir != "testdata" {
		t.Errorf("FixtureDir = %q, want the default to survive a partial override", cfg.FixtureDir)
	}
}

func TestLoadRejectsMalformedProjectFile(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, ProjectFile), []byte("tab_width: [this is not an int"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatal("Load: want an error for malformed YAML, got nil")
	}
}

func TestFindProjectFileStopsAtFilesystemRoot(t *testing.T) {
	if _, ok := findProjectFile("/"); ok {
		t.Error("findProjectFile(\"/\"): unexpectedly found a project file at the filesystem root")
	}
}

func TestMergeFileIsANoOpWhenFileIsMissing(t *testing.T) {
	cfg := defaults()
	if err := mergeFile(&cfg, filepath.Join(t.TempDir(), "does-not-exist.yaml")); err != nil {
		t.Fatalf("mergeFile on a missing file: %v", err)
	}
	if cfg != defaults() {
		t.Errorf("mergeFile on a missing file changed cfg to %+v", cfg)
	}
}
