package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("a missing config file should not be an error, got: %v", err)
	}
	if !reflect.DeepEqual(cfg, FileConfig{}) {
		t.Errorf("expected zero configuration, got %+v", cfg)
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	content := `ignore:
  dirs:
    - vendor
    - target
  files:
    - secrets.env
  extensions:
    - .tmp
structure: full
decode: replace
`
	if err := os.WriteFile(filepath.Join(dir, ".repo2md.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if want := []string{"vendor", "target"}; !reflect.DeepEqual(cfg.Ignore.Dirs, want) {
		t.Errorf("Ignore.Dirs = %v, want %v", cfg.Ignore.Dirs, want)
	}
	if want := []string{"secrets.env"}; !reflect.DeepEqual(cfg.Ignore.Files, want) {
		t.Errorf("Ignore.Files = %v, want %v", cfg.Ignore.Files, want)
	}
	if want := []string{".tmp"}; !reflect.DeepEqual(cfg.Ignore.Extensions, want) {
		t.Errorf("Ignore.Extensions = %v, want %v", cfg.Ignore.Extensions, want)
	}
	if cfg.Structure != "full" {
		t.Errorf("Structure = %q, want %q", cfg.Structure, "full")
	}
	if cfg.Decode != "replace" {
		t.Errorf("Decode = %q, want %q", cfg.Decode, "replace")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".repo2md.yaml"), []byte("ignore: ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("expected an error for malformed yaml")
	}
}
