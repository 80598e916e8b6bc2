package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "upcase.toml")

	data := `
script = "init.lua"
watch = true
write = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if opts.Script != "init.lua" {
		t.Errorf("expected script init.lua, got %q", opts.Script)
	}
	if !opts.Watch || !opts.Write {
		t.Errorf("expected watch and write set: %+v", opts)
	}
}

func TestLoadMissingFile(t *testing.T) {
	opts, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if opts != Default() {
		t.Errorf("expected defaults, got %+v", opts)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "upcase.toml")
	if err := os.WriteFile(path, []byte("script = [broken"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("invalid TOML should fail")
	}
}
