package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shplrc.yaml")
	if err := os.WriteFile(path, []byte("maxCallDepth: 50\njsonErrors: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxCallDepth != 50 {
		t.Errorf("MaxCallDepth = %d, want 50", cfg.MaxCallDepth)
	}
	if !cfg.JSONErrors {
		t.Error("JSONErrors = false, want true")
	}
	if !cfg.Color {
		t.Error("Color should keep its default (true) when the file doesn't set it")
	}
}

func TestLoadOrDefaultMissingImplicitFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadOrDefault(filepath.Join(dir, "absent.yaml"), false)
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadOrDefaultMissingExplicitFile(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadOrDefault(filepath.Join(dir, "absent.yaml"), true)
	if err == nil {
		t.Fatal("expected an error for a missing, explicitly requested config file")
	}
}
