package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.ScriptDir != "scripts" {
		t.Errorf("ScriptDir = %q, want scripts", cfg.ScriptDir)
	}
	if cfg.AssetDir != "assets" {
		t.Errorf("AssetDir = %q, want assets", cfg.AssetDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Disabled {
		t.Error("Disabled = true, want false")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load(missing) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animweave.toml")
	src := `
script_dir = "ui/scripts"
log_level = "debug"
disabled = true
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ScriptDir != "ui/scripts" {
		t.Errorf("ScriptDir = %q, want ui/scripts", cfg.ScriptDir)
	}
	if cfg.AssetDir != "assets" {
		t.Errorf("AssetDir = %q, want assets (unset keys keep defaults)", cfg.AssetDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if !cfg.Disabled {
		t.Error("Disabled = false, want true")
	}
}

func TestLoadFrom(t *testing.T) {
	cfg, err := LoadFrom(strings.NewReader(`asset_dir = "cdn"`))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.AssetDir != "cdn" {
		t.Errorf("AssetDir = %q, want cdn", cfg.AssetDir)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte(`script_dir = [broken`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load(malformed) error = nil, want ParseError")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load(malformed) error = %T, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
	if perr.Unwrap() == nil {
		t.Error("ParseError.Unwrap() = nil, want wrapped cause")
	}
}
