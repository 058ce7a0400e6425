// Package config loads animweave configuration from TOML.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds host-level settings for the animation lifecycle.
type Config struct {
	// ScriptDir is where component script modules live.
	ScriptDir string `toml:"script_dir"`

	// AssetDir is where plugin assets are read from.
	AssetDir string `toml:"asset_dir"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// Disabled skips animation setup entirely; components render without
	// ever touching the runtime.
	Disabled bool `toml:"disabled"`
}

// Default returns the conventional configuration.
func Default() Config {
	return Config{
		ScriptDir: "scripts",
		AssetDir:  "assets",
		LogLevel:  "info",
	}
}

// Load reads configuration from a TOML file, layered over Default.
// A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadFrom reads configuration from a reader, layered over Default.
func LoadFrom(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return parse("<reader>", data)
}

func parse(source string, data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return cfg, nil
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
