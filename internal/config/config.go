// Package config loads the CLI's optional YAML configuration file (spec
// SPEC_FULL.md §6.4). It is pure CLI ergonomics — it never affects
// script-visible behavior, only how the driver invokes the core.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// DefaultPath is where `shpl run` looks for a configuration file when
// --config is not given.
const DefaultPath = ".shplrc.yaml"

// Config mirrors SPEC_FULL.md §6.4's schema. MaxCallDepth and JSONErrors
// have CLI flag equivalents (--max-call-depth, --json-errors) that
// override values loaded from file; Color has no flag and is not read by
// the CLI.
type Config struct {
	MaxCallDepth int  `yaml:"maxCallDepth"`
	JSONErrors   bool `yaml:"jsonErrors"`
	Color        bool `yaml:"color"`
}

// Default returns the configuration used when no file is present and no
// flags override it.
func Default() Config {
	return Config{MaxCallDepth: 100, JSONErrors: false, Color: true}
}

// Load reads and parses the YAML file at path, starting from Default()
// so a partial file only overrides the fields it sets. A missing file is
// returned as the read error; LoadOrDefault is what treats a missing
// file at the implicit default path as no error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path if it was explicitly requested (explicit
// true), or silently falls back to Default() when path is the implicit
// DefaultPath and the file does not exist.
func LoadOrDefault(path string, explicit bool) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, err
	}
	return cfg, nil
}
