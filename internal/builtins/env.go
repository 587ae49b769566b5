package builtins

import (
	"os"

	"github.com/shpl-lang/shpl/internal/value"
)

// envVar implements the SPEC_FULL.md supplement `env(name)`, grounded on
// SPEC_FULL.md §4.4's "scripts that shell out need to read environment
// configuration without spawning `printenv`".
func envVar(name value.Value) (value.Value, error) {
	return value.String{Text: os.Getenv(name.(value.String).Text)}, nil
}

// cwd implements the supplement `cwd()`.
func cwd() (value.Value, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return value.String{Text: dir}, nil
}
