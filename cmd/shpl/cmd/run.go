package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shpl-lang/shpl/internal/builtins"
	"github.com/shpl-lang/shpl/internal/config"
	"github.com/shpl-lang/shpl/internal/diagnostics"
	"github.com/shpl-lang/shpl/internal/eval"
	"github.com/shpl-lang/shpl/internal/parser"
	"github.com/shpl-lang/shpl/internal/runtime"
	"github.com/shpl-lang/shpl/internal/scripterr"
	"github.com/shpl-lang/shpl/internal/typecheck"
)

var (
	jsonErrors   bool
	maxCallDepth int
	configPath   string
)

var runCmd = &cobra.Command{
	Use:   "run <script-path>",
	Short: "Lex, parse, type-check and execute a script",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shpl: %v\n", err)
		os.Exit(100)
	}
	source := string(content)

	path := configPath
	explicit := configPath != ""
	if !explicit {
		path = config.DefaultPath
	}
	cfg, err := config.LoadOrDefault(path, explicit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shpl: %v\n", err)
		os.Exit(100)
	}
	if jsonErrors {
		cfg.JSONErrors = true
	}
	depth := cfg.MaxCallDepth
	if maxCallDepth > 0 {
		depth = maxCallDepth
	}
	if depth <= 0 {
		depth = runtime.DefaultMaxCallStackDepth
	}

	root, err := parser.Parse(source)
	if err != nil {
		fail(err, source, filename, cfg.JSONErrors)
	}

	if err := typecheck.Check(root); err != nil {
		fail(err, source, filename, cfg.JSONErrors)
	}

	env := builtins.NewEnv(os.Stdin, os.Stdout, os.Stderr)
	evaluator, err := eval.New(root, depth, env)
	if err != nil {
		fail(err, source, filename, cfg.JSONErrors)
	}

	code, err := evaluator.Run(root)
	if err != nil {
		fail(err, source, filename, cfg.JSONErrors)
	}
	os.Exit(int(code))
	return nil
}

// fail reports err in the format the CLI was configured for and
// terminates the process with spec §6.1's corresponding exit code. It
// never returns.
func fail(err error, source, filename string, asJSON bool) {
	if asJSON {
		doc, jerr := diagnostics.RenderJSON(err, source, filename)
		if jerr != nil {
			fmt.Fprintf(os.Stderr, "shpl: %v\n", jerr)
			os.Exit(100)
		}
		fmt.Fprintln(os.Stderr, string(doc))
	} else {
		fmt.Fprintln(os.Stderr, scripterr.Render(err, source, filename))
	}
	os.Exit(scripterr.ExitCode(err))
}
