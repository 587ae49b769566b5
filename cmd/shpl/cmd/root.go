package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "shpl [script-path]",
	Short: "shpl is a shell pipeline scripting language interpreter",
	Long: `shpl runs scripts that mix ordinary statements with shell pipeline
expressions: commands, redirects, and captured stdout/stderr/exit codes,
evaluated by a statically type-checked, tree-walking interpreter.

Invoking shpl with a single script path is shorthand for "shpl run
<script-path>".`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) == 0 {
			return c.Help()
		}
		return runScript(c, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&jsonErrors, "json-errors", false, "emit errors as a single JSON object instead of caret-underline text")
	rootCmd.PersistentFlags().IntVar(&maxCallDepth, "max-call-depth", 0, "override the call-stack depth cap (0: use config/default)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML configuration file (default ./.shplrc.yaml if present)")
}
