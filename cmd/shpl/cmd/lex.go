package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shpl-lang/shpl/internal/lexer"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex <script-path>",
	Short: "Tokenize a script and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show each token's byte offsets")
}

func lexScript(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	lex := lexer.New(string(content))
	for {
		tok := lex.NextToken()
		if showPos {
			fmt.Printf("%-24s @%d:%d\n", tok.String(), tok.Start, tok.End)
		} else {
			fmt.Println(tok.String())
		}
		if tok.Kind == lexer.EOF {
			break
		}
	}

	if errs := lex.Errors(); len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "lexer errors:\n")
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  offset %d: %s\n", e.Offset, e.Message)
		}
		return fmt.Errorf("lexing failed with %d error(s)", len(errs))
	}
	return nil
}
