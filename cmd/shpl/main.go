package main

import (
	"os"

	"github.com/shpl-lang/shpl/cmd/shpl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
