package main

import (
	"fmt"
	"os"

	"github.com/rocketscienceinc/tictactoe-kata/internal/cli"
)

// main - is the entry point of the application. Configuration, logging and the
// commands themselves are set up by the cli package.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
