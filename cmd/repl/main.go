// Package main is the entry point for the repl binary.
package main

import (
	"fmt"
	"os"

	"github.com/footprint-tools/repl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
