// Package main provides the CLI tool for solving and previewing layouts.
//
// Usage:
//
//	tui solve [--width W --height H] [--format text|yaml] FILE...
//	tui preview [--width W --height H] FILE
//	tui demo [FILE]
//	tui version
//
// FILE is a YAML tree description. Width and height default to the size of
// the terminal, or 80x24 when there is none.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
