// Package main provides the CLI entrypoint for bulkcopy-generator.
//
// bulkcopy-generator is a Go codegen tool that:
//   - Parses Go packages (AST + go/types) to find structs marked with
//     the //bulkcopy:generate directive
//   - Builds per-type column descriptors from the exported fields
//   - Generates COPY protocol adapters wired to pgx, written back into
//     the declaring packages
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"bulkcopy-generator/internal/cli"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(3)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
