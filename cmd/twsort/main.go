// Package main provides the twsort CLI, which sorts Tailwind CSS classes in
// class attributes into canonical order.
//
// Usage:
//
//	twsort [flags] [path...]         Sort classes in files
//	twsort table [--output FILE]     Print the built-in class order as YAML
//	twsort version                   Print version information
//
// Examples:
//
//	twsort --dry-run ./...           List files that would change
//	twsort --write ./src             Sort classes in place
//	twsort index.html                Print sorted content to stdout
//	twsort --check-formatted .       Fail if any file is not sorted
//	cat a.html | twsort --stdin      Sort content read from stdin
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
