// pws3vault is a small CLI over the vault package: create, open, and dump
// Password Safe V3 containers from the command line.
package main

import (
	"fmt"
	"os"

	"pws3vault/internal/cli"
)

const version = "v1.00"

func main() {
	if !cli.Execute(version) {
		fmt.Fprintf(os.Stderr, "pws3vault %s\n\n", version)
		fmt.Fprintln(os.Stderr, "Usage: pws3vault <command> [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  create    Create a new, empty vault")
		fmt.Fprintln(os.Stderr, "  open      Open a vault and report its record count")
		fmt.Fprintln(os.Stderr, "  dump      Print header metadata and record titles")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Run 'pws3vault <command> --help' for more information.")
		os.Exit(0)
	}
}
