// Command metro2audit runs the Metro-2 / FCRA compliance audit over a parsed
// consumer credit report payload.
package main

import (
	"fmt"
	"os"
)

const (
	exitOK         = 0 // Audit ran and found no violations
	exitViolations = 1 // Audit ran and found violations
	exitError      = 2 // Error occurred (file not found, bad JSON, etc.)
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		usage()
		return exitError
	}

	switch os.Args[1] {
	case "audit":
		return runAudit(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", os.Args[1])
		usage()
		return exitError
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: metro2audit <command> [options]

Commands:
  audit    Audit a parsed credit report payload against Metro-2 / FCRA rules

Use "metro2audit <command> --help" for more information about a command.
`)
}
