package main

import (
	"pip-reinstall/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles argument parsing and execution.
//
// pip-reinstall removes a Python package and installs it again through pip:
//   - Each step runs with the primary invocation name (pip3) first
//   - A failed step is retried exactly once with the secondary name (pip)
//   - Progress lines go to stdout while pip writes straight to the inherited console
//
// Failures never change the exit status unless --strict is given, so the
// tool can be dropped into setup scripts as a best-effort step.
func main() {
	cmd.Execute()
}
