// Package runner starts external processes and reports how they exited.
package runner

import (
	"context"
	"time"
)

// NotFoundExitCode is reported when the executable cannot be located,
// matching what a POSIX shell returns for an unknown command.
const NotFoundExitCode = 127

// CommandConfig describes a single external command invocation.
type CommandConfig struct {
	Command string
	Args    []string
}

// CommandResult encapsulates the outcome of a command execution.
type CommandResult struct {
	Command   string
	Args      []string
	ExitCode  int
	Duration  time.Duration
	Timestamp time.Time // when the process was started
}

// Runner runs a command to completion and reports its exit code.
// A non-nil error means the command did not exit with status zero.
type Runner interface {
	Run(ctx context.Context, config CommandConfig) (CommandResult, error)
}
