package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"pip-reinstall/internal/logger"
)

// ExecRunner runs commands on the local machine. The child inherits the
// configured streams, so its output reaches the console unfiltered.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns an ExecRunner wired to the process's own streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes config and blocks until the process exits or ctx is done.
// exec.Cmd.Run waits for the child and releases its resources on every path.
//
// While the child runs, SIGINT is caught and dropped in this process, the way
// system(3) ignores it: Ctrl-C stops the package manager, which then reports
// a non-zero status and the caller carries on with its fallback. The child
// itself keeps the default disposition, since caught signals reset on exec.
func (r *ExecRunner) Run(ctx context.Context, config CommandConfig) (CommandResult, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, config.Command, config.Args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	logger.Debug("[DEBUG] Running command: %s %s\n", config.Command, strings.Join(config.Args, " "))

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	err := cmd.Run()
	signal.Stop(interrupts)

	result := CommandResult{
		Command:   config.Command,
		Args:      config.Args,
		ExitCode:  exitCode(err),
		Duration:  time.Since(start),
		Timestamp: start,
	}

	logger.Journal.WithFields(logrus.Fields{
		"command":     config.Command,
		"args":        config.Args,
		"exit_code":   result.ExitCode,
		"duration_ms": result.Duration.Milliseconds(),
		"started_at":  result.Timestamp.Format(time.RFC3339Nano),
	}).Info("command finished")

	if err != nil {
		return result, fmt.Errorf("%s exited with status %d: %w", config.Command, result.ExitCode, err)
	}
	return result, nil
}

// exitCode maps the error from exec.Cmd.Run to a process exit status.
// Anything that is not an ordinary exit (killed, not started) reports -1,
// except a missing executable which reports NotFoundExitCode.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return NotFoundExitCode
	}
	return -1
}
