// Package pkgmanager binds invocation names of an external package manager
// to the uninstall and install operations the installer needs.
package pkgmanager

import (
	"context"
	"errors"
	"fmt"

	"pip-reinstall/internal/config"
)

// Operation names used in errors and results.
const (
	OpUninstall = "uninstall"
	OpInstall   = "install"
)

// PackageManager is the capability the installer drives. Each method blocks
// until the external tool exits and returns a *StatusError on a non-zero exit.
type PackageManager interface {
	Name() string
	Uninstall(ctx context.Context, name string) error
	Install(ctx context.Context, spec config.PackageSpec) error
}

// StatusError reports that a package manager invocation exited non-zero.
type StatusError struct {
	Tool     string
	Op       string
	ExitCode int
	Err      error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s failed with exit status %d", e.Tool, e.Op, e.ExitCode)
}

func (e *StatusError) Unwrap() error { return e.Err }

// ExitCode extracts the exit status carried by err: 0 for nil, the
// StatusError's code when there is one, -1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.ExitCode
	}
	return -1
}
