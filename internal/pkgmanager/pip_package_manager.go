package pkgmanager

import (
	"context"

	"pip-reinstall/internal/config"
	"pip-reinstall/internal/runner"
)

// PipPackageManager drives pip through one invocation name, e.g. "pip3".
type PipPackageManager struct {
	Command string
	Runner  runner.Runner
}

// NewPip returns a pip binding for the given invocation name.
func NewPip(command string, r runner.Runner) *PipPackageManager {
	return &PipPackageManager{Command: command, Runner: r}
}

func (p *PipPackageManager) Name() string { return p.Command }

// Uninstall runs `<tool> uninstall -y <name>`.
func (p *PipPackageManager) Uninstall(ctx context.Context, name string) error {
	return p.run(ctx, OpUninstall, "uninstall", "-y", name)
}

// Install runs `<tool> install <spec>`. The spec travels as a single argv
// element, so the constraint needs no shell quoting.
func (p *PipPackageManager) Install(ctx context.Context, spec config.PackageSpec) error {
	return p.run(ctx, OpInstall, "install", spec.String())
}

func (p *PipPackageManager) run(ctx context.Context, op string, args ...string) error {
	result, err := p.Runner.Run(ctx, runner.CommandConfig{
		Command: p.Command,
		Args:    args,
	})
	if err != nil {
		return &StatusError{Tool: p.Command, Op: op, ExitCode: result.ExitCode, Err: err}
	}
	return nil
}
