package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pip-reinstall/internal/config"
	"pip-reinstall/internal/installer"
	"pip-reinstall/internal/logger"
	"pip-reinstall/internal/pkgmanager"
	"pip-reinstall/internal/runner"
	"pip-reinstall/internal/state"
)

// newRunner builds the process runner every package manager shares.
// Tests swap it for a recording fake.
var newRunner = func() runner.Runner { return runner.NewExecRunner() }

// newUninstallCmd builds `pip-reinstall uninstall`, which runs only the
// uninstall step (primary tool, then one fallback) and prints "Finished.".
func newUninstallCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall",
		Short: "Only uninstall the package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, installer.StepUninstall)
		},
	}
}

// newInstallCmd builds `pip-reinstall install`, which runs only the install
// step (primary tool, then one fallback) and prints "Finished.".
func newInstallCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Only install the package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, installer.StepInstall)
		},
	}
}

// resolveConfig layers flags that were set explicitly over the config file,
// which in turn is layered over the defaults.
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("package") {
		spec, err := config.ParsePackageSpec(opts.pkg)
		if err != nil {
			return cfg, err
		}
		cfg.Package = spec
	}
	if flags.Changed("tool") {
		cfg.Tools = opts.tools
	}
	if flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}
	if flags.Changed("strict") {
		cfg.StrictExit = opts.strict
	}
	if flags.Changed("state") {
		cfg.StatePath = opts.statePath
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}

	return cfg, cfg.Validate()
}

// run resolves the configuration, opens the optional journal, binds one
// package manager per configured tool and performs the requested steps.
//
// Exit policy:
//   - configuration errors are returned before anything runs
//   - an expired --timeout is returned, since the run stopped half way
//   - step failures are ignored unless --strict is set
func run(cmd *cobra.Command, opts *options, steps installer.Step) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger.Debug("[DEBUG] Reinstalling %s with %v\n", cfg.Package, cfg.Tools)

	if cfg.LogFile != "" {
		closeJournal, err := logger.OpenJournal(cfg.LogFile)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := closeJournal(); cerr != nil {
				logger.Error("[ERROR] Failed to close log file: %v\n", cerr)
			}
		}()
	}

	// Only --timeout can stop a run early; an interrupt never cancels ctx.
	ctx := cmd.Context()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	r := newRunner()
	managers := make([]pkgmanager.PackageManager, 0, len(cfg.Tools))
	for _, tool := range cfg.Tools {
		managers = append(managers, pkgmanager.NewPip(tool, r))
	}

	result := installer.New(cfg.Package, managers...).Run(ctx, steps)

	if cfg.StatePath != "" {
		recordState(cfg.StatePath, cfg.Package, result)
	}

	if result.Aborted != nil {
		return fmt.Errorf("reinstall of %s aborted: %w", cfg.Package, result.Aborted)
	}
	if err := result.Err(); err != nil {
		if cfg.StrictExit {
			return err
		}
		logger.Debug("[DEBUG] Ignoring final failure: %v\n", err)
	}
	return nil
}

// recordState stores the run outcome. Failures are logged, never fatal.
func recordState(path string, spec config.PackageSpec, result installer.Result) {
	st, err := state.LoadState(path)
	if err != nil {
		logger.Warn("[WARN] Starting a fresh state file: %v\n", err)
		st = &state.State{Packages: make(map[string]state.PackageState)}
	}

	st.Packages[spec.Name] = state.PackageState{
		Spec:      spec.String(),
		Uninstall: stepState(result.Uninstall),
		Install:   stepState(result.Install),
		UpdatedAt: time.Now().UTC(),
	}

	if err := state.SaveState(path, st); err != nil {
		logger.Error("[ERROR] %v\n", err)
		return
	}
	logger.Info("[INFO] Recorded outcome in %s\n", path)
}

// stepState converts a step result into its persisted form; nil stays nil.
func stepState(r *installer.StepResult) *state.StepState {
	if r == nil {
		return nil
	}
	return &state.StepState{Tool: r.Tool, ExitCode: r.ExitCode, FellBack: r.FellBack}
}
