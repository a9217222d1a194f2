// Package installer runs the uninstall and install steps against an ordered
// list of package managers and reports what happened.
package installer

import (
	"context"

	"pip-reinstall/internal/config"
	"pip-reinstall/internal/logger"
	"pip-reinstall/internal/pkgmanager"
)

// Step selects which parts of the sequence Run performs.
type Step int

const (
	StepUninstall Step = 1 << iota
	StepInstall

	StepAll = StepUninstall | StepInstall
)

// Installer reinstalls one package through Managers, primary first.
type Installer struct {
	Package  config.PackageSpec
	Managers []pkgmanager.PackageManager
}

// New returns an Installer. At least one manager is required.
func New(spec config.PackageSpec, managers ...pkgmanager.PackageManager) *Installer {
	if len(managers) == 0 {
		panic("installer: no package managers")
	}
	return &Installer{Package: spec, Managers: managers}
}

// Run performs the requested steps in order, uninstall before install, then
// prints "Finished.". Step failures are recorded in the Result and never
// abort the sequence. Only a done ctx (a configured timeout expiring) stops
// the run early: the remaining steps and "Finished." are skipped and
// Result.Aborted is set.
func (in *Installer) Run(ctx context.Context, steps Step) Result {
	var result Result

	if steps&StepUninstall != 0 {
		if aborted(ctx, &result) {
			return result
		}
		r := in.Uninstall(ctx)
		result.Uninstall = &r
	}
	if steps&StepInstall != 0 {
		if aborted(ctx, &result) {
			return result
		}
		r := in.Install(ctx)
		result.Install = &r
	}
	if aborted(ctx, &result) {
		return result
	}

	logger.Status("Finished.")
	return result
}

// aborted records and reports ctx.Err() on result, if any.
func aborted(ctx context.Context, result *Result) bool {
	err := ctx.Err()
	if err == nil {
		return false
	}
	logger.Error("[ERROR] Run aborted: %v\n", err)
	result.Aborted = err
	return true
}

// Reinstall is Run with every step.
func (in *Installer) Reinstall(ctx context.Context) Result {
	return in.Run(ctx, StepAll)
}
