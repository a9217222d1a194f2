package installer

import (
	"context"
	"fmt"

	"pip-reinstall/internal/logger"
	"pip-reinstall/internal/pkgmanager"
)

// Install installs the package spec with the primary manager, falling back
// to the next one when it fails.
func (in *Installer) Install(ctx context.Context) StepResult {
	logger.Status(fmt.Sprintf("Installing %s...", in.Package.Display()))

	return Fallback(ctx, pkgmanager.OpInstall, in.Managers,
		func(failed, next pkgmanager.PackageManager) string {
			return fmt.Sprintf("%s install failed. Trying %s...", failed.Name(), next.Name())
		},
		func(ctx context.Context, pm pkgmanager.PackageManager) error {
			return pm.Install(ctx, in.Package)
		})
}
