package installer

import (
	"context"
	"fmt"

	"pip-reinstall/internal/logger"
	"pip-reinstall/internal/pkgmanager"
)

// Uninstall removes the package with the primary manager, falling back to
// the next one when it fails. Its outcome never stops the install step.
func (in *Installer) Uninstall(ctx context.Context) StepResult {
	logger.Status(fmt.Sprintf("Trying %s first...", in.Managers[0].Name()))

	return Fallback(ctx, pkgmanager.OpUninstall, in.Managers,
		func(failed, next pkgmanager.PackageManager) string {
			return fmt.Sprintf("%s not found. Trying %s...", failed.Name(), next.Name())
		},
		func(ctx context.Context, pm pkgmanager.PackageManager) error {
			return pm.Uninstall(ctx, in.Package.Name)
		})
}
