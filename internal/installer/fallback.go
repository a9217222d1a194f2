package installer

import (
	"context"

	"pip-reinstall/internal/logger"
	"pip-reinstall/internal/pkgmanager"
)

// noticeFunc builds the status line printed before falling back from one
// package manager to the next.
type noticeFunc func(failed, next pkgmanager.PackageManager) string

// Fallback runs op against each manager in order and stops at the first one
// that succeeds. Every manager is invoked at most once. The returned result
// carries the tool and exit status of the last attempt.
//
// A done ctx (only possible when a timeout was configured) stops the walk
// before the next attempt; the step then records ctx.Err().
func Fallback(ctx context.Context, opName string, managers []pkgmanager.PackageManager,
	notice noticeFunc, op func(context.Context, pkgmanager.PackageManager) error) StepResult {

	result := StepResult{Op: opName}

	for i, pm := range managers {
		if err := ctx.Err(); err != nil {
			logger.Debug("[DEBUG] Not running %s %s: %v\n", pm.Name(), opName, err)
			result.Err = err
			return result
		}
		if i > 0 {
			logger.Status(notice(managers[i-1], pm))
			result.FellBack = true
		}

		err := op(ctx, pm)
		result.Tool = pm.Name()
		result.Attempts++
		result.ExitCode = pkgmanager.ExitCode(err)
		result.Err = err

		if err == nil {
			logger.Debug("[DEBUG] %s %s succeeded\n", pm.Name(), opName)
			return result
		}
		logger.Debug("[DEBUG] %v\n", err)
	}

	return result
}
