package installer

import "errors"

// StepResult records the outcome of one step after any fallback.
// ExitCode always reflects the most recent command run for the step.
type StepResult struct {
	Op       string // pkgmanager.OpUninstall or pkgmanager.OpInstall
	Tool     string // Invocation name of the last tool tried
	ExitCode int    // Exit status of that last attempt
	Attempts int    // Number of tools actually invoked
	FellBack bool   // True once the primary tool failed and another was tried
	Err      error  // Error of the last attempt, nil on success
}

// Failed reports whether the last attempt of the step failed.
func (s StepResult) Failed() bool { return s.Err != nil }

// Result is the outcome of a run.
type Result struct {
	Uninstall *StepResult // nil when the step was not requested or not reached
	Install   *StepResult // nil when the step was not requested or not reached
	Aborted   error       // ctx.Err() when the run stopped early, nil otherwise
}

// Err joins the final errors of every step that failed, or returns nil.
// The default policy ignores it; --strict turns it into a non-zero exit.
func (r Result) Err() error {
	var errs []error
	for _, s := range []*StepResult{r.Uninstall, r.Install} {
		if s != nil && s.Err != nil {
			errs = append(errs, s.Err)
		}
	}
	return errors.Join(errs...)
}
