package state

import (
	"encoding/json" // For JSON encoding and decoding of the state file
	"fmt"
	"os"
	"time"
)

// StepState records how one step of a run ended.
type StepState struct {
	Tool     string `json:"tool"`      // Invocation name of the last tool tried
	ExitCode int    `json:"exit_code"` // Exit status of that last attempt
	FellBack bool   `json:"fell_back"` // True if the primary tool failed
}

// PackageState records the most recent run for one package.
type PackageState struct {
	Spec      string     `json:"spec"`                // Requirement handed to install, e.g. ttkbootstrap>=1.10.1
	Uninstall *StepState `json:"uninstall,omitempty"` // Absent when the step was not run
	Install   *StepState `json:"install,omitempty"`   // Absent when the step was not run
	UpdatedAt time.Time  `json:"updated_at"`
}

// State holds the outcome of previous runs keyed by package name.
type State struct {
	Packages map[string]PackageState `json:"packages"`
}

// LoadState loads the saved state from a JSON file at the given path.
// A missing file yields an empty state; a corrupt one is an error.
func LoadState(path string) (*State, error) {
	st := &State{Packages: make(map[string]PackageState)}

	file, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return st, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file %s: %w", path, err)
	}

	if err := json.Unmarshal(file, st); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", path, err)
	}
	if st.Packages == nil {
		st.Packages = make(map[string]PackageState)
	}
	return st, nil
}

// SaveState writes the given State to path as indented JSON.
func SaveState(path string, st *State) error {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := os.WriteFile(path, file, 0644); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", path, err)
	}
	return nil
}
