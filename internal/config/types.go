package config

import "time"

// Default values used when neither a config file nor a flag says otherwise.
const (
	DefaultPackage = "ttkbootstrap>=1.10.1"
)

// DefaultTools lists the package manager invocation names in fallback order.
var DefaultTools = []string{"pip3", "pip"}

// PackageSpec identifies a package and an optional version constraint.
// - Name: package name as the package manager knows it (e.g., ttkbootstrap).
// - Operator: comparison operator (e.g., ">="), empty when unconstrained.
// - Version: version the operator applies to (e.g., "1.10.1").
type PackageSpec struct {
	Name     string
	Operator string
	Version  string
}

// String renders the spec the way it is handed to the install subcommand,
// e.g. "ttkbootstrap>=1.10.1".
func (p PackageSpec) String() string {
	return p.Name + p.Operator + p.Version
}

// Display renders the spec for status messages, e.g. "ttkbootstrap >= 1.10.1".
func (p PackageSpec) Display() string {
	if p.Operator == "" {
		return p.Name
	}
	return p.Name + " " + p.Operator + " " + p.Version
}

// Config is the resolved runtime configuration.
// - Package: what to uninstall and reinstall.
// - Tools: package manager invocation names, primary first.
// - Timeout: upper bound for the whole run, zero for none.
// - StrictExit: exit non-zero when a step's final attempt failed.
// - StatePath: where to record the run outcome, empty to skip.
// - LogFile: where to append the JSON run journal, empty to skip.
type Config struct {
	Package    PackageSpec
	Tools      []string
	Timeout    time.Duration
	StrictExit bool
	StatePath  string
	LogFile    string
}

// fileConfig mirrors the YAML layout of the optional config file.
type fileConfig struct {
	Package   string   `yaml:"package"`
	Tools     []string `yaml:"tools"`
	Timeout   string   `yaml:"timeout"`
	Strict    *bool    `yaml:"strict"`
	StateFile string   `yaml:"state_file"`
	LogFile   string   `yaml:"log_file"`
}
