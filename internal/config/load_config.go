package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default returns the configuration used when no file or flag overrides it.
func Default() Config {
	spec, err := ParsePackageSpec(DefaultPackage)
	if err != nil {
		panic("invalid default package spec: " + err.Error())
	}
	return Config{
		Package: spec,
		Tools:   append([]string(nil), DefaultTools...),
	}
}

// LoadConfig starts from Default and applies the YAML file at configFile.
// An empty path skips the file entirely.
func LoadConfig(configFile string) (Config, error) {
	cfg := Default()
	if configFile == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(configFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", configFile, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal %s: %w", configFile, err)
	}

	if fc.Package != "" {
		spec, err := ParsePackageSpec(fc.Package)
		if err != nil {
			return cfg, err
		}
		cfg.Package = spec
	}
	if len(fc.Tools) > 0 {
		cfg.Tools = fc.Tools
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return cfg, fmt.Errorf("invalid timeout %q: %w", fc.Timeout, err)
		}
		cfg.Timeout = d
	}
	if fc.Strict != nil {
		cfg.StrictExit = *fc.Strict
	}
	cfg.StatePath = fc.StateFile
	cfg.LogFile = fc.LogFile

	return cfg, cfg.Validate()
}

// Validate checks the invariants the installer relies on.
func (c Config) Validate() error {
	if c.Package.Name == "" {
		return ErrEmptyPackageName
	}
	if len(c.Tools) == 0 {
		return fmt.Errorf("at least one package manager tool is required")
	}
	for i, t := range c.Tools {
		if t == "" {
			return fmt.Errorf("tool %d has an empty name", i)
		}
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}
