package config

import (
	"errors"
	"fmt"
	"strings"
)

// operators are the PEP 440 comparison operators. The earliest match wins and
// ties go to the longest, so "===" is not read as "==" and ">=" not as ">".
var operators = []string{"===", ">=", "<=", "==", "!=", "~=", ">", "<"}

// ErrEmptyPackageName is returned when a spec has no package name.
var ErrEmptyPackageName = errors.New("package name is empty")

// ParsePackageSpec splits a requirement such as "ttkbootstrap>=1.10.1" into
// its name, operator and version. A bare name is accepted without a constraint.
//
// Only a subset of PEP 508 is understood: one name with at most one version
// clause. Multiple clauses ("a>=1,<2"), extras ("a[x]"), URLs ("a @ https://...")
// and environment markers ("a>=1; python_version<'3.9'") are rejected.
func ParsePackageSpec(s string) (PackageSpec, error) {
	s = strings.TrimSpace(s)

	if strings.Contains(s, ";") {
		return PackageSpec{}, fmt.Errorf("invalid package spec %q: environment markers are not supported", s)
	}
	if strings.ContainsAny(s, "[]@,") {
		return PackageSpec{}, fmt.Errorf("invalid package spec %q: only a name and one version clause are supported", s)
	}

	idx, op := -1, ""
	for _, candidate := range operators {
		if i := strings.Index(s, candidate); i >= 0 && (idx < 0 || i < idx) {
			idx, op = i, candidate
		}
	}

	if idx < 0 {
		if s == "" {
			return PackageSpec{}, ErrEmptyPackageName
		}
		if strings.ContainsAny(s, " \t") {
			return PackageSpec{}, fmt.Errorf("invalid package spec %q: whitespace in name", s)
		}
		return PackageSpec{Name: s}, nil
	}

	name := strings.TrimSpace(s[:idx])
	version := strings.TrimSpace(s[idx+len(op):])
	if name == "" {
		return PackageSpec{}, fmt.Errorf("invalid package spec %q: %w", s, ErrEmptyPackageName)
	}
	if version == "" {
		return PackageSpec{}, fmt.Errorf("invalid package spec %q: missing version after %s", s, op)
	}
	if strings.ContainsAny(name+version, " \t<>=!~") {
		return PackageSpec{}, fmt.Errorf("invalid package spec %q", s)
	}

	return PackageSpec{Name: name, Operator: op, Version: version}, nil
}
