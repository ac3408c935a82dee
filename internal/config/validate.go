package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// validateEnum checks that value is one of the allowed values. An empty
// value passes only when allowEmpty is set (empty meaning "detect" or
// "inherit" depending on the field).
func validateEnum(field, value string, valid []string, allowEmpty bool) error {
	if value == "" && allowEmpty {
		return nil
	}
	if !slices.Contains(valid, value) {
		return fmt.Errorf("invalid %s %q: must be one of %s", field, value, strings.Join(valid, ", "))
	}
	return nil
}

// validateUpstreamSpec accepts "" (unset) or "owner/name". GitLab projects
// in nested groups take more segments, "group/subgroup/name".
func validateUpstreamSpec(spec string) error {
	if spec == "" {
		return nil
	}
	parts := strings.Split(spec, "/")
	if len(parts) < 2 || slices.Contains(parts, "") {
		return fmt.Errorf("invalid repo.upstream %q: expected \"owner/name\"", spec)
	}
	return nil
}

func validateRemoteName(field, name string) error {
	if name == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	if strings.ContainsAny(name, " \t/") {
		return fmt.Errorf("invalid %s %q: remote names must not contain whitespace or slashes", field, name)
	}
	return nil
}

// validatePatterns checks filepath.Match syntax so bad globs fail at load
// time, not in the middle of wt-new.
func validatePatterns(field string, patterns []string) error {
	for i, pat := range patterns {
		if _, err := filepath.Match(pat, ""); err != nil {
			return fmt.Errorf("invalid %s[%d] %q: %w", field, i, pat, err)
		}
	}
	return nil
}
