package config

import (
	"fmt"
	"strings"
)

// ConfigError collects everything wrong with a config file in one
// pass: ${VAR} references that resolved to nothing plus whatever
// Validate found, so the operator fixes the file once.
type ConfigError struct {
	Path    string   // file the problems were found in
	Missing []string // ${VAR} names with no value in the environment
	Errors  []string // messages from Validate
}

func (e *ConfigError) Error() string {
	if len(e.Missing) == 0 && len(e.Errors) == 0 {
		return ""
	}

	var parts []string

	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing environment variables: %s", strings.Join(e.Missing, ", ")))
	}

	if len(e.Errors) > 0 {
		parts = append(parts, "validation failed:")
		for _, err := range e.Errors {
			parts = append(parts, fmt.Sprintf("  - %s", err))
		}
	}

	return strings.Join(parts, "\n")
}

// HasErrors reports whether anything was collected.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}
