package core

import (
	"strings"

	"rosws/internal/types"
)

// FormatRequirement renders a dependency with its version bounds in the
// Debian control style, e.g. "libfoo (>= 1.2, < 2.0)".
func FormatRequirement(name string, constraints []types.Constraint) string {
	if len(constraints) == 0 {
		return name
	}
	parts := make([]string, 0, len(constraints))
	for _, constraint := range constraints {
		parts = append(parts, constraint.String())
	}
	return name + " (" + strings.Join(parts, ", ") + ")"
}
