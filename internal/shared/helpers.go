// Package shared provides path helpers used by the file selector, the
// dependency resolver and the CLI glue.
package shared

import (
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/mitchellh/go-homedir"

	"rosws/internal/types"
)

// ExpandPath expands a leading "~" to the invoking user's home directory
// and cleans the result. Empty input stays empty.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(trimmed)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to expand workspace path").
			WithCause(err)
	}
	return filepath.Clean(expanded), nil
}

// VirtualPath maps a source path below root to its location inside the
// build context. The mapping is injective for a fixed root because it only
// swaps the root prefix. ok is false when path does not lie below root.
func VirtualPath(root string, path string) (string, bool) {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return types.VirtualRoot + string(filepath.Separator) + rel, true
}

// HomeDir returns the home directory used inside the container.
func HomeDir(asUser bool, username string) string {
	if asUser {
		return filepath.Join(string(filepath.Separator), "home", username)
	}
	return filepath.Join(string(filepath.Separator), "root")
}

// VolumeTarget is the in-container mount point of the workspace sources.
func VolumeTarget(homeDir string) string {
	return filepath.Join(homeDir, "ros_ws", "src")
}
