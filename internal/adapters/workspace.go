package adapters

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/afero"

	"rosws/internal/ports"
	"rosws/internal/types"
)

// ManifestFileName is the file that marks a directory as a ROS package.
const ManifestFileName = "package.xml"

type WorkspaceAdapter struct {
	fs afero.Fs
}

func NewWorkspaceAdapter(fs afero.Fs) WorkspaceAdapter {
	return WorkspaceAdapter{fs: fs}
}

// FindPackageXML returns every package.xml below root. Unlike the file
// selector it does not skip any directory, so manifests under .git or
// build trees are reported as well.
func (a WorkspaceAdapter) FindPackageXML(root string) ([]string, error) {
	if root == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace root is empty")
	}
	if _, err := a.fs.Stat(root); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("workspace root not found: " + root).
			WithCause(err)
	}
	paths, err := a.collectManifests(root, nil)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan workspace").
			WithCause(err)
	}
	return paths, nil
}

// collectManifests descends into real directories only; a symlinked
// directory below the root is listed but not followed.
func (a WorkspaceAdapter) collectManifests(dir string, paths []string) ([]string, error) {
	entries, err := afero.ReadDir(a.fs, dir)
	if err != nil {
		return paths, err
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			paths, err = a.collectManifests(path, paths)
			if err != nil {
				return paths, err
			}
			continue
		}
		if entry.Name() == ManifestFileName {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// Classify reports whether root is a directory volume, a workspace
// descriptor file, or missing. Symlinks are followed.
func (a WorkspaceAdapter) Classify(root string) (types.WorkspaceKind, error) {
	info, err := a.fs.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.WorkspaceKindMissing, nil
		}
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stat workspace root").
			WithCause(err)
	}
	if info.IsDir() {
		return types.WorkspaceKindVolume, nil
	}
	return types.WorkspaceKindDescriptor, nil
}

var _ ports.WorkspacePort = WorkspaceAdapter{}
