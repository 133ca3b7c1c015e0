package app

import (
	"context"
	"sort"
	"strings"

	"rosws/internal/core"
)

// Files selects the build-context entries of a workspace volume and
// optionally materialises them under OutputDir.
func (s Service) Files(ctx context.Context, req FilesRequest) (FilesResult, error) {
	root, err := s.workspaceVolume(req.Workspace)
	if err != nil {
		return FilesResult{}, err
	}
	selector := core.NewFileSelector(s.FS).WithReadPolicy(req.ReadPolicy)
	selection, err := selector.Select(ctx, root, req.PackagesOnly)
	if err != nil {
		return FilesResult{}, err
	}

	paths := make([]string, 0, len(selection.Files))
	for path := range selection.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir != "" {
		output := s.Outputs(outputDir)
		if err := output.WriteContext(selection.Files); err != nil {
			return FilesResult{}, err
		}
	}
	return FilesResult{
		Workspace:   root,
		Files:       selection.Files,
		Paths:       paths,
		Diagnostics: selection.Diagnostics,
		OutputDir:   outputDir,
	}, nil
}
