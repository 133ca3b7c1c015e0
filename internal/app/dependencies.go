package app

import (
	"context"
	"strings"

	"rosws/internal/core"
)

// Dependencies resolves the external dependency closure of a workspace
// volume and optionally writes it under OutputDir.
func (s Service) Dependencies(ctx context.Context, req DependenciesRequest) (DependenciesResult, error) {
	root, err := s.workspaceVolume(req.Workspace)
	if err != nil {
		return DependenciesResult{}, err
	}
	resolver := core.NewDependencyResolver(s.Workspace, s.PackageXML).WithWorkers(req.Workers)
	result, err := resolver.Resolve(ctx, root)
	if err != nil {
		return DependenciesResult{}, err
	}

	requirements := make([]string, 0, len(result.Dependencies))
	for _, name := range result.Dependencies {
		requirements = append(requirements, core.FormatRequirement(name, result.Constraints[name]))
	}

	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir != "" {
		output := s.Outputs(outputDir)
		if err := output.WriteDependencies(root, result, req.Format); err != nil {
			return DependenciesResult{}, err
		}
	}
	return DependenciesResult{
		Workspace:    root,
		Result:       result,
		Requirements: requirements,
		OutputDir:    outputDir,
	}, nil
}
