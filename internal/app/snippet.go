package app

import (
	"context"
	"strings"

	"rosws/internal/types"
)

// Snippet renders the root and user Dockerfile snippets for a workspace.
func (s Service) Snippet(ctx context.Context, req SnippetRequest) (SnippetResult, error) {
	homeDir, err := s.homeDir(req.AsUser)
	if err != nil {
		return SnippetResult{}, err
	}
	deps, err := s.Dependencies(ctx, DependenciesRequest{Workspace: req.Workspace})
	if err != nil {
		return SnippetResult{}, err
	}
	args := types.SnippetArgs{
		HomeDir:       homeDir,
		Rosdeps:       deps.Result.Dependencies,
		InstallDeps:   req.InstallDeps,
		BuildSource:   req.BuildSource,
		RosMasterURI:  strings.TrimSpace(req.RosMasterURI),
		BuildToolArgs: req.BuildToolArgs,
	}
	snippet, err := s.Snippets.RenderSnippet(args)
	if err != nil {
		return SnippetResult{}, err
	}
	userSnippet, err := s.Snippets.RenderUserSnippet(args)
	if err != nil {
		return SnippetResult{}, err
	}
	return SnippetResult{Args: args, Snippet: snippet, UserSnippet: userSnippet}, nil
}
