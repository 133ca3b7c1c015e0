package app

import "rosws/internal/types"

type FilesRequest struct {
	Workspace    string
	PackagesOnly bool
	ReadPolicy   types.ReadErrorPolicy
	OutputDir    string
}

type FilesResult struct {
	Workspace   string
	Files       types.ContextMap
	Paths       []string
	Diagnostics []types.Diagnostic
	OutputDir   string
}

type DependenciesRequest struct {
	Workspace string
	Workers   int
	OutputDir string
	Format    types.OutputFormat
}

type DependenciesResult struct {
	Workspace    string
	Result       types.DependencyResult
	Requirements []string
	OutputDir    string
}

type SnippetRequest struct {
	Workspace     string
	AsUser        bool
	InstallDeps   bool
	BuildSource   bool
	RosMasterURI  string
	BuildToolArgs []string
}

type SnippetResult struct {
	Args        types.SnippetArgs
	Snippet     string
	UserSnippet string
}

type DockerArgsRequest struct {
	Workspace string
	AsUser    bool
}

type DockerArgsResult struct {
	Args   string
	Volume bool
}
