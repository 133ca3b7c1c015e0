package app

import (
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rosws/internal/shared"
	"rosws/internal/types"
)

const unsupportedWorkspaceMsg = "workspace file not currently supported"

// workspaceVolume expands the workspace argument and makes sure it names
// a directory. Descriptor files (vcstool .repos lists) would need a
// network checkout, which is not supported.
func (s Service) workspaceVolume(path string) (string, error) {
	root, err := s.expandWorkspace(path)
	if err != nil {
		return "", err
	}
	kind, err := s.Workspace.Classify(root)
	if err != nil {
		return "", err
	}
	switch kind {
	case types.WorkspaceKindVolume:
		return root, nil
	case types.WorkspaceKindDescriptor:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(unsupportedWorkspaceMsg + ": " + root)
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("workspace root not found: " + root)
	}
}

func (s Service) expandWorkspace(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace path is required")
	}
	expanded, err := shared.ExpandPath(path)
	if err != nil {
		return "", err
	}
	root, err := filepath.Abs(expanded)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to resolve workspace path: " + expanded).
			WithCause(err)
	}
	return root, nil
}

func (s Service) homeDir(asUser bool) (string, error) {
	if !asUser {
		return shared.HomeDir(false, ""), nil
	}
	name, err := s.Users.UserName()
	if err != nil {
		return "", err
	}
	return shared.HomeDir(true, name), nil
}
