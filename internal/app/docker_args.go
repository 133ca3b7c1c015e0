package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"rosws/internal/shared"
	"rosws/internal/types"
)

// DockerArgs returns the volume argument that mounts a workspace volume at
// <home>/ros_ws/src. Non-volume workspaces produce no arguments.
func (s Service) DockerArgs(ctx context.Context, req DockerArgsRequest) (DockerArgsResult, error) {
	root, err := s.expandWorkspace(req.Workspace)
	if err != nil {
		return DockerArgsResult{}, err
	}
	kind, err := s.Workspace.Classify(root)
	if err != nil {
		return DockerArgsResult{}, err
	}
	if kind != types.WorkspaceKindVolume {
		log.Ctx(ctx).Debug().Str("workspace", root).Str("kind", string(kind)).Msg("workspace is not a volume")
		return DockerArgsResult{}, nil
	}
	homeDir, err := s.homeDir(req.AsUser)
	if err != nil {
		return DockerArgsResult{}, err
	}
	return DockerArgsResult{
		Args:   fmt.Sprintf("-v %s:%s", root, shared.VolumeTarget(homeDir)),
		Volume: true,
	}, nil
}
