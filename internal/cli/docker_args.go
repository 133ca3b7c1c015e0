package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rosws/internal/app"
)

type dockerArgsOptions struct {
	Workspace string
	AsUser    bool
}

func newDockerArgsCommand() *cobra.Command {
	opts := dockerArgsOptions{}
	cmd := &cobra.Command{
		Use:   "docker-args",
		Short: "Print the docker run volume argument for a workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDockerArgs(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Workspace, "ros-ws", "", "ROS workspace directory")
	cmd.Flags().BoolVar(&opts.AsUser, "user", false, "Mount into the invoking user's home")

	_ = viper.BindPFlag("ros_ws", cmd.Flags().Lookup("ros-ws"))
	_ = viper.BindPFlag("user", cmd.Flags().Lookup("user"))
	return cmd
}

func runDockerArgs(ctx context.Context, cmd *cobra.Command, opts dockerArgsOptions) error {
	service := newAppService()
	result, err := service.DockerArgs(ctx, app.DockerArgsRequest{
		Workspace: resolveString(cmd, opts.Workspace, "ros_ws", "ros-ws"),
		AsUser:    resolveBool(cmd, opts.AsUser, "user", "user"),
	})
	if err != nil {
		return err
	}
	if result.Args != "" {
		fmt.Println(result.Args)
	}
	return nil
}
