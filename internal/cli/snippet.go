package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rosws/internal/app"
)

type snippetOptions struct {
	Workspace     string
	AsUser        bool
	InstallDeps   bool
	BuildSource   bool
	RosMasterURI  string
	BuildToolArgs []string
}

func newSnippetCommand() *cobra.Command {
	opts := snippetOptions{}
	cmd := &cobra.Command{
		Use:   "snippet",
		Short: "Render the Dockerfile snippets that install and build a workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSnippet(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Workspace, "ros-ws", "", "ROS workspace directory")
	cmd.Flags().BoolVar(&opts.AsUser, "user", false, "Install the workspace into the invoking user's home")
	cmd.Flags().BoolVar(&opts.InstallDeps, "ros-ws-install-deps", true, "Install workspace dependencies with rosdep")
	cmd.Flags().BoolVar(&opts.BuildSource, "ros-ws-build-source", true, "Build the workspace sources")
	cmd.Flags().StringVar(&opts.RosMasterURI, "ros-ws-ros-master-uri", "", "ROS_MASTER_URI exported in the image")
	cmd.Flags().StringSliceVar(&opts.BuildToolArgs, "ros-ws-build-tool-args", nil, "Extra build tool arguments")

	_ = viper.BindPFlag("ros_ws", cmd.Flags().Lookup("ros-ws"))
	_ = viper.BindPFlag("user", cmd.Flags().Lookup("user"))
	_ = viper.BindPFlag("install_deps", cmd.Flags().Lookup("ros-ws-install-deps"))
	_ = viper.BindPFlag("build_source", cmd.Flags().Lookup("ros-ws-build-source"))
	_ = viper.BindPFlag("ros_master_uri", cmd.Flags().Lookup("ros-ws-ros-master-uri"))
	_ = viper.BindPFlag("build_tool_args", cmd.Flags().Lookup("ros-ws-build-tool-args"))
	return cmd
}

func runSnippet(ctx context.Context, cmd *cobra.Command, opts snippetOptions) error {
	service := newAppService()
	result, err := service.Snippet(ctx, app.SnippetRequest{
		Workspace:     resolveString(cmd, opts.Workspace, "ros_ws", "ros-ws"),
		AsUser:        resolveBool(cmd, opts.AsUser, "user", "user"),
		InstallDeps:   resolveBool(cmd, opts.InstallDeps, "install_deps", "ros-ws-install-deps"),
		BuildSource:   resolveBool(cmd, opts.BuildSource, "build_source", "ros-ws-build-source"),
		RosMasterURI:  resolveString(cmd, opts.RosMasterURI, "ros_master_uri", "ros-ws-ros-master-uri"),
		BuildToolArgs: resolveStrings(cmd, opts.BuildToolArgs, "build_tool_args", "ros-ws-build-tool-args"),
	})
	if err != nil {
		return err
	}
	fmt.Println(result.Snippet)
	fmt.Println(result.UserSnippet)
	return nil
}
