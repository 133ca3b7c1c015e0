package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rosws/internal/app"
	"rosws/internal/types"
)

type filesOptions struct {
	Workspace  string
	All        bool
	ReadErrors string
	OutputDir  string
}

func newFilesCommand() *cobra.Command {
	opts := filesOptions{}
	cmd := &cobra.Command{
		Use:   "files",
		Short: "List or materialise the build-context files of a workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFiles(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Workspace, "ros-ws", "", "ROS workspace directory")
	cmd.Flags().BoolVar(&opts.All, "all", false, "Include files outside packages")
	cmd.Flags().StringVar(&opts.ReadErrors, "read-errors", string(types.ReadErrorPolicyAbort), "Unreadable file policy (abort, skip)")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Write the build context to this directory")

	_ = viper.BindPFlag("ros_ws", cmd.Flags().Lookup("ros-ws"))
	_ = viper.BindPFlag("all", cmd.Flags().Lookup("all"))
	_ = viper.BindPFlag("read_errors", cmd.Flags().Lookup("read-errors"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runFiles(ctx context.Context, cmd *cobra.Command, opts filesOptions) error {
	policy, err := parseReadPolicy(resolveString(cmd, opts.ReadErrors, "read_errors", "read-errors"))
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.Files(ctx, app.FilesRequest{
		Workspace:    resolveString(cmd, opts.Workspace, "ros_ws", "ros-ws"),
		PackagesOnly: !resolveBool(cmd, opts.All, "all", "all"),
		ReadPolicy:   policy,
		OutputDir:    resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}
	if result.OutputDir != "" {
		fmt.Printf("wrote %d files to %s\n", len(result.Paths), result.OutputDir)
		return nil
	}
	for _, path := range result.Paths {
		fmt.Println(path)
	}
	return nil
}
