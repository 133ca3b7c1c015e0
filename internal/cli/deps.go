package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rosws/internal/app"
	"rosws/internal/types"
)

type depsOptions struct {
	Workspace    string
	Workers      int
	WithVersions bool
	Format       string
	OutputDir    string
}

func newDepsCommand() *cobra.Command {
	opts := depsOptions{}
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Resolve the external dependencies of a workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDeps(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Workspace, "ros-ws", "", "ROS workspace directory")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Parallel manifest parsers (0 uses the CPU count)")
	cmd.Flags().BoolVar(&opts.WithVersions, "with-versions", false, "Print version constraints next to each dependency")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.OutputFormatText), "Output file format (text, yaml)")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Write rosdeps.txt or rosdeps.yaml to this directory")

	_ = viper.BindPFlag("ros_ws", cmd.Flags().Lookup("ros-ws"))
	_ = viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("with_versions", cmd.Flags().Lookup("with-versions"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runDeps(ctx context.Context, cmd *cobra.Command, opts depsOptions) error {
	format, err := parseOutputFormat(resolveString(cmd, opts.Format, "format", "format"))
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.Dependencies(ctx, app.DependenciesRequest{
		Workspace: resolveString(cmd, opts.Workspace, "ros_ws", "ros-ws"),
		Workers:   resolveInt(cmd, opts.Workers, "workers", "workers"),
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
		Format:    format,
	})
	if err != nil {
		return err
	}
	if result.OutputDir != "" {
		fmt.Printf("wrote %d dependencies to %s\n", len(result.Result.Dependencies), result.OutputDir)
		return nil
	}
	lines := result.Result.Dependencies
	if resolveBool(cmd, opts.WithVersions, "with_versions", "with-versions") {
		lines = result.Requirements
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}
