package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateim4/archer-capacity-planner/pkg/version"
)

type VersionOptions struct {
	GlobalOptions

	Server bool
}

func DefaultVersionOptions() *VersionOptions {
	return &VersionOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdVersion() *cobra.Command {
	o := DefaultVersionOptions()
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print capacity planner version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.GlobalOptions.Bind(cmd.Flags())
	cmd.Flags().BoolVar(&o.Server, "server", o.Server, "Also print the version of the service")
	return cmd
}

func (o *VersionOptions) Run(ctx context.Context, args []string) error {
	versionInfo := version.Get()
	fmt.Printf("Client Version: %s\n", versionInfo.String())

	if o.Server {
		info, err := o.Client().GetInfo(ctx)
		if err != nil {
			return fmt.Errorf("reading service version: %w", err)
		}
		fmt.Printf("Server Version: %s\n", info.VersionName)
	}

	return nil
}
