package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type StatusOptions struct {
	GlobalOptions
}

func DefaultStatusOptions() *StatusOptions {
	return &StatusOptions{
		GlobalOptions: DefaultGlobalOptions(),
	}
}

func NewCmdStatus() *cobra.Command {
	o := DefaultStatusOptions()
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check whether the capacity planner service is reachable.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *StatusOptions) Run(ctx context.Context, args []string) error {
	if err := o.Client().HealthCheck(ctx); err != nil {
		return fmt.Errorf("service is not healthy: %w", err)
	}
	fmt.Printf("Service at %s is healthy\n", o.ServerUrl)
	return nil
}
