package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mateim4/archer-capacity-planner/internal/cli"
)

func main() {
	command := NewCapacityCtlCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewCapacityCtlCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capacity-cli [flags] [options]",
		Short: "capacity-cli talks to the capacity planner service.",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
			os.Exit(1)
		},
	}
	cmd.AddCommand(cli.NewCmdPlan())
	cmd.AddCommand(cli.NewCmdStatus())
	cmd.AddCommand(cli.NewCmdVersion())

	return cmd
}
