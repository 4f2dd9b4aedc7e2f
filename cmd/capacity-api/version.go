package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mateim4/archer-capacity-planner/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of the capacity planner api",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Get().String())
	},
}
