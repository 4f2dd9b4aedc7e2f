package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use: "capacity-api",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}
