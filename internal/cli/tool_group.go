package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(toolCmd)
}

var toolCmd = &cobra.Command{
	Use:   "tool",
	Short: "Manage dev tool launchers",
}
