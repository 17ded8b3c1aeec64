package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"projctl/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "projctl",
	Short: "projctl – dev tool launchers for your projects",
	Long:  "projctl manages detected IDE presets and custom launchers, a default tool, and opens project paths with them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the settings TUI
		return app.Start()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
