package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"projctl/internal/devtool"
	"projctl/internal/preset"
	"projctl/internal/settings"
)

func init() {
	toolCmd.AddCommand(toolEnableCmd)
	toolCmd.AddCommand(toolDisableCmd)
}

var toolEnableCmd = &cobra.Command{
	Use:   "enable <id>",
	Short: "Enable a dev tool",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setEnabled(args[0], true) },
}

var toolDisableCmd = &cobra.Command{
	Use:   "disable <id>",
	Short: "Disable a dev tool",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setEnabled(args[0], false) },
}

func setEnabled(id string, enabled bool) error {
	st, err := settings.Load()
	if err != nil {
		return err
	}
	// work on the merged view so presets not yet persisted can be toggled
	st.DevTools = devtool.Merge(st.DevTools, preset.Detect())
	i := indexOfTool(st.DevTools, id)
	if i < 0 {
		return fmt.Errorf("tool not found: %s", id)
	}
	st.DevTools[i].Enabled = enabled
	// disabling the default tool reassigns it
	st.Normalize()
	return settings.Save(st)
}
