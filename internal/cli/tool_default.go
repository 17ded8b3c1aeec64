package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"projctl/internal/devtool"
	"projctl/internal/preset"
	"projctl/internal/settings"
)

func init() {
	toolCmd.AddCommand(toolDefaultCmd)
}

var toolDefaultCmd = &cobra.Command{
	Use:   "default [id]",
	Short: "Show or set the default dev tool",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := settings.Load()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			if st.DefaultDevToolID == "" {
				fmt.Println("no default dev tool")
			} else {
				fmt.Println(st.DefaultDevToolID)
			}
			return nil
		}

		id := args[0]
		st.DevTools = devtool.Merge(st.DevTools, preset.Detect())
		i := indexOfTool(st.DevTools, id)
		if i < 0 {
			return fmt.Errorf("tool not found: %s", id)
		}
		if !st.DevTools[i].Enabled {
			return fmt.Errorf("tool %s is disabled; enable it first", id)
		}
		st.DefaultDevToolID = id
		return settings.Save(st)
	},
}
