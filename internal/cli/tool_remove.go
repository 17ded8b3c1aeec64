package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"projctl/internal/devtool"
	"projctl/internal/settings"
)

func init() {
	toolCmd.AddCommand(toolRemoveCmd)
}

var toolRemoveCmd = &cobra.Command{
	Use:   "remove <id>...",
	Short: "Remove custom dev tools by id",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := settings.Load()
		if err != nil {
			return err
		}

		for _, id := range args {
			i := indexOfTool(st.DevTools, id)
			if i < 0 {
				fmt.Printf("× %s: not found\n", id)
				continue
			}
			if st.DevTools[i].IsPreset {
				fmt.Printf("× %s: presets cannot be removed (hide them in presets.yaml)\n", id)
				continue
			}
			fmt.Printf("✓ removed %s\n", st.DevTools[i].Name)
			st.DevTools = append(st.DevTools[:i], st.DevTools[i+1:]...)
		}

		st.Normalize()
		return settings.Save(st)
	},
}

func indexOfTool(tools []devtool.DevTool, id string) int {
	for i, t := range tools {
		if t.ID == id {
			return i
		}
	}
	return -1
}
