package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"projctl/internal/devtool"
	"projctl/internal/preset"
	"projctl/internal/settings"
)

var toolLsJSON bool

func init() {
	toolCmd.AddCommand(toolLsCmd)
	toolLsCmd.Flags().BoolVar(&toolLsJSON, "json", false, "output JSON")
}

var toolLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List configured dev tools (merged with detected presets)",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := settings.Load()
		if err != nil {
			return err
		}
		merged := devtool.Merge(st.DevTools, preset.Detect())

		if toolLsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Tools            []devtool.DevTool `json:"tools"`
				DefaultDevToolID string            `json:"defaultDevToolId"`
			}{Tools: merged, DefaultDevToolID: st.DefaultDevToolID})
		}

		if len(merged) == 0 {
			fmt.Println("no dev tools configured; add one with `projctl tool add`")
			return nil
		}
		for _, t := range merged {
			mark := " "
			if t.Enabled {
				mark = "✓"
			}
			var tags []string
			if t.IsPreset {
				tags = append(tags, "preset")
			}
			if t.ID == st.DefaultDevToolID {
				tags = append(tags, "default")
			}
			suffix := ""
			if len(tags) > 0 {
				suffix = "  (" + strings.Join(tags, ", ") + ")"
			}
			fmt.Printf("%s %-24s %s%s\n", mark, t.Name, t.ID, suffix)
		}
		return nil
	},
}
