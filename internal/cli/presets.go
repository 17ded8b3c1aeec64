package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"projctl/internal/preset"
)

var presetsJSON bool

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.Flags().BoolVar(&presetsJSON, "json", false, "output JSON")
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List dev tool presets detected on this machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		found := preset.Detect()

		if presetsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(found)
		}

		if len(found) == 0 {
			fmt.Println("no presets detected; custom tools can be added with `projctl tool add`")
			return nil
		}
		for _, p := range found {
			fmt.Printf("%-18s %-32s %s %s\n", p.ID, p.Name, p.CommandPath, strings.Join(p.Arguments, " "))
		}
		return nil
	},
}
