package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"projctl/internal/devtool"
	"projctl/internal/settings"
)

var (
	addName    string
	addCommand string
	addArgs    []string
	addDefault bool
)

func init() {
	toolCmd.AddCommand(toolAddCmd)
	toolAddCmd.Flags().StringVar(&addName, "name", "", "display name (required)")
	toolAddCmd.Flags().StringVar(&addCommand, "command", "", "executable path (required)")
	toolAddCmd.Flags().StringArrayVar(&addArgs, "arg", nil, "argument, repeatable; {path} expands to the project path")
	toolAddCmd.Flags().BoolVar(&addDefault, "default", false, "make this the default tool")
	_ = toolAddCmd.MarkFlagRequired("name")
	_ = toolAddCmd.MarkFlagRequired("command")
}

var toolAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom dev tool",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := settings.Load()
		if err != nil {
			return err
		}

		t := devtool.NewCustom()
		t.Name = strings.TrimSpace(addName)
		t.CommandPath = strings.TrimSpace(addCommand)
		for _, a := range addArgs {
			a = strings.TrimSpace(a)
			if a != "" {
				t.Arguments = append(t.Arguments, a)
			}
		}
		if t.Name == "" || t.CommandPath == "" {
			return fmt.Errorf("name and command must be non-empty")
		}

		st.DevTools = append(st.DevTools, t)
		if addDefault {
			st.DefaultDevToolID = t.ID
		}
		if err := settings.Save(st); err != nil {
			return err
		}
		fmt.Printf("added %s (%s)\n", t.Name, t.ID)
		return nil
	},
}
