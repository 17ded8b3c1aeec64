package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"projctl/internal/devtool"
	"projctl/internal/launch"
	"projctl/internal/preset"
	"projctl/internal/settings"
)

var (
	openTool     string
	openTerminal bool
	openReveal   bool
	openYes      bool
)

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().StringVarP(&openTool, "tool", "t", "", "tool id or (fuzzy) name; default tool when omitted")
	openCmd.Flags().BoolVar(&openTerminal, "terminal", false, "open a terminal at the path instead")
	openCmd.Flags().BoolVar(&openReveal, "reveal", false, "reveal the path in the file manager instead")
	openCmd.Flags().BoolVarP(&openYes, "yes", "y", false, "skip the confirm-before-open prompt")
}

// confirmOpen honors the confirm-before-open setting with a huh prompt.
func confirmOpen(path string) (bool, error) {
	ok := true
	err := huh.NewConfirm().
		Title("Open " + path + "?").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}

var openCmd = &cobra.Command{
	Use:   "open [path]",
	Short: "Open a project path with a dev tool",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := "."
		if len(args) == 1 {
			target = args[0]
		}
		path, err := filepath.Abs(target)
		if err != nil {
			return err
		}

		st, err := settings.Load()
		if err != nil {
			return err
		}

		if openReveal {
			return launch.OpenInFileManager(cmd.Context(), path)
		}
		if openTerminal {
			return launch.OpenInTerminal(cmd.Context(), st.Terminal, path)
		}

		if st.ConfirmBeforeOpen && !openYes {
			ok, err := confirmOpen(path)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}

		merged := devtool.Merge(st.DevTools, preset.Detect())
		dispatcher := devtool.NewDispatcher(launch.Process{})

		if openTool == "" {
			if st.DefaultDevToolID == "" {
				return fmt.Errorf("no default dev tool configured; pick one with --tool or `projctl tool default`")
			}
			return dispatcher.InvokeDefault(cmd.Context(), merged, st.DefaultDevToolID, path)
		}

		tool, err := resolveTool(merged, openTool)
		if err != nil {
			return err
		}
		return dispatcher.Invoke(cmd.Context(), tool, path)
	},
}

// resolveTool matches query against enabled tools: exact id first, then a
// fuzzy match over display names.
func resolveTool(tools []devtool.DevTool, query string) (devtool.DevTool, error) {
	var enabled []devtool.DevTool
	for _, t := range tools {
		if t.ID == query {
			return t, nil
		}
		if t.Enabled {
			enabled = append(enabled, t)
		}
	}

	names := make([]string, 0, len(enabled))
	for _, t := range enabled {
		names = append(names, t.Name)
	}
	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return devtool.DevTool{}, fmt.Errorf("no tool matches %q (known: %s)", query, strings.Join(names, ", "))
	}
	return enabled[matches[0].Index], nil
}
