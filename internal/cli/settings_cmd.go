package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"projctl/internal/draft"
	"projctl/internal/preset"
	"projctl/internal/settings"
)

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsSchemaCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit terminal, identity and update settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := settings.Load()
		if err != nil {
			return err
		}
		ctl := draft.New(st, preset.Detect(), func(_ context.Context, s settings.AppSettings) error {
			return settings.Save(s)
		})

		// Bound form values, folded back into the draft on submit.
		termCmd := ctl.TerminalCommand()
		termArgs := ctl.TerminalArguments()
		identities := settings.FormatIdentities(ctl.Identities())
		autoCheck := ctl.AutoCheckUpdates()
		confirmOpen := ctl.ConfirmBeforeOpen()

		// Light theme tweaks inspired by freeze/interactive.go
		green := lipgloss.Color("#03BF87")
		theme := huh.ThemeCharm()
		theme.FieldSeparator = lipgloss.NewStyle()
		theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
		theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
		theme.Focused.Base.BorderForeground(green)

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewNote().Title("Settings").Description("Terminal, identities and update checks"),
				huh.NewInput().
					Title("Terminal").
					Placeholder("/usr/bin/open").
					Description("command used by `projctl open --terminal`; leave empty for the platform default").
					Value(&termCmd),
				huh.NewText().
					Title("Terminal args").
					Description("one argument per line; {path} expands to the project path").
					Lines(3).
					Value(&termArgs),
				huh.NewText().
					Title("Identities").
					Description("one per line, as `Name <email>`").
					Lines(4).
					Value(&identities),
				huh.NewConfirm().
					Title("Check updates").
					Value(&autoCheck),
				huh.NewConfirm().
					Title("Confirm open").
					Description("ask before launching a tool on a path").
					Value(&confirmOpen),
			),
		).WithTheme(theme).WithWidth(64)

		if err := form.Run(); err != nil {
			return err // form canceled or failed
		}

		ctl.SetTerminalCommand(termCmd)
		ctl.SetTerminalArguments(termArgs)
		ctl.SetIdentities(settings.ParseIdentities(identities))
		ctl.SetAutoCheckUpdates(autoCheck)
		ctl.SetConfirmBeforeOpen(confirmOpen)

		saved, err := ctl.Close(cmd.Context())
		if err != nil {
			return err
		}
		if saved {
			fmt.Println("\n✓ settings saved")
		} else {
			fmt.Println("\nno changes")
		}
		return nil
	},
}

var settingsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the settings.json JSON Schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := settings.MarshalSchema(settings.Schema())
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}
