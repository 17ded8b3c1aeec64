package app

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"projctl/internal/ui"
)

// Start runs the TUI program and returns any error.
func Start() error {
	final, err := tea.NewProgram(ui.InitialModel(), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(interface{ SaveError() string }); ok && m.SaveError() != "" {
		fmt.Fprintf(os.Stderr, "warning: settings were not saved: %s\n", m.SaveError())
	}
	return nil
}

// Main is a helper to use as entry-point from cmd.
func Main() {
	if err := Start(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
