package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"projctl/internal/devtool"
	"projctl/internal/draft"
)

// editorState holds an in-progress edit of a custom tool. The huh form is
// bound to the string fields; the values are folded back into the draft
// only when the form completes.
type editorState struct {
	form   *huh.Form
	toolID string
	added  bool // the row was created for this edit; abort removes it

	name    string
	command string
	args    string
}

func newEditor(t devtool.DevTool, added bool, width int) *editorState {
	e := &editorState{
		toolID:  t.ID,
		added:   added,
		name:    t.Name,
		command: t.CommandPath,
		args:    draft.JoinArguments(t.Arguments),
	}

	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Focused.Title = theme.Focused.Title.Foreground(Vitesse.Primary).Bold(true)
	theme.Focused.Base.BorderForeground(Vitesse.Primary)

	w := width - 4
	if w < 40 || w > 72 {
		w = 60
	}
	e.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&e.name),
			huh.NewInput().
				Title("Command").
				Placeholder("/usr/local/bin/zed").
				Value(&e.command),
			huh.NewText().
				Title("Arguments").
				Description("one per line; {path} expands to the project path").
				Lines(3).
				Value(&e.args),
		),
	).WithTheme(theme).WithWidth(w).WithShowHelp(true)
	return e
}
