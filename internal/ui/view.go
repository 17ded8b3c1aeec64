package ui

import (
	"fmt"
	"strings"
	"time"

	runewidth "github.com/mattn/go-runewidth"

	appver "projctl/internal/version"
)

func (m model) View() string {
	if m.quitting && !m.ctl.Saving() {
		return "Goodbye!\n"
	}

	b := &strings.Builder{}

	if m.editor != nil {
		b.WriteString(renderBanner(m.cwd, []string{"editing tool"}))
		b.WriteString("\n")
		b.WriteString(m.editor.form.View())
		b.WriteString("\n")
		b.WriteString(m.renderStatusBarLine())
		return b.String()
	}

	rows := m.renderToolRows()
	b.WriteString(renderBanner(m.cwd, rows))

	b.WriteString("\n")
	if m.pendingOpen != nil {
		fmt.Fprintf(b, "  open %s with %s? (y/n)\n\n", m.cwd, m.pendingOpen.Name)
	} else if m.ctl.Saving() {
		fmt.Fprintf(b, "  %s saving settings…\n\n", m.saveSpinner.View())
	} else if m.notice != "" {
		fmt.Fprintf(b, "  %s\n\n", m.notice)
	} else {
		b.WriteString("  ␣ toggle · enter default · a add · e edit · x remove · o open · q quit · ^c abort\n\n")
	}

	b.WriteString(m.renderStatusBarLine())
	return b.String()
}

func (m model) renderToolRows() []string {
	tools := m.ctl.Tools()
	defaultID := m.ctl.DefaultID()

	// width left for the command column
	cmdW := m.width - 38
	if cmdW < 16 {
		cmdW = 16
	}
	if cmdW > 48 {
		cmdW = 48
	}

	rows := make([]string, 0, len(tools)+2)
	rows = append(rows, "Dev tools")
	rows = append(rows, "")
	for i, t := range tools {
		cur := "  "
		if i == m.cursor {
			cur = AccentBold().Render("›") + " "
		}
		mark := " "
		if t.Enabled {
			mark = AccentBold().Render("✓")
		}
		name := runewidth.FillRight(runewidth.Truncate(t.Name, 20, "…"), 20)
		cmd := MutedStyle().Render(runewidth.Truncate(t.CommandPath, cmdW, "…"))

		tags := ""
		if t.ID == defaultID {
			tags += " " + AccentBold().Render("(default)")
		}
		if t.IsPreset {
			tags += " " + MutedStyle().Render("[preset]")
		}
		rows = append(rows, fmt.Sprintf("%s%s %s %s%s", cur, mark, name, cmd, tags))
	}
	if len(tools) == 0 {
		rows = append(rows, MutedStyle().Render("no tools detected; press a to add one"))
	}
	return rows
}

// renderStatusBarLine builds the status bar string (one line plus a newline).
func (m model) renderStatusBarLine() string {
	now := m.now
	if now.IsZero() {
		now = time.Now()
	}

	leftParts := []string{"projctl"}
	if m.ctl.Saving() {
		leftParts = append(leftParts, "saving")
	} else if m.saveFailed != "" {
		leftParts = append(leftParts, "save failed")
	} else if m.ctl.Dirty() {
		leftParts = append(leftParts, "unsaved")
	}

	rightParts := []string{"v" + appver.AppVersion}
	if m.latest != "" {
		rightParts = append(rightParts, "v"+m.latest+" available")
	}
	if m.git.InRepo {
		branch := m.git.Branch
		if m.git.Dirty {
			branch += "*"
		}
		if branch != "" {
			rightParts = append(rightParts, branch)
		}
	}
	rightParts = append(rightParts, now.Format("15:04:05"))
	return renderStatusBarStyled(m.width, leftParts, rightParts) + "\n"
}
