package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderBanner draws the framed header box with extra lines inside.
func renderBanner(cwd string, extra []string) string {
	lines := []string{
		"✻ projctl — project dev tools",
		"",
	}
	if len(extra) > 0 {
		lines = append(lines, extra...)
		lines = append(lines, "")
	}
	lines = append(lines, fmt.Sprintf("cwd: %s", cwd))

	// compute max display width (ignore ANSI codes)
	max := 0
	for _, ln := range lines {
		if w := xansi.StringWidth(ln); w > max {
			max = w
		}
	}
	top := "╭" + strings.Repeat("─", max+2) + "╮\n"
	bot := "╰" + strings.Repeat("─", max+2) + "╯\n"
	var sb strings.Builder
	sb.WriteString(top)
	for _, ln := range lines {
		pad := max - xansi.StringWidth(ln)
		sb.WriteString("│ ")
		sb.WriteString(ln)
		if pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(" │\n")
	}
	sb.WriteString(bot)
	return sb.String()
}

// renderStatusBarStyled draws a segmented one-line status bar with
// left/right-aligned chips.
func renderStatusBarStyled(width int, leftParts, rightParts []string) string {
	w := width
	if w <= 0 {
		w = 100
	}

	statusBarStyle := StatusBarBase()
	keyStyle := ChipKeyStyle().Inherit(statusBarStyle).MarginRight(1)

	nugget := lipgloss.NewStyle().
		Foreground(Vitesse.OnAccent).
		Padding(0, 1)
	nuggetBG := []lipgloss.Color{
		Vitesse.Primary,
		Vitesse.Blue,
		Vitesse.Yellow,
		Vitesse.Magenta,
	}

	leftItems := make([]string, 0, len(leftParts))
	for i, s := range leftParts {
		if i == 0 {
			leftItems = append(leftItems, keyStyle.Render(s))
			continue
		}
		bg := nuggetBG[(i-1)%len(nuggetBG)]
		leftItems = append(leftItems, nugget.Background(bg).Render(s))
	}
	rightItems := make([]string, 0, len(rightParts))
	for i, s := range rightParts {
		bg := nuggetBG[i%len(nuggetBG)]
		rightItems = append(rightItems, nugget.Background(bg).Render(s))
	}

	rebuild := func(parts []string) (string, int) {
		s := strings.Join(parts, "")
		return s, xansi.StringWidth(s)
	}
	leftStr, lw := rebuild(leftItems)
	rightStr, rw := rebuild(rightItems)

	for lw+rw > w && len(leftItems) > 1 {
		leftItems = leftItems[:len(leftItems)-1]
		leftStr, lw = rebuild(leftItems)
	}
	for lw+rw > w && len(rightItems) > 0 {
		rightItems = rightItems[:len(rightItems)-1]
		rightStr, rw = rebuild(rightItems)
	}

	gap := w - lw - rw
	if gap < 0 {
		gap = 0
	}
	center := statusBarStyle.Render(strings.Repeat(" ", gap))
	return leftStr + center + rightStr
}
