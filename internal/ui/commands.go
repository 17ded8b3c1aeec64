package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"projctl/internal/devtool"
	"projctl/internal/draft"
	"projctl/internal/launch"
	"projctl/internal/preset"
	"projctl/internal/settings"
	"projctl/internal/system"
	"projctl/internal/update"
)

// Commands

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func gitInfoCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		info, _ := system.GetGitInfo(ctx, dir)
		return gitInfoMsg{info: info}
	}
}

func reloadCmd() tea.Cmd {
	return func() tea.Msg {
		persisted, err := settings.Load()
		if err != nil {
			return noticeMsg("reload failed: " + err.Error())
		}
		return reloadedMsg{persisted: persisted, presets: preset.Detect()}
	}
}

func saveCmd(ctl *draft.Controller) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		saved, err := ctl.Close(ctx)
		return saveDoneMsg{saved: saved, err: err}
	}
}

func openToolCmd(tool devtool.DevTool, path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		err := devtool.NewDispatcher(launch.Process{}).Invoke(ctx, tool, path)
		return openDoneMsg{name: tool.Name, err: err}
	}
}

func checkUpdateCmd() tea.Cmd {
	return func() tea.Msg {
		var chk update.Checker
		res, err := chk.Check(context.Background())
		return updateCheckMsg{res: res, err: err}
	}
}
