package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"projctl/internal/devtool"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		if m.notice != "" && m.now.After(m.noticeUntil) {
			m.notice = ""
		}
		cmds := []tea.Cmd{tickCmd()}
		if m.now.Second()%5 == 0 {
			cmds = append(cmds, gitInfoCmd(m.cwd))
		}
		return m, tea.Batch(cmds...)

	case gitInfoMsg:
		m.git = msg.info
		return m, nil

	case fileChangedMsg:
		var cmd tea.Cmd
		if m.watcher != nil {
			cmd = waitForChange(m.watcher)
		}
		if m.ctl.Saving() {
			// our own commit; nothing to pick up
			return m, cmd
		}
		if m.ctl.Dirty() {
			m.setNotice("settings.json changed on disk; keeping local edits", 6*time.Second)
			return m, cmd
		}
		return m, tea.Batch(cmd, reloadCmd())

	case reloadedMsg:
		m.ctl.Reseed(msg.persisted, msg.presets)
		m.clampCursor()
		m.setNotice("settings reloaded from disk", 4*time.Second)
		return m, nil

	case saveDoneMsg:
		if msg.err != nil {
			m.saveFailed = msg.err.Error()
			// the close still finalizes; the failure is surfaced, not retried
			if m.quitting {
				m.closeWatcher()
				return m, tea.Quit
			}
			m.setNotice("save failed: "+msg.err.Error(), 10*time.Second)
			return m, nil
		}
		m.saveFailed = ""
		if m.quitting {
			m.closeWatcher()
			return m, tea.Quit
		}
		if msg.saved {
			m.setNotice("settings saved", 4*time.Second)
		}
		return m, nil

	case openDoneMsg:
		if msg.err != nil {
			m.setNotice("open failed: "+msg.err.Error(), 8*time.Second)
		} else {
			m.setNotice("opened with "+msg.name, 4*time.Second)
		}
		return m, nil

	case updateCheckMsg:
		if msg.err == nil && !msg.res.UpToDate {
			m.latest = msg.res.Latest
		}
		return m, nil

	case noticeMsg:
		m.setNotice(string(msg), 6*time.Second)
		return m, nil

	case spinner.TickMsg:
		if !m.ctl.Saving() {
			return m, nil
		}
		var cmd tea.Cmd
		m.saveSpinner, cmd = m.saveSpinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// hard exit, no commit
			m.quitting = true
			m.closeWatcher()
			return m, tea.Quit
		}
		if m.ctl.Saving() {
			return m, nil
		}
		if m.editor != nil {
			return m.updateEditor(msg)
		}
		if m.pendingOpen != nil {
			return m.handleConfirmKey(msg)
		}
		return m.handleKey(msg)
	}

	if m.editor != nil {
		return m.updateEditor(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tools := m.ctl.Tools()
	switch msg.String() {
	case "q", "esc":
		if !m.ctl.Dirty() {
			m.quitting = true
			m.closeWatcher()
			return m, tea.Quit
		}
		m.quitting = true
		return m, tea.Batch(saveCmd(m.ctl), m.saveSpinner.Tick)

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(tools)-1 {
			m.cursor++
		}

	case " ":
		if t, ok := m.selected(tools); ok {
			m.ctl.ToggleTool(t.ID)
		}

	case "enter", "s":
		if t, ok := m.selected(tools); ok {
			if !t.Enabled {
				m.setNotice("enable the tool before making it the default", 5*time.Second)
				break
			}
			m.ctl.SetDefault(t.ID)
		}

	case "a":
		id := m.ctl.AddTool()
		tools = m.ctl.Tools()
		for i, t := range tools {
			if t.ID == id {
				m.cursor = i
				break
			}
		}
		m.editor = newEditor(tools[m.cursor], true, m.width)
		return m, m.editor.form.Init()

	case "e":
		t, ok := m.selected(tools)
		if !ok {
			break
		}
		if t.IsPreset {
			m.setNotice("presets are read-only; toggle or set default instead", 5*time.Second)
			break
		}
		m.editor = newEditor(t, false, m.width)
		return m, m.editor.form.Init()

	case "x", "backspace":
		t, ok := m.selected(tools)
		if !ok {
			break
		}
		if t.IsPreset {
			m.setNotice("presets cannot be removed", 5*time.Second)
			break
		}
		m.ctl.RemoveTool(t.ID)
		m.clampCursor()

	case "o":
		t, ok := m.selected(tools)
		if !ok {
			break
		}
		if !t.Enabled {
			m.setNotice("tool is disabled", 4*time.Second)
			break
		}
		if m.ctl.ConfirmBeforeOpen() {
			m.pendingOpen = &t
			break
		}
		m.setNotice("opening "+m.cwd+" …", 4*time.Second)
		return m, openToolCmd(t, m.cwd)

	case "u":
		m.setNotice("checking for updates…", 4*time.Second)
		return m, checkUpdateCmd()
	}
	return m, nil
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		t := *m.pendingOpen
		m.pendingOpen = nil
		m.setNotice("opening "+m.cwd+" …", 4*time.Second)
		return m, openToolCmd(t, m.cwd)
	case "n", "esc", "q":
		m.pendingOpen = nil
	}
	return m, nil
}

func (m model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	f, cmd := m.editor.form.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		m.editor.form = form
	}

	switch m.editor.form.State {
	case huh.StateCompleted:
		e := m.editor
		m.editor = nil
		if err := m.ctl.UpdateTool(e.toolID, e.name, e.command, e.args); err != nil {
			m.setNotice(err.Error(), 6*time.Second)
		}
		return m, nil
	case huh.StateAborted:
		e := m.editor
		m.editor = nil
		if e.added {
			m.ctl.RemoveTool(e.toolID)
			m.clampCursor()
		}
		return m, nil
	}
	return m, cmd
}

func (m *model) selected(tools []devtool.DevTool) (devtool.DevTool, bool) {
	if m.cursor < 0 || m.cursor >= len(tools) {
		return devtool.DevTool{}, false
	}
	return tools[m.cursor], true
}

func (m *model) closeWatcher() {
	if m.watcher != nil {
		m.watcher.Close()
		m.watcher = nil
	}
}

func (m *model) clampCursor() {
	n := len(m.ctl.Tools())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
