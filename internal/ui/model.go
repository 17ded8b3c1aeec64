package ui

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"projctl/internal/devtool"
	"projctl/internal/draft"
	"projctl/internal/preset"
	"projctl/internal/settings"
	"projctl/internal/system"
)

// Model for the settings TUI. All edits go through the draft controller;
// the model itself only holds view state.
type model struct {
	ctl    *draft.Controller
	cursor int

	width  int
	height int

	// editor overlay for custom tools
	editor *editorState

	// pending confirm-before-open target
	pendingOpen *devtool.DevTool

	// quit flow: a dirty draft is committed before the program exits
	quitting   bool
	saveFailed string

	saveSpinner spinner.Model

	// status bar state
	now         time.Time
	git         system.GitInfo
	cwd         string
	notice      string
	noticeUntil time.Time
	latest      string // newer release tag, when known

	watcher *fsnotify.Watcher
}

func initialModel() model {
	wd, _ := os.Getwd()

	persisted, err := settings.Load()
	m := model{cwd: wd}
	if err != nil {
		m.setNotice("settings load failed: "+err.Error(), 10*time.Second)
	}
	m.ctl = draft.New(persisted, preset.Detect(), func(_ context.Context, s settings.AppSettings) error {
		return settings.Save(s)
	})

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = AccentBold()
	m.saveSpinner = sp

	if w, err := newSettingsWatcher(); err == nil {
		m.watcher = w
	}
	return m
}

// InitialModel is the public constructor for app.
func InitialModel() tea.Model { return initialModel() }

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(), gitInfoCmd(m.cwd)}
	if m.ctl.AutoCheckUpdates() {
		cmds = append(cmds, checkUpdateCmd())
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

func (m *model) setNotice(s string, d time.Duration) {
	m.notice = s
	m.noticeUntil = time.Now().Add(d)
}

// SaveError reports the last failed settings save, if any. It lets the
// caller print the failure after the alt screen is restored.
func (m model) SaveError() string {
	return m.saveFailed
}
