package ui

import (
	"time"

	"projctl/internal/devtool"
	"projctl/internal/settings"
	"projctl/internal/system"
	"projctl/internal/update"
)

// Bubble Tea messages

// periodic tick for the status bar clock
type tickMsg time.Time

// git info updates for the status bar
type gitInfoMsg struct{ info system.GitInfo }

// settings.json changed on disk (fsnotify)
type fileChangedMsg struct{}

// fresh state loaded from disk for a reseed
type reloadedMsg struct {
	persisted settings.AppSettings
	presets   []devtool.DevToolPreset
}

// commit-on-close finished
type saveDoneMsg struct {
	saved bool
	err   error
}

// a tool launch finished
type openDoneMsg struct {
	name string
	err  error
}

// release check finished
type updateCheckMsg struct {
	res update.Result
	err error
}

// transient notice line
type noticeMsg string
