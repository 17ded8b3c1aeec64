package ui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"projctl/internal/config"
)

// newSettingsWatcher watches the config directory for changes to
// settings.json. Watching the directory rather than the file survives
// atomic replace-on-save by other processes.
func newSettingsWatcher() (*fsnotify.Watcher, error) {
	p, err := config.SettingsPath()
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(p)); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// waitForChange blocks until settings.json is written or created, then
// reports it. Re-issued from Update after every fileChangedMsg.
func waitForChange(w *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		target := "settings.json"
		if p, err := config.SettingsPath(); err == nil {
			target = filepath.Base(p)
		}
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if filepath.Base(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					return fileChangedMsg{}
				}
			case _, ok := <-w.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}
