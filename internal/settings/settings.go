package settings

import (
	"projctl/internal/devtool"
)

// TerminalConfig is the terminal launcher configuration. An empty CommandPath
// means "use the platform default terminal".
type TerminalConfig struct {
	CommandPath string   `json:"commandPath"`
	Arguments   []string `json:"arguments"`
}

// Identity is a git committer identity that can be applied to projects.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AppSettings is the persisted application settings record. The shape is
// schema-stable: fields missing on load are defaulted, unknown fields are
// dropped on the next save.
type AppSettings struct {
	DevTools          []devtool.DevTool `json:"devTools"`
	DefaultDevToolID  string            `json:"defaultDevToolId"`
	Terminal          TerminalConfig    `json:"terminal"`
	Identities        []Identity        `json:"identities"`
	AutoCheckUpdates  bool              `json:"autoCheckUpdates"`
	ConfirmBeforeOpen bool              `json:"confirmBeforeOpen"`
}

// Clone returns a deep copy of the settings record.
func (s AppSettings) Clone() AppSettings {
	out := s
	out.DevTools = devtool.CloneTools(s.DevTools)
	if s.Terminal.Arguments != nil {
		out.Terminal.Arguments = append([]string(nil), s.Terminal.Arguments...)
	}
	if s.Identities != nil {
		out.Identities = append([]Identity(nil), s.Identities...)
	}
	return out
}

// EnabledTool reports whether id references an enabled tool in s.DevTools.
func (s AppSettings) EnabledTool(id string) bool {
	for _, t := range s.DevTools {
		if t.ID == id && t.Enabled {
			return true
		}
	}
	return false
}

// Normalize enforces the default-tool invariant on a loaded or submitted
// record: a non-empty DefaultDevToolID must reference an enabled tool, else
// it is reassigned to the first enabled tool or cleared. An empty default
// stays empty.
func (s *AppSettings) Normalize() {
	if s.DefaultDevToolID == "" || s.EnabledTool(s.DefaultDevToolID) {
		return
	}
	s.DefaultDevToolID = ""
	for _, t := range s.DevTools {
		if t.Enabled {
			s.DefaultDevToolID = t.ID
			return
		}
	}
}
