package devtool

import (
	"encoding/json"

	"github.com/google/uuid"
)

// DevTool is a configured launcher for opening a project in an IDE/editor.
// Preset-origin records keep only their Enabled flag across re-detection;
// everything else is re-synthesized from the current preset catalog.
type DevTool struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CommandPath string   `json:"commandPath"`
	Arguments   []string `json:"arguments"`
	Enabled     bool     `json:"enabled"`
	IsPreset    bool     `json:"isPreset"`
}

// DevToolPreset is a detection result for an installed tool.
type DevToolPreset struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CommandPath string   `json:"commandPath"`
	Arguments   []string `json:"arguments"`
}

// NewCustom returns a fresh user-authored tool with a unique id.
func NewCustom() DevTool {
	return DevTool{
		ID:      uuid.NewString(),
		Name:    "new tool",
		Enabled: true,
	}
}

// UnmarshalJSON defaults Enabled to true when the field is absent, so
// records persisted by earlier versions stay selectable after load.
func (t *DevTool) UnmarshalJSON(data []byte) error {
	type alias DevTool
	aux := struct {
		Enabled *bool `json:"enabled"`
		*alias
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Enabled == nil {
		t.Enabled = true
	} else {
		t.Enabled = *aux.Enabled
	}
	return nil
}

// Clone returns a deep copy of the tool.
func (t DevTool) Clone() DevTool {
	out := t
	if t.Arguments != nil {
		out.Arguments = append([]string(nil), t.Arguments...)
	}
	return out
}

// CloneTools deep-copies a tool list.
func CloneTools(in []DevTool) []DevTool {
	if in == nil {
		return nil
	}
	out := make([]DevTool, 0, len(in))
	for _, t := range in {
		out = append(out, t.Clone())
	}
	return out
}
