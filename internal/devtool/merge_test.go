package devtool

import (
	"reflect"
	"testing"
)

func TestMerge_PresetDescriptorWinsKeepsStoredEnabled(t *testing.T) {
	stored := []DevTool{
		{ID: "vscode", Name: "old name", CommandPath: "/old/code", Arguments: []string{"-x"}, Enabled: false, IsPreset: true},
	}
	presets := []DevToolPreset{
		{ID: "vscode", Name: "VS Code", CommandPath: "/usr/local/bin/code", Arguments: []string{"-n"}},
	}

	got := Merge(stored, presets)
	want := []DevTool{
		{ID: "vscode", Name: "VS Code", CommandPath: "/usr/local/bin/code", Arguments: []string{"-n"}, Enabled: false, IsPreset: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected merge result:\n got %+v\nwant %+v", got, want)
	}
}

func TestMerge_NewPresetsDefaultEnabled(t *testing.T) {
	got := Merge(nil, []DevToolPreset{{ID: "goland", Name: "GoLand", CommandPath: "/usr/bin/goland"}})
	if len(got) != 1 || !got[0].Enabled || !got[0].IsPreset {
		t.Fatalf("expected enabled preset entry, got %+v", got)
	}
}

func TestMerge_OrderAndLength(t *testing.T) {
	stored := []DevTool{
		{ID: "custom-1", Name: "my tool", CommandPath: "/bin/a", Enabled: true},
		{ID: "vscode", Name: "stale", CommandPath: "/bin/b", Enabled: true, IsPreset: true},
		{ID: "custom-2", Name: "other", CommandPath: "/bin/c", Enabled: false},
	}
	presets := []DevToolPreset{
		{ID: "goland", Name: "GoLand", CommandPath: "/usr/bin/goland"},
		{ID: "vscode", Name: "VS Code", CommandPath: "/usr/bin/code"},
	}

	got := Merge(stored, presets)
	// presets.length + stored ids not in preset set
	if len(got) != 4 {
		t.Fatalf("expected 4 entries, got %d: %+v", len(got), got)
	}
	wantOrder := []string{"goland", "vscode", "custom-1", "custom-2"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
	// no duplicate ids
	seen := map[string]bool{}
	for _, tool := range got {
		if seen[tool.ID] {
			t.Fatalf("duplicate id %s in merge output", tool.ID)
		}
		seen[tool.ID] = true
	}
}

func TestMerge_OrphanedPresetDemotedToCustom(t *testing.T) {
	stored := []DevTool{
		{ID: "pycharm", Name: "PyCharm", CommandPath: "/usr/bin/pycharm", Enabled: false, IsPreset: true},
	}
	got := Merge(stored, nil)
	if len(got) != 1 {
		t.Fatalf("expected retained entry, got %+v", got)
	}
	if got[0].IsPreset {
		t.Fatalf("expected orphaned preset demoted to non-preset: %+v", got[0])
	}
	if got[0].Enabled {
		t.Fatalf("expected enabled flag preserved: %+v", got[0])
	}
}

func TestMerge_Idempotent(t *testing.T) {
	stored := []DevTool{
		{ID: "vscode", Name: "stale", CommandPath: "/bin/b", Enabled: false, IsPreset: true},
		{ID: "custom-1", Name: "mine", CommandPath: "/bin/a", Arguments: []string{"{path}"}, Enabled: true},
	}
	presets := []DevToolPreset{
		{ID: "vscode", Name: "VS Code", CommandPath: "/usr/bin/code", Arguments: []string{"-n"}},
	}

	once := Merge(stored, presets)
	twice := Merge(once, presets)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("merge not idempotent:\n once %+v\ntwice %+v", once, twice)
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	stored := []DevTool{{ID: "a", Name: "A", CommandPath: "/bin/a", Arguments: []string{"-x"}, Enabled: true, IsPreset: true}}
	presets := []DevToolPreset{{ID: "a", Name: "A2", CommandPath: "/bin/a2", Arguments: []string{"-y"}}}

	out := Merge(stored, presets)
	out[0].Name = "mutated"
	out[0].Arguments[0] = "mutated"

	if stored[0].Name != "A" || stored[0].Arguments[0] != "-x" {
		t.Fatalf("stored input mutated: %+v", stored[0])
	}
	if presets[0].Arguments[0] != "-y" {
		t.Fatalf("preset input mutated: %+v", presets[0])
	}
}
