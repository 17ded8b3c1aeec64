package draft

import (
	"context"
	"errors"
	"sync"
	"testing"

	"projctl/internal/devtool"
	"projctl/internal/settings"
)

func seedSettings() settings.AppSettings {
	return settings.AppSettings{
		DevTools: []devtool.DevTool{
			{ID: "vscode", Name: "VS Code", CommandPath: "/usr/bin/code", Arguments: []string{"-n", "{path}"}, Enabled: false, IsPreset: true},
			{ID: "c1", Name: "mine", CommandPath: "/bin/mine", Arguments: []string{"{path}"}, Enabled: true},
		},
		DefaultDevToolID: "c1",
		Terminal:         settings.TerminalConfig{CommandPath: "/usr/bin/kitty", Arguments: []string{"-d", "{path}"}},
		Identities:       []settings.Identity{{Name: "Me", Email: "me@example.com"}},
	}
}

func seedPresets() []devtool.DevToolPreset {
	return []devtool.DevToolPreset{
		{ID: "vscode", Name: "VS Code", CommandPath: "/usr/bin/code", Arguments: []string{"-n", "{path}"}},
		{ID: "goland", Name: "GoLand", CommandPath: "/usr/bin/goland", Arguments: []string{"{path}"}},
	}
}

func noSave(context.Context, settings.AppSettings) error { return nil }

func TestController_CleanAfterSeed(t *testing.T) {
	c := New(seedSettings(), seedPresets(), noSave)
	if c.Dirty() {
		t.Fatalf("draft must be clean right after seeding")
	}
	// merge ran: new preset appears in the working list
	tools := c.Tools()
	if len(tools) != 3 {
		t.Fatalf("expected merged list of 3, got %+v", tools)
	}
	if tools[0].ID != "vscode" || tools[0].Enabled {
		t.Fatalf("stored enabled flag lost in merge: %+v", tools[0])
	}
}

func TestController_DirtyAfterEditCleanAfterRevert(t *testing.T) {
	c := New(seedSettings(), seedPresets(), noSave)

	c.SetTerminalCommand("/usr/bin/alacritty")
	if !c.Dirty() {
		t.Fatalf("expected dirty after terminal edit")
	}
	c.SetTerminalCommand("/usr/bin/kitty")
	if c.Dirty() {
		t.Fatalf("expected clean after revert")
	}

	// trimming: whitespace-only difference is not a change
	c.SetTerminalCommand("  /usr/bin/kitty  ")
	if c.Dirty() {
		t.Fatalf("trimmed command must compare equal")
	}

	// argument order is significant
	c.SetTerminalArguments("{path}\n-d")
	if !c.Dirty() {
		t.Fatalf("expected dirty after argument reorder")
	}
	c.SetTerminalArguments("-d\n{path}")
	if c.Dirty() {
		t.Fatalf("expected clean after restoring argument order")
	}
}

func TestController_ToggleAndDefaultConsistency(t *testing.T) {
	c := New(seedSettings(), seedPresets(), noSave)

	// disabling the current default moves it to the first enabled tool
	if err := c.ToggleTool("c1"); err != nil {
		t.Fatalf("ToggleTool error: %v", err)
	}
	def := c.DefaultID()
	if def == "c1" {
		t.Fatalf("default still points at a disabled tool")
	}
	if def == "" {
		t.Fatalf("enabled tools remain, default should be reassigned")
	}
	for _, tool := range c.Tools() {
		if tool.ID == def && !tool.Enabled {
			t.Fatalf("default %q references a disabled tool", def)
		}
	}

	// disabling everything clears the default
	for _, tool := range c.Tools() {
		if tool.Enabled {
			if err := c.ToggleTool(tool.ID); err != nil {
				t.Fatalf("ToggleTool error: %v", err)
			}
		}
	}
	if c.DefaultID() != "" {
		t.Fatalf("default should clear when nothing is enabled, got %q", c.DefaultID())
	}
}

func TestController_SetDefaultValidated(t *testing.T) {
	c := New(seedSettings(), seedPresets(), noSave)

	c.SetDefault("goland")
	if c.DefaultID() != "goland" {
		t.Fatalf("expected goland default, got %q", c.DefaultID())
	}

	// vscode is disabled in the seed; invariant reassigns
	c.SetDefault("vscode")
	if c.DefaultID() == "vscode" {
		t.Fatalf("default must not reference a disabled tool")
	}

	c.SetDefault("")
	if c.DefaultID() != "" {
		t.Fatalf("clearing the default must stick, got %q", c.DefaultID())
	}
}

func TestController_CustomToolLifecycle(t *testing.T) {
	c := New(seedSettings(), seedPresets(), noSave)

	id := c.AddTool()
	if id == "" {
		t.Fatalf("expected generated id")
	}
	var added devtool.DevTool
	for _, tool := range c.Tools() {
		if tool.ID == id {
			added = tool
		}
	}
	if added.Name != "new tool" || !added.Enabled || added.IsPreset || added.CommandPath != "" {
		t.Fatalf("unexpected fresh tool: %+v", added)
	}
	if !c.Dirty() {
		t.Fatalf("adding a tool must dirty the draft")
	}

	if err := c.UpdateTool(id, " Sublime ", " /usr/bin/subl ", "-n\n{path}\n"); err != nil {
		t.Fatalf("UpdateTool error: %v", err)
	}
	for _, tool := range c.Tools() {
		if tool.ID == id {
			if tool.Name != "Sublime" || tool.CommandPath != "/usr/bin/subl" {
				t.Fatalf("fields not trimmed: %+v", tool)
			}
			if len(tool.Arguments) != 2 || tool.Arguments[0] != "-n" || tool.Arguments[1] != "{path}" {
				t.Fatalf("arguments not normalized: %+v", tool.Arguments)
			}
		}
	}

	if err := c.RemoveTool(id); err != nil {
		t.Fatalf("RemoveTool error: %v", err)
	}
	for _, tool := range c.Tools() {
		if tool.ID == id {
			t.Fatalf("tool still present after removal")
		}
	}
}

func TestController_PresetsReadOnly(t *testing.T) {
	c := New(seedSettings(), seedPresets(), noSave)

	if err := c.UpdateTool("vscode", "x", "/bin/x", ""); !errors.Is(err, ErrPresetReadOnly) {
		t.Fatalf("expected ErrPresetReadOnly, got %v", err)
	}
	if err := c.RemoveTool("goland"); !errors.Is(err, ErrPresetReadOnly) {
		t.Fatalf("expected ErrPresetReadOnly, got %v", err)
	}
	if err := c.ToggleTool("goland"); err != nil {
		t.Fatalf("toggling a preset must be allowed: %v", err)
	}
	if err := c.UpdateTool("nope", "x", "/bin/x", ""); !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}
}

func TestController_IdentityOps(t *testing.T) {
	c := New(seedSettings(), seedPresets(), noSave)

	i := c.AddIdentity()
	if err := c.UpdateIdentity(i, " Work ", " work@example.com "); err != nil {
		t.Fatalf("UpdateIdentity error: %v", err)
	}
	next := c.Next()
	if len(next.Identities) != 2 || next.Identities[1].Name != "Work" || next.Identities[1].Email != "work@example.com" {
		t.Fatalf("unexpected identities: %+v", next.Identities)
	}

	if err := c.RemoveIdentity(i); err != nil {
		t.Fatalf("RemoveIdentity error: %v", err)
	}
	if c.Dirty() {
		t.Fatalf("add+remove of an identity should leave the draft clean")
	}
	if err := c.UpdateIdentity(99, "x", "y"); err == nil {
		t.Fatalf("expected out of range error")
	}
}

func TestController_CloseCommitsOnlyWhenDirty(t *testing.T) {
	var saves []settings.AppSettings
	c := New(seedSettings(), seedPresets(), func(_ context.Context, s settings.AppSettings) error {
		saves = append(saves, s)
		return nil
	})

	saved, err := c.Close(context.Background())
	if err != nil || saved {
		t.Fatalf("clean draft must not save (saved=%v err=%v)", saved, err)
	}

	c.SetAutoCheckUpdates(true)
	saved, err = c.Close(context.Background())
	if err != nil || !saved {
		t.Fatalf("dirty draft must save (saved=%v err=%v)", saved, err)
	}
	if len(saves) != 1 || !saves[0].AutoCheckUpdates {
		t.Fatalf("unexpected persisted snapshot: %+v", saves)
	}
	if c.Dirty() {
		t.Fatalf("draft should be clean after a successful commit")
	}
}

func TestController_CloseSingleFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	count := 0

	c := New(seedSettings(), seedPresets(), func(context.Context, settings.AppSettings) error {
		mu.Lock()
		count++
		mu.Unlock()
		close(started)
		<-release
		return nil
	})
	c.SetConfirmBeforeOpen(true)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = c.Close(context.Background())
	}()
	<-started

	if !c.Saving() {
		t.Fatalf("expected saving state while commit in flight")
	}
	// re-entrant close is ignored, edits stay possible
	saved, err := c.Close(context.Background())
	if saved || err != nil {
		t.Fatalf("second close must be ignored (saved=%v err=%v)", saved, err)
	}
	c.SetTerminalCommand("/bin/other")

	close(release)
	<-done

	mu.Lock()
	defer mu.Unlock()
	if count != 1 {
		t.Fatalf("expected exactly one save, got %d", count)
	}
}

func TestController_CloseSurfacesSaveFailure(t *testing.T) {
	boom := errors.New("disk full")
	c := New(seedSettings(), seedPresets(), func(context.Context, settings.AppSettings) error { return boom })
	c.SetAutoCheckUpdates(true)

	saved, err := c.Close(context.Background())
	if !saved || !errors.Is(err, boom) {
		t.Fatalf("expected surfaced failure (saved=%v err=%v)", saved, err)
	}
	// failure is not retried automatically and the draft stays dirty
	if !c.Dirty() {
		t.Fatalf("draft should remain dirty after failed commit")
	}
}

func TestController_ReseedPicksUpExternalChanges(t *testing.T) {
	c := New(seedSettings(), seedPresets(), noSave)
	c.SetTerminalCommand("/bin/changed")
	if !c.Dirty() {
		t.Fatalf("expected dirty before reseed")
	}

	updated := seedSettings()
	updated.Terminal.CommandPath = "/usr/bin/wezterm"
	c.Reseed(updated, seedPresets())

	if c.Dirty() {
		t.Fatalf("reseed must leave the draft clean")
	}
	if c.TerminalCommand() != "/usr/bin/wezterm" {
		t.Fatalf("reseed did not adopt persisted state: %q", c.TerminalCommand())
	}
}
