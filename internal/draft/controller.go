package draft

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"projctl/internal/devtool"
	"projctl/internal/settings"
)

var (
	// ErrPresetReadOnly is returned for edit operations on preset-origin
	// records; only their enabled flag is user-controlled.
	ErrPresetReadOnly = errors.New("preset tools are read-only")
	// ErrUnknownTool is returned for operations addressing an id that is
	// not in the working list.
	ErrUnknownTool = errors.New("unknown tool id")
)

// SaveFunc is the persistence collaborator invoked on commit.
type SaveFunc func(ctx context.Context, s settings.AppSettings) error

// Controller holds the editable working copy of the settings, decoupled
// from the persisted snapshot until an explicit close. All mutations are
// synchronous single state transitions; only the commit suspends. The draft
// is owned by one settings-editing session.
type Controller struct {
	save SaveFunc

	// editable working state
	tools        []devtool.DevTool
	defaultID    string
	terminalPath string // raw text, trimmed at fold time
	terminalArgs string // raw multi-line text, normalized at fold time
	identities   []settings.Identity
	autoCheck    bool
	confirmOpen  bool

	// snapshot of the derived settings right after the last (re)seed;
	// the dirty check compares against this
	baseline settings.AppSettings

	// single-flight guard for commit-on-close
	closing atomic.Bool
}

// New seeds a controller from the persisted settings and the current preset
// catalog. save is invoked on commit.
func New(persisted settings.AppSettings, presets []devtool.DevToolPreset, save SaveFunc) *Controller {
	c := &Controller{save: save}
	c.Reseed(persisted, presets)
	return c
}

// Reseed re-derives the working copy: the tool list is re-merged against the
// latest preset catalog and every other editable field is taken verbatim
// from the persisted settings. The draft is clean afterwards.
func (c *Controller) Reseed(persisted settings.AppSettings, presets []devtool.DevToolPreset) {
	c.tools = devtool.Merge(persisted.DevTools, presets)
	c.defaultID = persisted.DefaultDevToolID
	c.terminalPath = persisted.Terminal.CommandPath
	c.terminalArgs = JoinArguments(persisted.Terminal.Arguments)
	c.identities = append([]settings.Identity(nil), persisted.Identities...)
	c.autoCheck = persisted.AutoCheckUpdates
	c.confirmOpen = persisted.ConfirmBeforeOpen
	c.ensureDefault()
	c.baseline = c.Next()
}

// Next folds every editable field into a full settings record.
func (c *Controller) Next() settings.AppSettings {
	next := settings.AppSettings{
		DevTools:         devtool.CloneTools(c.tools),
		DefaultDevToolID: c.defaultID,
		Terminal: settings.TerminalConfig{
			CommandPath: strings.TrimSpace(c.terminalPath),
			Arguments:   SplitArguments(c.terminalArgs),
		},
		Identities:        normalizeIdentities(c.identities),
		AutoCheckUpdates:  c.autoCheck,
		ConfirmBeforeOpen: c.confirmOpen,
	}
	return next
}

// Dirty reports whether there is anything to save.
func (c *Controller) Dirty() bool {
	return !settingsEqual(c.Next(), c.baseline)
}

// Saving reports whether a commit is currently in flight.
func (c *Controller) Saving() bool { return c.closing.Load() }

// Close commits the draft when dirty. A second close request while a commit
// is in flight is ignored. The save outcome is returned for surfacing but a
// failure does not keep the surface open and is not retried; saved reports
// whether a save was attempted.
func (c *Controller) Close(ctx context.Context) (saved bool, err error) {
	if !c.closing.CompareAndSwap(false, true) {
		return false, nil
	}
	defer c.closing.Store(false)

	if !c.Dirty() {
		return false, nil
	}
	next := c.Next()
	if err := c.save(ctx, next); err != nil {
		return true, fmt.Errorf("save settings: %w", err)
	}
	// the save func received next; keep an independent baseline copy
	c.baseline = next.Clone()
	return true, nil
}

// Tools returns the working tool list for rendering.
func (c *Controller) Tools() []devtool.DevTool { return devtool.CloneTools(c.tools) }

// DefaultID returns the working default tool id.
func (c *Controller) DefaultID() string { return c.defaultID }

// Identities returns the working identity list.
func (c *Controller) Identities() []settings.Identity {
	return append([]settings.Identity(nil), c.identities...)
}

// TerminalCommand returns the raw terminal launcher command text.
func (c *Controller) TerminalCommand() string { return c.terminalPath }

// TerminalArguments returns the raw terminal launcher argument text.
func (c *Controller) TerminalArguments() string { return c.terminalArgs }

// AutoCheckUpdates returns the working auto-check toggle.
func (c *Controller) AutoCheckUpdates() bool { return c.autoCheck }

// ConfirmBeforeOpen returns the working confirm toggle.
func (c *Controller) ConfirmBeforeOpen() bool { return c.confirmOpen }

// AddTool appends a fresh custom tool and returns its id.
func (c *Controller) AddTool() string {
	t := devtool.NewCustom()
	c.tools = append(c.tools, t)
	return t.ID
}

// UpdateTool replaces the editable fields of a custom tool. The argument
// text is raw multi-line editor input.
func (c *Controller) UpdateTool(id, name, commandPath, argsText string) error {
	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%q: %w", id, ErrUnknownTool)
	}
	if c.tools[i].IsPreset {
		return fmt.Errorf("%q: %w", id, ErrPresetReadOnly)
	}
	c.tools[i].Name = strings.TrimSpace(name)
	c.tools[i].CommandPath = strings.TrimSpace(commandPath)
	c.tools[i].Arguments = SplitArguments(argsText)
	c.ensureDefault()
	return nil
}

// ToggleTool flips the enabled flag of any tool, preset or custom.
func (c *Controller) ToggleTool(id string) error {
	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%q: %w", id, ErrUnknownTool)
	}
	c.tools[i].Enabled = !c.tools[i].Enabled
	c.ensureDefault()
	return nil
}

// RemoveTool deletes a custom tool from the working list.
func (c *Controller) RemoveTool(id string) error {
	i := c.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%q: %w", id, ErrUnknownTool)
	}
	if c.tools[i].IsPreset {
		return fmt.Errorf("%q: %w", id, ErrPresetReadOnly)
	}
	c.tools = append(c.tools[:i], c.tools[i+1:]...)
	c.ensureDefault()
	return nil
}

// SetDefault designates the default tool. Ids that do not reference an
// enabled tool are corrected by the consistency invariant.
func (c *Controller) SetDefault(id string) {
	c.defaultID = id
	c.ensureDefault()
}

// SetTerminalCommand replaces the terminal launcher command text.
func (c *Controller) SetTerminalCommand(raw string) { c.terminalPath = raw }

// SetTerminalArguments replaces the terminal launcher argument text.
func (c *Controller) SetTerminalArguments(raw string) { c.terminalArgs = raw }

// SetAutoCheckUpdates sets the auto update-check toggle.
func (c *Controller) SetAutoCheckUpdates(v bool) { c.autoCheck = v }

// SetConfirmBeforeOpen sets the confirm-before-open toggle.
func (c *Controller) SetConfirmBeforeOpen(v bool) { c.confirmOpen = v }

// SetIdentities replaces the whole identity list (bulk editor surfaces).
func (c *Controller) SetIdentities(ids []settings.Identity) {
	c.identities = append([]settings.Identity(nil), ids...)
}

// AddIdentity appends an empty identity row and returns its position.
func (c *Controller) AddIdentity() int {
	c.identities = append(c.identities, settings.Identity{})
	return len(c.identities) - 1
}

// UpdateIdentity replaces the identity at position i.
func (c *Controller) UpdateIdentity(i int, name, email string) error {
	if i < 0 || i >= len(c.identities) {
		return fmt.Errorf("identity %d out of range", i)
	}
	c.identities[i] = settings.Identity{Name: name, Email: email}
	return nil
}

// RemoveIdentity deletes the identity at position i.
func (c *Controller) RemoveIdentity(i int) error {
	if i < 0 || i >= len(c.identities) {
		return fmt.Errorf("identity %d out of range", i)
	}
	c.identities = append(c.identities[:i], c.identities[i+1:]...)
	return nil
}

func (c *Controller) indexOf(id string) int {
	for i, t := range c.tools {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// ensureDefault keeps the default id consistent: a non-empty default must
// reference an enabled tool, else it moves to the first enabled tool or is
// cleared. Runs after every mutation that could invalidate it.
func (c *Controller) ensureDefault() {
	if c.defaultID == "" {
		return
	}
	for _, t := range c.tools {
		if t.ID == c.defaultID && t.Enabled {
			return
		}
	}
	c.defaultID = ""
	for _, t := range c.tools {
		if t.Enabled {
			c.defaultID = t.ID
			return
		}
	}
}

func normalizeIdentities(in []settings.Identity) []settings.Identity {
	var out []settings.Identity
	for _, id := range in {
		id.Name = strings.TrimSpace(id.Name)
		id.Email = strings.TrimSpace(id.Email)
		if id.Name == "" && id.Email == "" {
			continue
		}
		out = append(out, id)
	}
	return out
}
