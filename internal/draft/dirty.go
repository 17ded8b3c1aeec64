package draft

import (
	"sort"

	"projctl/internal/devtool"
	"projctl/internal/settings"
)

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func identitiesEqual(a, b []settings.Identity) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Email != b[i].Email {
			return false
		}
	}
	return true
}

// toolsEqual compares two tool lists structurally under an id-sorted order:
// equal length, and for each tool by ascending id equal descriptor fields,
// flags and argument sequences.
func toolsEqual(a, b []devtool.DevTool) bool {
	if len(a) != len(b) {
		return false
	}
	as := devtool.CloneTools(a)
	bs := devtool.CloneTools(b)
	sort.Slice(as, func(i, j int) bool { return as[i].ID < as[j].ID })
	sort.Slice(bs, func(i, j int) bool { return bs[i].ID < bs[j].ID })
	for i := range as {
		x, y := as[i], bs[i]
		if x.ID != y.ID || x.Name != y.Name || x.CommandPath != y.CommandPath ||
			x.Enabled != y.Enabled || x.IsPreset != y.IsPreset {
			return false
		}
		if !stringsEqual(x.Arguments, y.Arguments) {
			return false
		}
	}
	return true
}

// settingsEqual is the dirty comparison between the derived draft snapshot
// and the baseline snapshot.
func settingsEqual(a, b settings.AppSettings) bool {
	if a.Terminal.CommandPath != b.Terminal.CommandPath {
		return false
	}
	if !stringsEqual(a.Terminal.Arguments, b.Terminal.Arguments) {
		return false
	}
	if !identitiesEqual(a.Identities, b.Identities) {
		return false
	}
	if a.AutoCheckUpdates != b.AutoCheckUpdates || a.ConfirmBeforeOpen != b.ConfirmBeforeOpen {
		return false
	}
	if a.DefaultDevToolID != b.DefaultDevToolID {
		return false
	}
	return toolsEqual(a.DevTools, b.DevTools)
}
