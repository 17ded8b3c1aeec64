package devtool

// Merge reconciles persisted tool records with freshly-detected presets into
// a single working list.
//
// Presets come first, in catalog order. A preset's descriptor (name, command,
// arguments) always wins over a stored record with the same id; only the
// stored Enabled flag survives. Presets seen for the first time default to
// enabled. Stored records whose id matches no current preset follow in their
// original order, demoted to non-preset entries when a previously detected
// tool disappears from the catalog. Ids are unique in the result.
//
// Merge never mutates its inputs.
func Merge(stored []DevTool, presets []DevToolPreset) []DevTool {
	enabledByID := make(map[string]bool, len(stored))
	for _, t := range stored {
		enabledByID[t.ID] = t.Enabled
	}

	out := make([]DevTool, 0, len(stored)+len(presets))
	presetIDs := make(map[string]bool, len(presets))
	for _, p := range presets {
		presetIDs[p.ID] = true
		enabled := true
		if v, ok := enabledByID[p.ID]; ok {
			enabled = v
		}
		out = append(out, DevTool{
			ID:          p.ID,
			Name:        p.Name,
			CommandPath: p.CommandPath,
			Arguments:   append([]string(nil), p.Arguments...),
			Enabled:     enabled,
			IsPreset:    true,
		})
	}

	for _, t := range stored {
		if presetIDs[t.ID] {
			continue
		}
		kept := t.Clone()
		kept.IsPreset = false
		out = append(out, kept)
	}

	return out
}
