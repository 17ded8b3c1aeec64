package preset

import (
	"projctl/internal/devtool"
)

// Detect returns the dev tool presets found on this machine, in
// platform-conventional order, with user catalog overrides applied
// (extra entries appended, hidden ids removed). A tool that is not
// installed is simply absent from the result.
func Detect() []devtool.DevToolPreset {
	presets := detectOS()
	cat, err := LoadCatalog()
	if err != nil {
		return presets
	}
	return cat.Apply(presets)
}
