//go:build darwin

package preset

import (
	"os"
	"path/filepath"

	"projctl/internal/devtool"
)

func detectOS() []devtool.DevToolPreset {
	var presets []devtool.DevToolPreset

	pushApp(&presets, "vscode", "Visual Studio Code", "Visual Studio Code")
	pushApp(&presets, "vscode-insiders", "Visual Studio Code - Insiders", "Visual Studio Code - Insiders")

	if !pushApp(&presets, "intellij-idea", "IntelliJ IDEA", "IntelliJ IDEA") {
		pushApp(&presets, "intellij-idea", "IntelliJ IDEA Community", "IntelliJ IDEA CE")
	}
	if !pushApp(&presets, "pycharm", "PyCharm", "PyCharm") {
		pushApp(&presets, "pycharm", "PyCharm Community", "PyCharm CE")
	}

	pushApp(&presets, "webstorm", "WebStorm", "WebStorm")
	pushApp(&presets, "goland", "GoLand", "GoLand")
	pushApp(&presets, "rider", "Rider", "Rider")
	pushApp(&presets, "clion", "CLion", "CLion")
	pushApp(&presets, "phpstorm", "PhpStorm", "PhpStorm")
	pushApp(&presets, "datagrip", "DataGrip", "DataGrip")

	return presets
}

// pushApp appends a preset for an app bundle under /Applications when it
// exists. Returns whether the bundle was found.
func pushApp(presets *[]devtool.DevToolPreset, id, displayName, appName string) bool {
	bundle := filepath.Join("/Applications", appName+".app")
	if _, err := os.Stat(bundle); err != nil {
		return false
	}
	*presets = append(*presets, devtool.DevToolPreset{
		ID:          id,
		Name:        displayName,
		CommandPath: "/usr/bin/open",
		Arguments:   []string{"-a", appName, devtool.PathPlaceholder},
	})
	return true
}
