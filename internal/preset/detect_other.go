//go:build !darwin && !windows

package preset

import (
	"projctl/internal/devtool"
)

func detectOS() []devtool.DevToolPreset {
	var presets []devtool.DevToolPreset

	push := func(id, name, command string) {
		if commandPath, ok := findInPath(command); ok {
			presets = append(presets, devtool.DevToolPreset{
				ID:          id,
				Name:        name,
				CommandPath: commandPath,
				Arguments:   []string{devtool.PathPlaceholder},
			})
		}
	}

	push("vscode", "Visual Studio Code", "code")
	push("vscode-insiders", "Visual Studio Code - Insiders", "code-insiders")
	push("intellij-idea", "IntelliJ IDEA", "idea")
	push("webstorm", "WebStorm", "webstorm")
	push("pycharm", "PyCharm", "pycharm")
	push("goland", "GoLand", "goland")
	push("rider", "Rider", "rider")
	push("clion", "CLion", "clion")
	push("phpstorm", "PhpStorm", "phpstorm")
	push("datagrip", "DataGrip", "datagrip")

	return presets
}
