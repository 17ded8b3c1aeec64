//go:build windows

package preset

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"projctl/internal/devtool"
)

func detectOS() []devtool.DevToolPreset {
	var presets []devtool.DevToolPreset

	if path, ok := findVSCode(); ok {
		presets = append(presets, windowsPreset("vscode", "Visual Studio Code", path))
	}
	if path, ok := findVSCodeInsiders(); ok {
		presets = append(presets, windowsPreset("vscode-insiders", "Visual Studio Code - Insiders", path))
	}

	if path, ok := firstOf(
		func() (string, bool) { return findToolboxExe("IDEA-U", "idea64.exe") },
		func() (string, bool) { return findToolboxExe("IDEA-C", "idea64.exe") },
		func() (string, bool) { return findInstallExe("idea64.exe") },
	); ok {
		name := "IntelliJ IDEA"
		if strings.Contains(strings.ToLower(path), "idea-c") {
			name = "IntelliJ IDEA Community"
		}
		presets = append(presets, windowsPreset("intellij-idea", name, path))
	}

	if path, ok := firstOf(
		func() (string, bool) { return findToolboxExe("PyCharm-P", "pycharm64.exe") },
		func() (string, bool) { return findToolboxExe("PyCharm-C", "pycharm64.exe") },
		func() (string, bool) { return findInstallExe("pycharm64.exe") },
	); ok {
		name := "PyCharm"
		if strings.Contains(strings.ToLower(path), "pycharm-c") {
			name = "PyCharm Community"
		}
		presets = append(presets, windowsPreset("pycharm", name, path))
	}

	addJetBrains(&presets, "webstorm", "WebStorm", "WebStorm", "webstorm64.exe")
	addJetBrains(&presets, "goland", "GoLand", "GoLand", "goland64.exe")
	addJetBrains(&presets, "rider", "Rider", "Rider", "rider64.exe")
	addJetBrains(&presets, "clion", "CLion", "CLion", "clion64.exe")
	addJetBrains(&presets, "phpstorm", "PhpStorm", "PhpStorm", "phpstorm64.exe")
	addJetBrains(&presets, "datagrip", "DataGrip", "DataGrip", "datagrip64.exe")

	return presets
}

func windowsPreset(id, name, commandPath string) devtool.DevToolPreset {
	return devtool.DevToolPreset{
		ID:          id,
		Name:        name,
		CommandPath: commandPath,
		Arguments:   []string{devtool.PathPlaceholder},
	}
}

func firstOf(fns ...func() (string, bool)) (string, bool) {
	for _, fn := range fns {
		if p, ok := fn(); ok {
			return p, true
		}
	}
	return "", false
}

func addJetBrains(presets *[]devtool.DevToolPreset, id, name, toolboxCode, exeName string) {
	if path, ok := firstOf(
		func() (string, bool) { return findToolboxExe(toolboxCode, exeName) },
		func() (string, bool) { return findInstallExe(exeName) },
	); ok {
		*presets = append(*presets, windowsPreset(id, name, path))
	}
}

func findVSCode() (string, bool) {
	if p, ok := findUnderRoots(
		[]string{"ProgramFiles", "ProgramFiles(x86)", "LOCALAPPDATA"},
		[]string{
			filepath.Join("Microsoft VS Code", "Code.exe"),
			filepath.Join("Programs", "Microsoft VS Code", "Code.exe"),
		},
	); ok {
		return p, true
	}
	return findInPath("code")
}

func findVSCodeInsiders() (string, bool) {
	if p, ok := findUnderRoots(
		[]string{"ProgramFiles", "ProgramFiles(x86)", "LOCALAPPDATA"},
		[]string{
			filepath.Join("Microsoft VS Code Insiders", "Code - Insiders.exe"),
			filepath.Join("Programs", "Microsoft VS Code Insiders", "Code - Insiders.exe"),
		},
	); ok {
		return p, true
	}
	return findInPath("code-insiders")
}

func findUnderRoots(envKeys []string, suffixes []string) (string, bool) {
	for _, key := range envKeys {
		root := os.Getenv(key)
		if root == "" {
			continue
		}
		for _, suffix := range suffixes {
			candidate := filepath.Join(root, suffix)
			if isFile(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

// findToolboxExe locates a JetBrains Toolbox install, preferring the latest
// build directory under ch-0.
func findToolboxExe(productCode, exeName string) (string, bool) {
	local := os.Getenv("LOCALAPPDATA")
	if local == "" {
		return "", false
	}
	base := filepath.Join(local, "JetBrains", "Toolbox", "apps", productCode, "ch-0")
	entries, err := os.ReadDir(base)
	if err != nil {
		return "", false
	}
	var builds []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if isFile(filepath.Join(base, e.Name(), "bin", exeName)) {
			builds = append(builds, e.Name())
		}
	}
	if len(builds) == 0 {
		return "", false
	}
	sort.Strings(builds)
	exe := filepath.Join(base, builds[len(builds)-1], "bin", exeName)
	if isFile(exe) {
		return exe, true
	}
	return "", false
}

func findInstallExe(exeName string) (string, bool) {
	var roots []string
	if p := os.Getenv("ProgramFiles"); p != "" {
		roots = append(roots, filepath.Join(p, "JetBrains"))
	}
	if p := os.Getenv("ProgramFiles(x86)"); p != "" {
		roots = append(roots, filepath.Join(p, "JetBrains"))
	}
	if p := os.Getenv("LOCALAPPDATA"); p != "" {
		roots = append(roots, filepath.Join(p, "JetBrains"))
		roots = append(roots, filepath.Join(p, "Programs", "JetBrains"))
	}
	for _, root := range roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			candidate := filepath.Join(root, e.Name(), "bin", exeName)
			if isFile(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}
