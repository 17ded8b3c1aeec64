package launch

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"projctl/internal/devtool"
	"projctl/internal/settings"
)

// Process is the process-spawn primitive behind devtool.Launcher. It runs
// the resolved command with the expanded arguments and waits for exit.
type Process struct{}

var _ devtool.Launcher = Process{}

func (Process) Launch(ctx context.Context, commandPath string, arguments []string, _ string) error {
	return Run(ctx, commandPath, arguments)
}

// Run spawns commandPath with arguments and reports a non-zero exit or spawn
// failure as an error. Output is inherited; NO_COLOR avoids interactive
// prompts and pagers in launched CLIs.
func Run(ctx context.Context, commandPath string, arguments []string) error {
	if err := spawn(ctx, commandPath, arguments); err != nil {
		return fmt.Errorf("launch %s: %w", commandPath, err)
	}
	return nil
}

func runDirect(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	return cmd.Run()
}

// OpenWithDefault opens a path with the platform default handler.
func OpenWithDefault(ctx context.Context, path string) error {
	var name string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		name = "/usr/bin/open"
		args = []string{path}
	case "windows":
		name = "explorer"
		args = []string{path}
	default:
		name = "xdg-open"
		args = []string{path}
	}
	if err := runDirect(ctx, name, args...); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}

// OpenInFileManager reveals a path in the system file manager.
func OpenInFileManager(ctx context.Context, path string) error {
	if runtime.GOOS == "darwin" {
		if err := runDirect(ctx, "/usr/bin/open", "-R", path); err != nil {
			return fmt.Errorf("reveal %s: %w", path, err)
		}
		return nil
	}
	return OpenWithDefault(ctx, path)
}

// OpenInTerminal opens a terminal at path. A configured terminal launcher
// takes precedence; otherwise the platform fallback is used.
func OpenInTerminal(ctx context.Context, cfg settings.TerminalConfig, path string) error {
	if cfg.CommandPath != "" {
		args := devtool.ExpandArguments(cfg.Arguments, path)
		return Run(ctx, cfg.CommandPath, args)
	}

	switch runtime.GOOS {
	case "darwin":
		return openMacTerminal(ctx, path)
	case "windows":
		return openWindowsTerminal(ctx, path)
	default:
		return OpenWithDefault(ctx, path)
	}
}
