package devtool

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNoCommand indicates a tool record without an executable path.
	ErrNoCommand = errors.New("dev tool has no command path")
	// ErrToolDisabled indicates an invocation against a disabled tool.
	ErrToolDisabled = errors.New("dev tool is disabled")
	// ErrToolNotFound indicates an id that matches no configured tool.
	ErrToolNotFound = errors.New("dev tool not found")
	// ErrNoDefault indicates that no default tool is configured.
	ErrNoDefault = errors.New("no default dev tool configured")
)

// Launcher is the external process-spawn primitive. It receives the resolved
// command, the fully expanded argument list and the raw project path.
type Launcher interface {
	Launch(ctx context.Context, commandPath string, arguments []string, path string) error
}

// LauncherFunc adapts a function to the Launcher interface.
type LauncherFunc func(ctx context.Context, commandPath string, arguments []string, path string) error

func (f LauncherFunc) Launch(ctx context.Context, commandPath string, arguments []string, path string) error {
	return f(ctx, commandPath, arguments, path)
}

// Dispatcher validates a tool record, expands the path placeholder and hands
// the launch request to the configured Launcher. It performs no process
// spawning itself and propagates the launcher's outcome verbatim.
type Dispatcher struct {
	launcher Launcher
}

func NewDispatcher(l Launcher) *Dispatcher {
	return &Dispatcher{launcher: l}
}

// Invoke opens path with the given tool.
func (d *Dispatcher) Invoke(ctx context.Context, tool DevTool, path string) error {
	if tool.CommandPath == "" {
		return fmt.Errorf("%q: %w", tool.Name, ErrNoCommand)
	}
	if !tool.Enabled {
		return fmt.Errorf("%q: %w", tool.Name, ErrToolDisabled)
	}
	args := ExpandArguments(tool.Arguments, path)
	return d.launcher.Launch(ctx, tool.CommandPath, args, path)
}

// InvokeByID looks tool up among tools and invokes it. Unknown ids fail with
// ErrToolNotFound rather than silently no-opping.
func (d *Dispatcher) InvokeByID(ctx context.Context, tools []DevTool, id, path string) error {
	for _, t := range tools {
		if t.ID == id {
			return d.Invoke(ctx, t, path)
		}
	}
	return fmt.Errorf("%q: %w", id, ErrToolNotFound)
}

// InvokeDefault invokes the tool designated by defaultID.
func (d *Dispatcher) InvokeDefault(ctx context.Context, tools []DevTool, defaultID, path string) error {
	if defaultID == "" {
		return ErrNoDefault
	}
	return d.InvokeByID(ctx, tools, defaultID, path)
}
