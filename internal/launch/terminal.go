package launch

import (
	"context"
	"fmt"
	"strings"
)

// openMacTerminal scripts Terminal.app to cd into path and activate.
func openMacTerminal(ctx context.Context, path string) error {
	escaped := strings.ReplaceAll(path, `"`, `\"`)
	script := fmt.Sprintf("tell application \"Terminal\"\n    do script \"cd \\\"%s\\\"\"\n    activate\nend tell", escaped)
	if err := runDirect(ctx, "/usr/bin/osascript", "-e", script); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	return nil
}

// openWindowsTerminal prefers Windows Terminal and falls back to a
// PowerShell window located at path.
func openWindowsTerminal(ctx context.Context, path string) error {
	if err := runDirect(ctx, "wt.exe", "-d", path); err == nil {
		return nil
	}
	escaped := strings.ReplaceAll(path, `"`, `""`)
	command := fmt.Sprintf("Set-Location -LiteralPath \"%s\"", escaped)
	if err := runDirect(ctx, "powershell.exe", "-NoExit", "-Command", command); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	return nil
}
