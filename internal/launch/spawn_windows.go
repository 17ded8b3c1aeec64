//go:build windows

package launch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

func isFile(p string) bool {
	st, err := os.Stat(p)
	return err == nil && st.Mode().IsRegular()
}

type commandKind int

const (
	kindDirect commandKind = iota
	kindCmd
	kindPowerShell
)

// spawn executes a command with Windows shell support: .cmd/.bat scripts run
// through cmd.exe, .ps1 through powershell.exe, and bare names that fail to
// spawn are retried with common executable extensions.
func spawn(ctx context.Context, commandPath string, arguments []string) error {
	if kind, ok := kindForExtension(commandPath); ok {
		return execKind(ctx, kind, commandPath, arguments)
	}

	err := runDirect(ctx, commandPath, arguments...)
	if err == nil {
		return nil
	}
	if kind, fallback, ok := resolveFallback(commandPath, err); ok {
		return execKind(ctx, kind, fallback, arguments)
	}
	return err
}

func execKind(ctx context.Context, kind commandKind, executable string, arguments []string) error {
	switch kind {
	case kindCmd:
		args := append([]string{"/C", executable}, arguments...)
		return runDirect(ctx, "cmd.exe", args...)
	case kindPowerShell:
		args := append([]string{"-NoProfile", "-ExecutionPolicy", "Bypass", "-File", executable}, arguments...)
		return runDirect(ctx, "powershell.exe", args...)
	default:
		return runDirect(ctx, executable, arguments...)
	}
}

func kindForExtension(commandPath string) (commandKind, bool) {
	switch strings.ToLower(filepath.Ext(commandPath)) {
	case ".cmd", ".bat":
		return kindCmd, true
	case ".ps1":
		return kindPowerShell, true
	}
	return kindDirect, false
}

// resolveFallback probes sibling files with known extensions when a bare
// command name failed with a not-found or not-executable OS error.
func resolveFallback(commandPath string, err error) (commandKind, string, bool) {
	if filepath.Ext(commandPath) != "" || !spawnErrorRetryable(err) {
		return kindDirect, "", false
	}
	for _, probe := range []struct {
		ext  string
		kind commandKind
	}{
		{".cmd", kindCmd},
		{".bat", kindCmd},
		{".ps1", kindPowerShell},
		{".exe", kindDirect},
		{".com", kindDirect},
	} {
		candidate := commandPath + probe.ext
		if isFile(candidate) {
			return probe.kind, candidate, true
		}
	}
	return kindDirect, "", false
}

func spawnErrorRetryable(err error) bool {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}
	// ERROR_FILE_NOT_FOUND, ERROR_PATH_NOT_FOUND, ERROR_BAD_EXE_FORMAT,
	// ERROR_EXE_MACHINE_TYPE_MISMATCH
	switch uintptr(errno) {
	case 2, 3, 193, 216:
		return true
	}
	return false
}
