package preset

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	tu "projctl/internal/testutil"
)

func TestFindInPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	tmp := t.TempDir()
	bin := filepath.Join(tmp, "mytool")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	defer tu.WithEnv(t, "PATH", tmp)()

	got, ok := findInPath("mytool")
	if !ok || got != bin {
		t.Fatalf("expected %s, got %q (ok=%v)", bin, got, ok)
	}

	if _, ok := findInPath("definitely-not-here"); ok {
		t.Fatalf("unexpected hit for missing command")
	}
}

func TestFindInPath_SkipsDirectories(t *testing.T) {
	tmp := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmp, "mytool"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	defer tu.WithEnv(t, "PATH", tmp)()

	if _, ok := findInPath("mytool"); ok {
		t.Fatalf("directories must not resolve as commands")
	}
}
