package system

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

type GitInfo struct {
	InRepo bool
	Branch string
	Dirty  bool
}

// GetGitInfo inspects the Git repository at dir and returns basic status
// for display alongside a project path. Absence of git is not an error.
func GetGitInfo(ctx context.Context, dir string) (GitInfo, error) {
	gi := GitInfo{}

	if _, err := exec.LookPath("git"); err != nil {
		return gi, nil
	}

	run := func(args ...string) (string, error) {
		cctx, cancel := context.WithTimeout(ctx, 800*time.Millisecond)
		defer cancel()
		full := append([]string{"-C", dir}, args...)
		out, err := exec.CommandContext(cctx, "git", full...).CombinedOutput()
		return strings.TrimSpace(string(out)), err
	}

	if out, err := run("rev-parse", "--is-inside-work-tree"); err != nil || out != "true" {
		return gi, nil
	}
	gi.InRepo = true

	if out, err := run("symbolic-ref", "--quiet", "--short", "HEAD"); err == nil {
		gi.Branch = out
	} else if out, err := run("rev-parse", "--abbrev-ref", "HEAD"); err == nil {
		// detached head fallback
		gi.Branch = out
	}

	if out, err := run("status", "--porcelain"); err == nil {
		gi.Dirty = out != ""
	}

	return gi, nil
}
