package preset

import (
	"os"
	"path/filepath"
	"runtime"
)

// findInPath resolves a command name against PATH and returns the full path
// of the first regular file found. On Windows, bare names are also probed
// with the common executable extensions.
func findInPath(command string) (string, bool) {
	pathVar, ok := os.LookupEnv("PATH")
	if !ok {
		return "", false
	}
	hasExt := filepath.Ext(command) != ""
	for _, dir := range filepath.SplitList(pathVar) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, command)
		if isFile(candidate) {
			return candidate, true
		}
		if runtime.GOOS == "windows" && !hasExt {
			for _, ext := range []string{".exe", ".cmd", ".bat"} {
				withExt := candidate + ext
				if isFile(withExt) {
					return withExt, true
				}
			}
		}
	}
	return "", false
}

func isFile(p string) bool {
	st, err := os.Stat(p)
	return err == nil && st.Mode().IsRegular()
}
