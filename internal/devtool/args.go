package devtool

// PathPlaceholder is the reserved argument token substituted with the target
// project path at invocation time. Substitution is whole-token only: an
// argument like "--dir={path}" is passed through literally.
const PathPlaceholder = "{path}"

// ExpandArguments produces the final argument list for a launch. Every
// argument that is exactly the placeholder token is replaced with path; when
// no argument carried the placeholder, path is appended as a trailing
// argument so tools configured without placeholder syntax still receive the
// target.
func ExpandArguments(arguments []string, path string) []string {
	out := make([]string, 0, len(arguments)+1)
	inserted := false
	for _, arg := range arguments {
		if arg == PathPlaceholder {
			out = append(out, path)
			inserted = true
			continue
		}
		out = append(out, arg)
	}
	if !inserted {
		out = append(out, path)
	}
	return out
}
