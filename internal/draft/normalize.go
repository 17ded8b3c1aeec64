package draft

import "strings"

// SplitArguments turns raw multi-line editor text into an argument list:
// one argument per line, trimmed, empty lines dropped, order preserved.
func SplitArguments(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// JoinArguments renders an argument list back into editor text.
func JoinArguments(arguments []string) string {
	return strings.Join(arguments, "\n")
}
