package settings

import (
	"fmt"
	"strings"
)

// ParseIdentities reads one identity per line in "Name <email>" form; a bare
// line without angle brackets is treated as an email when it contains "@",
// else as a name. Empty lines are dropped, order preserved.
func ParseIdentities(raw string) []Identity {
	var out []Identity
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		id := Identity{}
		if open := strings.Index(line, "<"); open >= 0 && strings.HasSuffix(line, ">") {
			id.Name = strings.TrimSpace(line[:open])
			id.Email = strings.TrimSpace(line[open+1 : len(line)-1])
		} else if strings.Contains(line, "@") {
			id.Email = line
		} else {
			id.Name = line
		}
		if id.Name == "" && id.Email == "" {
			continue
		}
		out = append(out, id)
	}
	return out
}

// FormatIdentities renders identities back to editor text, one per line.
func FormatIdentities(ids []Identity) string {
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		switch {
		case id.Name != "" && id.Email != "":
			lines = append(lines, fmt.Sprintf("%s <%s>", id.Name, id.Email))
		case id.Email != "":
			lines = append(lines, id.Email)
		default:
			lines = append(lines, id.Name)
		}
	}
	return strings.Join(lines, "\n")
}
