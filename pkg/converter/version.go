// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package converter

import "strings"

// ParseVersion extracts the version string from a tool's version output:
// the first line, with the tool-name token stripped when it leads the line.
// "pandoc 3.1.11" becomes "3.1.11"; output that does not start with the
// tool name is returned as-is (first line, trimmed).
func ParseVersion(output, tool string) string {
	line, _, _ := strings.Cut(output, "\n")
	line = strings.TrimSpace(line)

	first, rest, found := strings.Cut(line, " ")
	if found && first == tool {
		return strings.TrimSpace(rest)
	}
	return line
}
