// Package testutil provides helpers shared by tests across the module.
package testutil

import "strings"

// NormalizeQuery strips leading/trailing whitespace from every line of a
// query and drops empty lines. Query assembly cares about token order, not
// indentation, so tests compare normalized text to stay stable against
// formatting-only changes.
func NormalizeQuery(query string) string {
	var lines []string
	for _, line := range strings.Split(query, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)
	}
	return strings.Join(lines, "\n")
}
