// Package strings holds text helpers for the auxiliary listings printed by
// nbcli commands. Record output never goes through it.
package strings

import (
	"strings"
)

// DefaultMaxLen bounds values shown in auxiliary tables.
const DefaultMaxLen = 60

// minTruncateLen leaves room for one rune plus the ellipsis.
const minTruncateLen = 4

// SingleLine collapses every run of whitespace, newlines included, into a
// single space.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate returns s on a single line, cut to maxLen runes with a trailing
// "..." when it is longer. maxLen below 4 is raised to 4.
func Truncate(s string, maxLen int) string {
	if maxLen < minTruncateLen {
		maxLen = minTruncateLen
	}
	s = SingleLine(s)
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
