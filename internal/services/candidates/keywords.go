// Package candidates provides the report's candidate ticker sources
package candidates

import (
	"strings"
)

// EarningsKeywords is the fixed keyword set used to identify
// earnings-related headlines. Matching is a case-insensitive substring
// test against the literal keyword, so "beats" matches "beats" but not
// "beat".
var EarningsKeywords = []string{
	"earnings",
	"reports",
	"eps",
	"revenue",
	"beats",
	"misses",
	"profit",
	"guidance",
	"quarter",
	"q1",
	"q2",
	"q3",
	"q4",
}

// LooksLikeEarnings reports whether a headline contains any of the
// earnings keywords.
func LooksLikeEarnings(title string) bool {
	t := strings.ToLower(title)
	for _, k := range EarningsKeywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}
