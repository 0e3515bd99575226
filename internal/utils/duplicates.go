package utils

import "strings"

// MatchFilter drops repeated matches, comparing case-insensitively.
// Not safe for concurrent use.
type MatchFilter struct {
	seen map[string]bool
}

// NewMatchFilter creates an empty filter.
func NewMatchFilter() *MatchFilter {
	return &MatchFilter{seen: make(map[string]bool)}
}

// ShouldInclude reports whether match has not been seen before, and records it.
func (f *MatchFilter) ShouldInclude(match string) bool {
	key := strings.ToLower(match)
	if f.seen[key] {
		return false
	}
	f.seen[key] = true
	return true
}

// Unique returns matches with repeats removed, keeping first occurrences in order.
func Unique(matches []string) []string {
	f := NewMatchFilter()
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if f.ShouldInclude(m) {
			out = append(out, m)
		}
	}
	return out
}
