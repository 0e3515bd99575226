// Package recognize is the core, deciding whether text looks like a three word address (3wa),
// pulling every 3wa-shaped token out of free text and confirming candidates against the API.
//
// Everything except the confirmer is pure and allocation-light. Patterns are compiled once at
// package init and shared by all goroutines.
package recognize

import "slices"

// Match is a 3wa-shaped substring found in a larger text.
// Start and End are byte offsets into the scanned text, End exclusive.
type Match struct {
	Words string
	Start int
	End   int
}

// IsPossibleAddress reports whether input has the shape of a 3wa:
// three word groups joined by two separators, optionally prefixed with slashes.
// A word group may hold up to four tokens joined by a space or NBSP.
func IsPossibleAddress(input string) bool {
	return possibleRegex.MatchString(input)
}

// DidYouMean reports whether input looks like a 3wa typed with the wrong
// separators, e.g. "filled count soap" or "filled-count-soap".
func DidYouMean(input string) bool {
	return didYouMeanRegex.MatchString(input)
}

// FindPossibleAddresses returns every non-overlapping 3wa-shaped substring of text,
// in order of appearance. The result is never nil.
func FindPossibleAddresses(text string) []string {
	found := findRegex.FindAllString(text, -1)
	if found == nil {
		return []string{}
	}
	return found
}

// FindPossibleAddressMatches is FindPossibleAddresses with byte offsets.
func FindPossibleAddressMatches(text string) []Match {
	locs := findRegex.FindAllStringIndex(text, -1)
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, Match{
			Words: text[loc[0]:loc[1]],
			Start: loc[0],
			End:   loc[1],
		})
	}
	return matches
}

// IsSeparator reports whether r may separate the words of a 3wa.
func IsSeparator(r rune) bool {
	return slices.Contains(separators, r)
}
