package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/what3words/w3w-go-wrapper/internal/utils"
	"github.com/what3words/w3w-go-wrapper/pkg/recognize"
	"github.com/what3words/w3w-go-wrapper/pkg/what3words"
)

var (
	matchStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	yesStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#56949f", Dark: "#9ccfd8"})
	noStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"})
	dimStyle = lipgloss.NewStyle().Faint(true)
)

// PrintReport writes r to l in a human readable form.
func PrintReport(l *log.Logger, r Report, showOffsets bool) {
	l.Print("possible 3wa", "ok", yesNo(r.Possible))
	l.Print("did you mean", "ok", yesNo(r.DidYouMean))

	if len(r.Matches) == 0 {
		l.Print("no 3wa-shaped text found")
	} else {
		l.Print(Highlight(r.Text, r.Matches))
		PrintMatches(l, r.Matches, showOffsets)
	}

	if r.Looked {
		switch r.Confirmation {
		case recognize.LookupFailed:
			l.Print("lookup", "status", noStyle.Render(r.Confirmation.String()), "err", r.LookupErr)
		case recognize.Confirmed:
			l.Print("lookup", "status", yesStyle.Render(r.Confirmation.String()))
		default:
			l.Print("lookup", "status", noStyle.Render(r.Confirmation.String()))
		}
	}
}

// PrintMatches lists matches once each, in order of first appearance.
func PrintMatches(l *log.Logger, matches []recognize.Match, showOffsets bool) {
	filter := utils.NewMatchFilter()
	n := 0
	for _, m := range matches {
		if !showOffsets && !filter.ShouldInclude(m.Words) {
			continue
		}
		n++
		if showOffsets {
			l.Printf("%2d. %-40s %s", n, matchStyle.Render(m.Words), dimStyle.Render(fmt.Sprintf("[%d:%d]", m.Start, m.End)))
			continue
		}
		l.Printf("%2d. %s", n, matchStyle.Render(m.Words))
	}
}

// PrintSuggestions lists autosuggest results.
func PrintSuggestions(l *log.Logger, input string, suggestions []what3words.Suggestion) {
	if len(suggestions) == 0 {
		l.Warnf("No suggestions found for '%s'", input)
		return
	}
	l.Printf("Found %d suggestions for '%s':", len(suggestions), input)
	for _, s := range suggestions {
		place := s.NearestPlace
		if s.Country != "" {
			place += ", " + s.Country
		}
		line := fmt.Sprintf("%2d. %-40s %s", s.Rank, matchStyle.Render("///"+s.Words), dimStyle.Render(place))
		if s.DistanceToFocusKm != nil {
			line += dimStyle.Render(fmt.Sprintf(" (%g km)", *s.DistanceToFocusKm))
		}
		l.Print(line)
	}
}

// Highlight returns text with every match styled. Matches must be
// non-overlapping and in order, as FindPossibleAddressMatches returns them.
func Highlight(text string, matches []recognize.Match) string {
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m.Start])
		b.WriteString(matchStyle.Render(text[m.Start:m.End]))
		last = m.End
	}
	b.WriteString(text[last:])
	return b.String()
}

func yesNo(ok bool) string {
	if ok {
		return yesStyle.Render("yes")
	}
	return noStyle.Render("no")
}
