package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/what3words/w3w-go-wrapper/pkg/recognize"
)

type echoLookup struct {
	err   error
	calls int
}

func (e *echoLookup) TopSuggestion(_ context.Context, input string) (string, bool, error) {
	e.calls++
	if e.err != nil {
		return "", false, e.err
	}
	return input, true, nil
}

func TestAnalyze(t *testing.T) {
	testCases := []struct {
		text        string
		possible    bool
		didYouMean  bool
		matches     int
		description string
	}{
		{"filled.count.soap", true, true, 1, "Exact 3wa"},
		{"///filled.count.soap", true, false, 1, "Prefixed 3wa"},
		{"filled-count-soap", false, true, 0, "Near miss"},
		{"go to filled.count.soap and deed.tulip.judge", false, false, 2, "Prose"},
		{"nothing here", false, false, 0, "No address"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			r := Analyze(context.Background(), nil, tc.text)
			assert.Equal(t, tc.possible, r.Possible)
			assert.Equal(t, tc.didYouMean, r.DidYouMean)
			assert.Len(t, r.Matches, tc.matches)
			assert.False(t, r.Looked)
		})
	}
}

func TestAnalyzeWithLookup(t *testing.T) {
	lookup := &echoLookup{}
	r := Analyze(context.Background(), lookup, "filled.count.soap")
	assert.True(t, r.Looked)
	assert.Equal(t, recognize.Confirmed, r.Confirmation)

	r = Analyze(context.Background(), lookup, "no address")
	assert.Equal(t, recognize.ShapeRejected, r.Confirmation)
	assert.Equal(t, 1, lookup.calls)
}

func TestInputHandler(t *testing.T) {
	in := strings.NewReader("filled.count.soap\n\n   \nsend it to deed.tulip.judge please")
	var out bytes.Buffer

	h := NewInputHandlerWithIO(nil, true, in, &out)
	require.NoError(t, h.Start(context.Background()))

	assert.Equal(t, 2, h.Requests(), "blank lines skipped, last line read without newline")
	s := out.String()
	assert.Contains(t, s, "offline")
	assert.Contains(t, s, "filled.count.soap")
	assert.Contains(t, s, "deed.tulip.judge")
	assert.Contains(t, s, "[11:27]")
}

func TestInputHandlerLookupFailure(t *testing.T) {
	var out bytes.Buffer
	lookup := &echoLookup{err: errors.New("connection refused")}

	h := NewInputHandlerWithIO(lookup, false, strings.NewReader("filled.count.soap\n"), &out)
	require.NoError(t, h.Start(context.Background()))

	assert.Contains(t, out.String(), "lookup_failed")
	assert.Contains(t, out.String(), "connection refused")
	assert.NotContains(t, out.String(), "offline")
}

func TestHighlight(t *testing.T) {
	text := "a filled.count.soap b deed.tulip.judge c"
	matches := recognize.FindPossibleAddressMatches(text)
	require.Len(t, matches, 2)

	got := Highlight(text, matches)
	assert.True(t, strings.HasPrefix(got, "a "))
	assert.True(t, strings.HasSuffix(got, " c"))
	assert.Less(t, strings.Index(got, "filled.count.soap"), strings.Index(got, "deed.tulip.judge"))

	assert.Equal(t, "plain", Highlight("plain", nil))
}

func TestPrintMatchesDedupes(t *testing.T) {
	var out bytes.Buffer
	h := NewInputHandlerWithIO(nil, false, strings.NewReader(""), &out)

	text := "filled.count.soap then Filled.Count.Soap"
	PrintMatches(h.log, recognize.FindPossibleAddressMatches(text), false)
	assert.Equal(t, 1, strings.Count(out.String(), "1."))
	assert.NotContains(t, out.String(), " 2.")
}
