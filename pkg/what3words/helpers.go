package what3words

import (
	"context"

	"github.com/what3words/w3w-go-wrapper/pkg/recognize"
)

var _ recognize.Lookup = (*Client)(nil)

// TopSuggestion asks autosuggest for a single result and returns its words.
func (c *Client) TopSuggestion(ctx context.Context, input string) (string, bool, error) {
	res, err := c.Autosuggest(ctx, NewAutosuggest(input).NResults(1))
	if err != nil {
		return "", false, err
	}
	if len(res.Suggestions) == 0 {
		return "", false, nil
	}
	return res.Suggestions[0].Words, true, nil
}

// IsPossible3wa reports whether text is shaped like a 3wa. No request is made.
func (c *Client) IsPossible3wa(text string) bool {
	return recognize.IsPossibleAddress(text)
}

// DidYouMean reports whether text looks like a mistyped 3wa. No request is made.
func (c *Client) DidYouMean(text string) bool {
	return recognize.DidYouMean(text)
}

// FindPossible3wa returns every 3wa-shaped substring of text. No request is made.
func (c *Client) FindPossible3wa(text string) []string {
	return recognize.FindPossibleAddresses(text)
}

// IsValid3wa reports whether text is a real 3wa.
// Shape-rejected text never reaches the API; otherwise at most one autosuggest request is made.
func (c *Client) IsValid3wa(ctx context.Context, text string) bool {
	return recognize.IsValidAddress(ctx, c, text)
}

// IsValid3waAsync runs IsValid3wa in the background.
func (c *Client) IsValid3waAsync(ctx context.Context, text string) <-chan bool {
	return recognize.IsValidAddressAsync(ctx, c, text)
}

// Confirm3wa is IsValid3wa that also reports why text was rejected.
func (c *Client) Confirm3wa(ctx context.Context, text string) (recognize.Confirmation, error) {
	return recognize.Confirm(ctx, c, text)
}
