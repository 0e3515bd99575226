package recognize

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
)

// Lookup asks the geocoder for its single best suggestion for input.
// ok is false when the geocoder had no suggestion at all.
type Lookup interface {
	TopSuggestion(ctx context.Context, input string) (words string, ok bool, err error)
}

// Confirmation is the outcome of Confirm.
type Confirmation int

const (
	// ShapeRejected means the input is not 3wa-shaped; no lookup was made.
	ShapeRejected Confirmation = iota
	// Confirmed means the top suggestion is exactly the input.
	Confirmed
	// NotAnAddress means the lookup succeeded but did not return the input.
	NotAnAddress
	// LookupFailed means the lookup returned an error.
	LookupFailed
)

func (c Confirmation) String() string {
	switch c {
	case ShapeRejected:
		return "shape_rejected"
	case Confirmed:
		return "confirmed"
	case NotAnAddress:
		return "not_an_address"
	case LookupFailed:
		return "lookup_failed"
	default:
		return "unknown"
	}
}

// Confirm checks that input is a real, resolvable 3wa.
// The shape check runs first and gates the lookup, so at most one request is made.
// The returned error is the lookup error and is only set with LookupFailed.
func Confirm(ctx context.Context, lookup Lookup, input string) (Confirmation, error) {
	if !IsPossibleAddress(input) {
		return ShapeRejected, nil
	}
	candidate := strings.TrimSpace(input)
	words, ok, err := lookup.TopSuggestion(ctx, candidate)
	if err != nil {
		log.Debugf("3wa lookup failed for %q: %v", candidate, err)
		return LookupFailed, err
	}
	if ok && words == candidate {
		return Confirmed, nil
	}
	return NotAnAddress, nil
}

// IsValidAddress reports whether input is a real 3wa.
// Lookup failures read as false; use Confirm to tell them apart.
func IsValidAddress(ctx context.Context, lookup Lookup, input string) bool {
	c, _ := Confirm(ctx, lookup, input)
	return c == Confirmed
}

// IsValidAddressAsync runs IsValidAddress on its own goroutine.
// The channel receives exactly one value and is then closed.
func IsValidAddressAsync(ctx context.Context, lookup Lookup, input string) <-chan bool {
	result := make(chan bool, 1) // buffered so an abandoned receiver never leaks the goroutine
	go func() {
		defer close(result)
		result <- IsValidAddress(ctx, lookup, input)
	}()
	return result
}
