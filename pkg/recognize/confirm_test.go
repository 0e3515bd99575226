package recognize

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLookup answers every lookup with a fixed suggestion and counts the calls.
type fakeLookup struct {
	words string
	ok    bool
	err   error
	calls atomic.Int32
	seen  []string
}

func (f *fakeLookup) TopSuggestion(_ context.Context, input string) (string, bool, error) {
	f.calls.Add(1)
	f.seen = append(f.seen, input)
	return f.words, f.ok, f.err
}

func TestConfirm(t *testing.T) {
	testCases := []struct {
		input       string
		lookup      *fakeLookup
		expected    Confirmation
		calls       int32
		description string
	}{
		{"filled.count.soap", &fakeLookup{words: "filled.count.soap", ok: true}, Confirmed, 1, "Exact top suggestion"},
		{"filled.count.sap", &fakeLookup{words: "filled.count.soap", ok: true}, NotAnAddress, 1, "Different top suggestion"},
		{"rust.is.cool", &fakeLookup{}, NotAnAddress, 1, "No suggestions"},
		{"filled.count.soap", &fakeLookup{err: errors.New("connection refused")}, LookupFailed, 1, "Lookup error"},
		{"///filled.count.soap", &fakeLookup{words: "filled.count.soap", ok: true}, NotAnAddress, 1, "Prefixed input is not the bare words"},
		{"filled.count.", &fakeLookup{words: "filled.count.soap", ok: true}, ShapeRejected, 0, "Shape gate"},
		{"not a 3wa", &fakeLookup{words: "filled.count.soap", ok: true}, ShapeRejected, 0, "Prose"},
		{"", &fakeLookup{}, ShapeRejected, 0, "Empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got, err := Confirm(context.Background(), tc.lookup, tc.input)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, tc.calls, tc.lookup.calls.Load())
			if tc.expected == LookupFailed {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidAddress(t *testing.T) {
	ctx := context.Background()

	ok := &fakeLookup{words: "filled.count.soap", ok: true}
	assert.True(t, IsValidAddress(ctx, ok, "filled.count.soap"))

	failing := &fakeLookup{err: errors.New("503 service unavailable")}
	assert.False(t, IsValidAddress(ctx, failing, "filled.count.soap"), "lookup errors read as false")
	assert.Equal(t, int32(1), failing.calls.Load())
}

// A shape-rejected input never reaches the lookup.
func TestIsValidAddressCostGate(t *testing.T) {
	lookup := &fakeLookup{words: "filled.count.soap", ok: true}
	inputs := []string{"", "filledcountsoap", "filled count soap", "filled-count-soap", "invalid.3wa.address", "a.b"}
	for _, in := range inputs {
		require.False(t, IsPossibleAddress(in))
		assert.False(t, IsValidAddress(context.Background(), lookup, in))
	}
	assert.Zero(t, lookup.calls.Load())
}

func TestConfirmSendsMultiTokenCandidate(t *testing.T) {
	lookup := &fakeLookup{words: "new york.count.soap", ok: true}
	got, err := Confirm(context.Background(), lookup, "new york.count.soap")
	require.NoError(t, err)
	assert.Equal(t, Confirmed, got)
	assert.Equal(t, []string{"new york.count.soap"}, lookup.seen)
}

func TestIsValidAddressAsync(t *testing.T) {
	lookup := &fakeLookup{words: "filled.count.soap", ok: true}

	ch := IsValidAddressAsync(context.Background(), lookup, "filled.count.soap")
	assert.True(t, <-ch)
	_, open := <-ch
	assert.False(t, open, "channel closed after the single result")

	assert.False(t, <-IsValidAddressAsync(context.Background(), lookup, "filled.count."))
	assert.Equal(t, int32(1), lookup.calls.Load())
}

func TestConfirmationString(t *testing.T) {
	assert.Equal(t, "shape_rejected", ShapeRejected.String())
	assert.Equal(t, "confirmed", Confirmed.String())
	assert.Equal(t, "not_an_address", NotAnAddress.String())
	assert.Equal(t, "lookup_failed", LookupFailed.String())
	assert.Equal(t, "unknown", Confirmation(42).String())
}
