package what3words

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinates(t *testing.T) {
	testCases := []struct {
		input       string
		expected    Coordinates
		wantErr     bool
		description string
	}{
		{"51.520847,-0.195521", Coordinates{51.520847, -0.195521}, false, "Plain"},
		{" 51.5 , -0.1 ", Coordinates{51.5, -0.1}, false, "Spaces"},
		{"0,0", Coordinates{}, false, "Origin"},
		{"filled.count.soap", Coordinates{}, true, "Words"},
		{"51.5", Coordinates{}, true, "Missing longitude"},
		{"91,0", Coordinates{}, true, "Latitude out of range"},
		{"0,181", Coordinates{}, true, "Longitude out of range"},
		{"a,b", Coordinates{}, true, "Not numbers"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got, err := ParseCoordinates(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestCoordinatesStringRoundTrip(t *testing.T) {
	c := NewCoordinates(-33.8688, 151.2093)
	assert.Equal(t, "-33.8688,151.2093", c.String())

	parsed, err := ParseCoordinates(c.String())
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestGridSectionGeoJSONDecode(t *testing.T) {
	body := `{"features": [{"geometry": {"coordinates": [[[0.1, 52.2], [0.2, 52.2]]], "type": "MultiLineString"},
		"type": "Feature", "properties": {}}], "type": "FeatureCollection"}`

	var g GridSectionGeoJSON
	require.NoError(t, json.Unmarshal([]byte(body), &g))
	require.Len(t, g.Features, 1)
	assert.Equal(t, "MultiLineString", g.Features[0].Geometry.Type)
	assert.Equal(t, [][][]float64{{{0.1, 52.2}, {0.2, 52.2}}}, g.Features[0].Geometry.Coordinates)
}

func TestAddressGeoJSONWordsEmpty(t *testing.T) {
	var a AddressGeoJSON
	assert.Empty(t, a.Words())
}
