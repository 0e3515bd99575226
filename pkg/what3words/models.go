package what3words

import (
	"fmt"
	"strconv"
	"strings"
)

// Format selects the response shape of endpoints that offer both.
type Format string

const (
	FormatJSON    Format = "json"
	FormatGeoJSON Format = "geojson"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewCoordinates returns the point at lat, lng.
func NewCoordinates(lat, lng float64) Coordinates {
	return Coordinates{Lat: lat, Lng: lng}
}

// String formats the point the way the API takes it: "lat,lng".
func (c Coordinates) String() string {
	return formatFloat(c.Lat) + "," + formatFloat(c.Lng)
}

// ParseCoordinates parses "lat,lng", the form String produces.
func ParseCoordinates(s string) (Coordinates, error) {
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinates{}, fmt.Errorf("coordinates %q: want lat,lng", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("coordinates %q: latitude: %w", s, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("coordinates %q: longitude: %w", s, err)
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Coordinates{}, fmt.Errorf("coordinates %q: out of range", s)
	}
	return Coordinates{Lat: lat, Lng: lng}, nil
}

// Square is the 3m x 3m cell of an address.
type Square struct {
	Southwest Coordinates `json:"southwest"`
	Northeast Coordinates `json:"northeast"`
}

// Address is the json form of convert-to-3wa and convert-to-coordinates.
type Address struct {
	Country      string      `json:"country"`
	Square       Square      `json:"square"`
	NearestPlace string      `json:"nearestPlace"`
	Coordinates  Coordinates `json:"coordinates"`
	Words        string      `json:"words"`
	Language     string      `json:"language"`
	Locale       string      `json:"locale,omitempty"`
	Map          string      `json:"map"`
}

// Feature is a GeoJSON feature with geometry G.
type Feature[G any] struct {
	BBox       []float64      `json:"bbox,omitempty"`
	Geometry   G              `json:"geometry"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
}

// Point is a GeoJSON point geometry, coordinates in [lng, lat] order.
type Point struct {
	Coordinates [2]float64 `json:"coordinates"`
	Type        string     `json:"type"`
}

// MultiLineString is a GeoJSON multi line geometry.
type MultiLineString struct {
	Coordinates [][][]float64 `json:"coordinates"`
	Type        string        `json:"type"`
}

// AddressGeoJSON is the geojson form of convert-to-3wa and convert-to-coordinates.
type AddressGeoJSON struct {
	Features []Feature[Point] `json:"features"`
	Type     string           `json:"type"`
}

// Words returns the 3wa of the first feature, or "".
func (a *AddressGeoJSON) Words() string {
	if len(a.Features) == 0 {
		return ""
	}
	w, _ := a.Features[0].Properties["words"].(string)
	return w
}

// Locale is a regional variant of a language.
type Locale struct {
	NativeName string `json:"nativeName"`
	Code       string `json:"code"`
	Name       string `json:"name"`
}

// Language is one entry of available-languages.
type Language struct {
	NativeName string   `json:"nativeName"`
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	Locales    []Locale `json:"locales,omitempty"`
}

// AvailableLanguages is the available-languages response.
type AvailableLanguages struct {
	Languages []Language `json:"languages"`
}

// Line is one grid line.
type Line struct {
	Start Coordinates `json:"start"`
	End   Coordinates `json:"end"`
}

// GridSection is the json form of grid-section.
type GridSection struct {
	Lines []Line `json:"lines"`
}

// GridSectionGeoJSON is the geojson form of grid-section.
type GridSectionGeoJSON struct {
	Features []Feature[MultiLineString] `json:"features"`
	Type     string                     `json:"type"`
}

// Suggestion is one autosuggest candidate.
type Suggestion struct {
	Country           string       `json:"country"`
	NearestPlace      string       `json:"nearestPlace"`
	Words             string       `json:"words"`
	Rank              int          `json:"rank"`
	Language          string       `json:"language"`
	Locale            string       `json:"locale,omitempty"`
	DistanceToFocusKm *float64     `json:"distanceToFocusKm,omitempty"`
	Square            *Square      `json:"square,omitempty"`
	Coordinates       *Coordinates `json:"coordinates,omitempty"`
	Map               string       `json:"map,omitempty"`
}

// AutosuggestResult is the autosuggest response.
type AutosuggestResult struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// BoundingBox is a rectangle given by its south-west and north-east corners.
type BoundingBox struct {
	Southwest Coordinates
	Northeast Coordinates
}

// NewBoundingBox returns the box from (swLat, swLng) to (neLat, neLng).
func NewBoundingBox(swLat, swLng, neLat, neLng float64) BoundingBox {
	return BoundingBox{
		Southwest: Coordinates{Lat: swLat, Lng: swLng},
		Northeast: Coordinates{Lat: neLat, Lng: neLng},
	}
}

func (b BoundingBox) String() string {
	return b.Southwest.String() + "," + b.Northeast.String()
}

// Circle is a clipping circle.
type Circle struct {
	Center   Coordinates
	RadiusKm float64
}

func (c Circle) String() string {
	return fmt.Sprintf("%s,%s", c.Center, formatFloat(c.RadiusKm))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
