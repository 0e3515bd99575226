package what3words

import (
	"net/url"
	"strconv"
	"strings"
)

// ConvertTo3wa holds the parameters of convert-to-3wa.
type ConvertTo3wa struct {
	coordinates Coordinates
	language    string
	locale      string
}

// NewConvertTo3wa converts the point at lat, lng.
func NewConvertTo3wa(lat, lng float64) *ConvertTo3wa {
	return &ConvertTo3wa{coordinates: NewCoordinates(lat, lng)}
}

// Language sets the language of the returned 3wa.
func (c *ConvertTo3wa) Language(language string) *ConvertTo3wa {
	c.language = language
	return c
}

// Locale sets the locale of the returned 3wa.
func (c *ConvertTo3wa) Locale(locale string) *ConvertTo3wa {
	c.locale = locale
	return c
}

func (c *ConvertTo3wa) values() url.Values {
	v := url.Values{}
	v.Set("coordinates", c.coordinates.String())
	setIf(v, "language", c.language)
	setIf(v, "locale", c.locale)
	return v
}

// ConvertToCoordinates holds the parameters of convert-to-coordinates.
type ConvertToCoordinates struct {
	words  string
	locale string
}

// NewConvertToCoordinates converts words to a point.
func NewConvertToCoordinates(words string) *ConvertToCoordinates {
	return &ConvertToCoordinates{words: words}
}

// Locale sets the locale of the returned address.
func (c *ConvertToCoordinates) Locale(locale string) *ConvertToCoordinates {
	c.locale = locale
	return c
}

func (c *ConvertToCoordinates) values() url.Values {
	v := url.Values{}
	v.Set("words", c.words)
	setIf(v, "locale", c.locale)
	return v
}

// InputType tells autosuggest where its input came from.
type InputType string

const (
	InputTypeText           InputType = "text"
	InputTypeVoconHybrid    InputType = "vocon-hybrid"
	InputTypeNMDPASR        InputType = "nmdp-asr"
	InputTypeGenericVoice   InputType = "generic-voice"
	InputTypeSpeechmatics   InputType = "speechmatics"
	InputTypeMihupVoiceText InputType = "mihup"
	InputTypeOcrS           InputType = "ocr-s"
)

// Autosuggest holds the input and options of autosuggest and
// autosuggest-with-coordinates.
type Autosuggest struct {
	input             string
	nResults          int
	focus             *Coordinates
	nFocusResults     int
	clipToCountry     []string
	clipToBoundingBox *BoundingBox
	clipToCircle      *Circle
	clipToPolygon     []Coordinates
	inputType         InputType
	language          string
	preferLand        *bool
	locale            string
}

// NewAutosuggest suggests addresses for input, which may be a partial 3wa.
func NewAutosuggest(input string) *Autosuggest {
	return &Autosuggest{input: input}
}

// Input returns the text being suggested for.
func (a *Autosuggest) Input() string {
	return a.input
}

// NResults caps the number of suggestions.
func (a *Autosuggest) NResults(n int) *Autosuggest {
	a.nResults = n
	return a
}

// Focus ranks suggestions near c higher.
func (a *Autosuggest) Focus(c Coordinates) *Autosuggest {
	a.focus = &c
	return a
}

// NFocusResults sets how many results are ranked by focus.
func (a *Autosuggest) NFocusResults(n int) *Autosuggest {
	a.nFocusResults = n
	return a
}

// ClipToCountry restricts suggestions to ISO 3166-1 alpha-2 country codes.
func (a *Autosuggest) ClipToCountry(countries ...string) *Autosuggest {
	a.clipToCountry = append(a.clipToCountry, countries...)
	return a
}

// ClipToBoundingBox restricts suggestions to b.
func (a *Autosuggest) ClipToBoundingBox(b BoundingBox) *Autosuggest {
	a.clipToBoundingBox = &b
	return a
}

// ClipToCircle restricts suggestions to radiusKm around center.
func (a *Autosuggest) ClipToCircle(center Coordinates, radiusKm float64) *Autosuggest {
	a.clipToCircle = &Circle{Center: center, RadiusKm: radiusKm}
	return a
}

// ClipToPolygon restricts suggestions to a closed polygon.
func (a *Autosuggest) ClipToPolygon(points ...Coordinates) *Autosuggest {
	a.clipToPolygon = append(a.clipToPolygon, points...)
	return a
}

// InputType sets the input source.
func (a *Autosuggest) InputType(t InputType) *Autosuggest {
	a.inputType = t
	return a
}

// Language sets the language of the input.
func (a *Autosuggest) Language(language string) *Autosuggest {
	a.language = language
	return a
}

// PreferLand ranks land addresses above sea addresses.
func (a *Autosuggest) PreferLand(prefer bool) *Autosuggest {
	a.preferLand = &prefer
	return a
}

// Locale sets the locale of the input.
func (a *Autosuggest) Locale(locale string) *Autosuggest {
	a.locale = locale
	return a
}

func (a *Autosuggest) values() url.Values {
	v := a.optionValues()
	v.Set("input", a.input)
	return v
}

// optionValues returns every option except the input itself.
func (a *Autosuggest) optionValues() url.Values {
	v := url.Values{}
	if a.nResults > 0 {
		v.Set("n-results", strconv.Itoa(a.nResults))
	}
	if a.focus != nil {
		v.Set("focus", a.focus.String())
	}
	if a.nFocusResults > 0 {
		v.Set("n-focus-results", strconv.Itoa(a.nFocusResults))
	}
	if len(a.clipToCountry) > 0 {
		v.Set("clip-to-country", strings.Join(a.clipToCountry, ","))
	}
	if a.clipToBoundingBox != nil {
		v.Set("clip-to-bounding-box", a.clipToBoundingBox.String())
	}
	if a.clipToCircle != nil {
		v.Set("clip-to-circle", a.clipToCircle.String())
	}
	if len(a.clipToPolygon) > 0 {
		points := make([]string, len(a.clipToPolygon))
		for i, p := range a.clipToPolygon {
			points[i] = p.String()
		}
		v.Set("clip-to-polygon", strings.Join(points, ","))
	}
	setIf(v, "input-type", string(a.inputType))
	setIf(v, "language", a.language)
	if a.preferLand != nil {
		v.Set("prefer-land", strconv.FormatBool(*a.preferLand))
	}
	setIf(v, "locale", a.locale)
	return v
}

// AutosuggestSelection reports which suggestion a user picked.
type AutosuggestSelection struct {
	rawInput  string
	selection string
	rank      int
	options   *Autosuggest
}

// NewAutosuggestSelection records that rawInput led the user to pick s.
func NewAutosuggestSelection(rawInput string, s Suggestion) *AutosuggestSelection {
	return &AutosuggestSelection{rawInput: rawInput, selection: s.Words, rank: s.Rank}
}

// Options attaches the autosuggest options that produced the selection.
func (a *AutosuggestSelection) Options(opts *Autosuggest) *AutosuggestSelection {
	a.options = opts
	return a
}

func (a *AutosuggestSelection) values() url.Values {
	v := url.Values{}
	if a.options != nil {
		v = a.options.optionValues()
	}
	v.Set("raw-input", a.rawInput)
	v.Set("selection", a.selection)
	v.Set("rank", strconv.Itoa(a.rank))
	v.Set("source-api", "text")
	return v
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
