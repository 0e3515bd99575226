// Package what3words is a client for the what3words v3 REST API.
package what3words

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// Version is the wrapper version sent in the X-W3W-Wrapper header.
	Version = "1.0.0"

	// DefaultHost is the public what3words API.
	DefaultHost = "https://api.what3words.com/v3"

	// DefaultTimeout bounds every request made by a Client built with New.
	DefaultTimeout = 30 * time.Second

	wrapperHeader = "X-W3W-Wrapper"
	apiKeyHeader  = "X-Api-Key"
)

// Client calls the what3words API. It is safe for concurrent use.
type Client struct {
	apiKey     string
	host       string
	headers    http.Header
	httpClient *http.Client
	log        *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHost points the client at another API host, such as a self-hosted instance.
func WithHost(host string) Option {
	return func(c *Client) {
		c.host = strings.TrimRight(host, "/")
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger routes request logging to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// New returns a Client authenticating with apiKey.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		host:       DefaultHost,
		headers:    http.Header{},
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Host returns the API host the client talks to.
func (c *Client) Host() string {
	return c.host
}

// ConvertTo3wa returns the 3wa of a point.
func (c *Client) ConvertTo3wa(ctx context.Context, opts *ConvertTo3wa) (*Address, error) {
	var out Address
	if err := c.get(ctx, "convert-to-3wa", opts.values(), FormatJSON, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConvertTo3waGeoJSON is ConvertTo3wa with a GeoJSON response.
func (c *Client) ConvertTo3waGeoJSON(ctx context.Context, opts *ConvertTo3wa) (*AddressGeoJSON, error) {
	var out AddressGeoJSON
	if err := c.get(ctx, "convert-to-3wa", opts.values(), FormatGeoJSON, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConvertToCoordinates returns the point and square of a 3wa.
func (c *Client) ConvertToCoordinates(ctx context.Context, opts *ConvertToCoordinates) (*Address, error) {
	var out Address
	if err := c.get(ctx, "convert-to-coordinates", opts.values(), FormatJSON, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConvertToCoordinatesGeoJSON is ConvertToCoordinates with a GeoJSON response.
func (c *Client) ConvertToCoordinatesGeoJSON(ctx context.Context, opts *ConvertToCoordinates) (*AddressGeoJSON, error) {
	var out AddressGeoJSON
	if err := c.get(ctx, "convert-to-coordinates", opts.values(), FormatGeoJSON, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AvailableLanguages lists the languages and locales the API supports.
func (c *Client) AvailableLanguages(ctx context.Context) (*AvailableLanguages, error) {
	var out AvailableLanguages
	if err := c.get(ctx, "available-languages", url.Values{}, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GridSection returns the grid lines inside box.
func (c *Client) GridSection(ctx context.Context, box BoundingBox) (*GridSection, error) {
	var out GridSection
	v := url.Values{"bounding-box": {box.String()}}
	if err := c.get(ctx, "grid-section", v, FormatJSON, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GridSectionGeoJSON is GridSection with a GeoJSON response.
func (c *Client) GridSectionGeoJSON(ctx context.Context, box BoundingBox) (*GridSectionGeoJSON, error) {
	var out GridSectionGeoJSON
	v := url.Values{"bounding-box": {box.String()}}
	if err := c.get(ctx, "grid-section", v, FormatGeoJSON, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Autosuggest returns ranked 3wa suggestions for a full or partial input.
func (c *Client) Autosuggest(ctx context.Context, opts *Autosuggest) (*AutosuggestResult, error) {
	var out AutosuggestResult
	if err := c.get(ctx, "autosuggest", opts.values(), "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AutosuggestWithCoordinates is Autosuggest with each suggestion's square and point filled in.
// It is billed as a convert-to-coordinates call per suggestion.
func (c *Client) AutosuggestWithCoordinates(ctx context.Context, opts *Autosuggest) (*AutosuggestResult, error) {
	var out AutosuggestResult
	if err := c.get(ctx, "autosuggest-with-coordinates", opts.values(), "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AutosuggestSelection tells the API which suggestion the user picked.
func (c *Client) AutosuggestSelection(ctx context.Context, sel *AutosuggestSelection) error {
	return c.get(ctx, "autosuggest-selection", sel.values(), "", nil)
}

// get performs a GET on path and decodes a 2xx body into out.
// A nil out or an empty body is success with nothing to decode.
func (c *Client) get(ctx context.Context, path string, params url.Values, format Format, out any) error {
	if format != "" {
		params.Set("format", string(format))
	}
	endpoint := c.host + "/" + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return newError(KindHTTP, path, fmt.Errorf("failed to create request: %w", err))
	}
	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(wrapperHeader, userAgent())
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("request failed", "op", path, "err", err)
		return newError(KindNetwork, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Op: path, Status: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}
	c.log.Debug("request done", "op", path, "status", resp.StatusCode, "bytes", len(body), "took", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er errorResponse
		if err := json.Unmarshal(body, &er); err != nil || er.Error.Code == "" {
			if err == nil {
				err = errors.New("missing error code")
			}
			return &Error{
				Kind:   KindDecode,
				Op:     path,
				Status: resp.StatusCode,
				Err:    fmt.Errorf("status %d: %w: %s", resp.StatusCode, err, truncate(body, 200)),
			}
		}
		return &Error{Kind: KindAPI, Op: path, Status: resp.StatusCode, API: &er.Error}
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindDecode, Op: path, Status: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return nil
}

func userAgent() string {
	return fmt.Sprintf("what3words-go/%s (%s)", Version, runtime.GOOS)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
