package what3words

import (
	"errors"
	"fmt"
)

// Kind classifies a client error.
type Kind string

const (
	KindNetwork Kind = "network" // request never got a response
	KindHTTP    Kind = "http"    // request could not be built or sent
	KindAPI     Kind = "api"     // the API answered with an error body
	KindDecode  Kind = "decode"  // response body was not what we expected
	KindUnknown Kind = "unknown"
)

// APIError is the error body returned by the what3words API:
//
//	{"error": {"code": "BadWords", "message": "..."}}
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error APIError `json:"error"`
}

// Error is returned by every Client call that fails.
type Error struct {
	Kind Kind

	// Op is the endpoint being called, e.g. "autosuggest".
	Op string

	// Status is the HTTP status code when a response was received.
	Status int

	// API holds the decoded error body for KindAPI.
	API *APIError

	// Err is the underlying error, if any.
	Err error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindAPI:
		msg = fmt.Sprintf("W3W error: %s %s", e.API.Code, e.API.Message)
	case KindNetwork:
		msg = fmt.Sprintf("Network error: %v", e.Err)
	case KindHTTP:
		msg = fmt.Sprintf("HTTP error: %v", e.Err)
	case KindDecode:
		msg = fmt.Sprintf("Decode error: %v", e.Err)
	default:
		msg = fmt.Sprintf("Unknown error: %v", e.Err)
	}
	if e.Op != "" {
		return e.Op + ": " + msg
	}
	return msg
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorKind extracts the Kind from err.
// Returns "" for nil and KindUnknown for errors not produced by this package.
func ErrorKind(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsAPIError reports whether err carries an API error with the given code.
func IsAPIError(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.API != nil && e.API.Code == code
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
