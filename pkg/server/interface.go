/*
Package server implements msgpack IPC for 3wa recognition.

Clients write msgpack-encoded requests to stdin and read msgpack-encoded
frames from stdout. Frames are self-delimiting msgpack values; no newline or
length prefix is used. Logs go to stderr.

# IPC

On startup the server writes a single ready frame:

	{"id": "", "ok": true, "status": "ready", "t": 0}

Every request names an op and carries the text to analyse:

	{"id": "req_001", "op": "find", "text": "meet me at filled.count.soap"}

The response echoes the id. Boolean ops answer in "ok", find lists its
matches with byte offsets into text, and "t" is the time taken in microseconds:

	{"id": "req_001", "ok": true, "matches": [{"w": "filled.count.soap", "s": 11, "e": 28}], "t": 12}

# Ops

	possible      shape check, no network
	did_you_mean  near-miss check, no network
	find          every 3wa-shaped substring, no network
	valid         shape check, then one autosuggest lookup
	confirm       like valid, with the outcome in "status"
	health        liveness, answers status "ok"

A request that cannot be served gets an error frame instead of a response:

	{"id": "req_002", "e": "unknown op: nope", "c": 400}

A frame that is valid msgpack but not a request is answered with an error
frame and the loop carries on. Bytes that are not msgpack at all cannot be
resynchronised, so the server reports them and stops.
*/
package server

// Op names accepted in Request.Op.
const (
	OpPossible   = "possible"
	OpDidYouMean = "did_you_mean"
	OpFind       = "find"
	OpValid      = "valid"
	OpConfirm    = "confirm"
	OpHealth     = "health"
)

// Error codes carried in ErrorResponse.Code.
const (
	CodeBadRequest      = 400
	CodeTooLarge        = 413
	CodeInternal        = 500
	CodeLookupsDisabled = 503
)

// Request is one client request.
type Request struct {
	ID   string `msgpack:"id"`
	Op   string `msgpack:"op"`
	Text string `msgpack:"text,omitempty"`
}

// Match is one 3wa-shaped substring with its byte offsets in the request text.
type Match struct {
	Words string `msgpack:"w"`
	Start int    `msgpack:"s"`
	End   int    `msgpack:"e"`
}

// Response answers a request that was served.
type Response struct {
	ID        string  `msgpack:"id"`
	OK        bool    `msgpack:"ok"`
	Matches   []Match `msgpack:"matches,omitempty"`
	Status    string  `msgpack:"status,omitempty"`
	TimeTaken int64   `msgpack:"t"`
}

// ErrorResponse holds basic error information for a request that could not be served.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
