// Package cli is the interactive mode: it reads lines of text and reports
// which 3wa-shaped strings they contain, for debugging and trying things out.
package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/what3words/w3w-go-wrapper/internal/logger"
	"github.com/what3words/w3w-go-wrapper/pkg/recognize"
)

// Report is the analysis of one piece of text.
type Report struct {
	Text       string
	Possible   bool
	DidYouMean bool
	Matches    []recognize.Match

	// Looked is set when a lookup was attempted; Confirmation and LookupErr
	// are only meaningful then.
	Looked       bool
	Confirmation recognize.Confirmation
	LookupErr    error

	Took time.Duration
}

// Analyze runs every classifier over text. With a non-nil lookup the text is
// also confirmed against the API, which costs at most one request.
func Analyze(ctx context.Context, lookup recognize.Lookup, text string) Report {
	start := time.Now()
	r := Report{
		Text:       text,
		Possible:   recognize.IsPossibleAddress(text),
		DidYouMean: recognize.DidYouMean(text),
		Matches:    recognize.FindPossibleAddressMatches(text),
	}
	if lookup != nil {
		r.Looked = true
		r.Confirmation, r.LookupErr = recognize.Confirm(ctx, lookup, text)
	}
	r.Took = time.Since(start)
	return r
}

// InputHandler reads lines from its input and prints a Report for each.
type InputHandler struct {
	lookup       recognize.Lookup
	in           io.Reader
	log          *log.Logger
	showOffsets  bool
	requestCount int
}

// NewInputHandler creates a handler on stdin/stdout. A nil lookup keeps the
// session offline.
func NewInputHandler(lookup recognize.Lookup, showOffsets bool) *InputHandler {
	return NewInputHandlerWithIO(lookup, showOffsets, os.Stdin, os.Stdout)
}

// NewInputHandlerWithIO creates a handler reading from r and printing to w.
func NewInputHandlerWithIO(lookup recognize.Lookup, showOffsets bool, r io.Reader, w io.Writer) *InputHandler {
	return &InputHandler{
		lookup:      lookup,
		in:          r,
		log:         logger.NewWithConfig(w, "", log.InfoLevel, false, false, log.TextFormatter),
		showOffsets: showOffsets,
	}
}

// Start begins the interface loop. It returns nil when input ends.
func (h *InputHandler) Start(ctx context.Context) error {
	h.log.Print("w3w CLI")
	if h.lookup == nil {
		h.log.Print("offline: shape checks only, no lookups")
	}
	h.log.Print("type or paste some text and press Enter (Ctrl+C to exit):")

	reader := bufio.NewReader(h.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		h.log.Print("> ")
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			h.handleInput(ctx, line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// Requests returns the number of lines analysed.
func (h *InputHandler) Requests() int {
	return h.requestCount
}

func (h *InputHandler) handleInput(ctx context.Context, line string) {
	h.requestCount++
	log.Debug("Processing request", "text", line)

	r := Analyze(ctx, h.lookup, line)
	log.Debugf("Took [ %v ] for %q", r.Took, line)

	PrintReport(h.log, r, h.showOffsets)
}
