package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/what3words/w3w-go-wrapper/internal/logger"
	"github.com/what3words/w3w-go-wrapper/pkg/config"
	"github.com/what3words/w3w-go-wrapper/pkg/recognize"
)

// Server handles msgpack IPC for 3wa recognition.
// Requests are served one at a time in arrival order.
type Server struct {
	lookup   recognize.Lookup
	config   *config.Config
	dec      *msgpack.Decoder
	out      *bufio.Writer
	enc      *msgpack.Encoder
	log      *log.Logger
	requests int
}

// NewServer creates a server on stdin/stdout. lookup may be nil, in which
// case the valid and confirm ops are refused.
func NewServer(lookup recognize.Lookup, cfg *config.Config) *Server {
	return NewServerWithIO(lookup, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing frames to w.
func NewServerWithIO(lookup recognize.Lookup, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	out := bufio.NewWriter(w)
	return &Server{
		lookup: lookup,
		config: cfg,
		dec:    msgpack.NewDecoder(bufio.NewReader(r)),
		out:    out,
		enc:    msgpack.NewEncoder(out),
		log:    logger.New("ipc"),
	}
}

// Start writes the ready frame and serves requests until EOF or ctx is done.
// A clean EOF returns nil.
func (s *Server) Start(ctx context.Context) error {
	s.log.Debug("Starting Server.")
	s.send(Response{OK: true, Status: "ready"})

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := s.dec.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("stdin closed", "requests", s.requests)
				return nil
			}
			s.sendError("", "unreadable frame", CodeBadRequest)
			return fmt.Errorf("reading request: %w", err)
		}

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.log.Errorf("Unmarshaling request: %v", err)
			s.sendError("", "invalid request", CodeBadRequest)
			continue
		}
		s.requests++
		s.handleRequest(ctx, req)
	}
}

// Requests returns how many well-formed requests have been handled.
func (s *Server) Requests() int {
	return s.requests
}

func (s *Server) handleRequest(ctx context.Context, req Request) {
	if limit := s.config.Server.MaxInputBytes; limit > 0 && len(req.Text) > limit {
		s.sendError(req.ID, fmt.Sprintf("text exceeds %d bytes", limit), CodeTooLarge)
		return
	}

	start := time.Now()
	resp := Response{ID: req.ID}

	switch req.Op {
	case OpPossible:
		resp.OK = recognize.IsPossibleAddress(req.Text)
	case OpDidYouMean:
		resp.OK = recognize.DidYouMean(req.Text)
	case OpFind:
		for _, m := range recognize.FindPossibleAddressMatches(req.Text) {
			resp.Matches = append(resp.Matches, Match{Words: m.Words, Start: m.Start, End: m.End})
		}
		resp.OK = len(resp.Matches) > 0
	case OpValid, OpConfirm:
		if s.lookup == nil || !s.config.Server.EnableLookups {
			s.sendError(req.ID, "lookups are disabled", CodeLookupsDisabled)
			return
		}
		c, err := recognize.Confirm(ctx, s.lookup, req.Text)
		if err != nil {
			s.log.Warn("lookup failed", "id", req.ID, "err", err)
		}
		resp.OK = c == recognize.Confirmed
		if req.Op == OpConfirm {
			resp.Status = c.String()
		}
	case OpHealth:
		resp.OK = true
		resp.Status = "ok"
	default:
		s.sendError(req.ID, "unknown op: "+req.Op, CodeBadRequest)
		return
	}

	resp.TimeTaken = time.Since(start).Microseconds()
	s.log.Debug("served", "id", req.ID, "op", req.Op, "ok", resp.OK, "us", resp.TimeTaken)
	s.send(resp)
}

// send encodes one frame and flushes it so the client sees it immediately.
func (s *Server) send(v any) {
	if err := s.enc.Encode(v); err != nil {
		s.log.Errorf("Marshaling response: %v", err)
		return
	}
	if err := s.out.Flush(); err != nil {
		s.log.Errorf("Writing response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
