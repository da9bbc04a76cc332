package server

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/bastiangx/wordhunt/internal/logger"
	"github.com/bastiangx/wordhunt/internal/utils"
	"github.com/bastiangx/wordhunt/pkg/config"
	"github.com/bastiangx/wordhunt/pkg/dictionary"
	"github.com/bastiangx/wordhunt/pkg/match"
	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/vmihailenco/msgpack/v5"
)

// Error codes carried by ErrorResponse.
const (
	CodeInvalid       = 400
	CodeUnsatisfiable = 404
	CodeInternal      = 500
)

// Server handles msgpack IPC for word lookups
type Server struct {
	dict *dictionary.Dictionary
	cfg  *config.Config
	dec  *msgpack.Decoder
	enc  *msgpack.Encoder
	log  *log.Logger

	requestCount int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(dict *dictionary.Dictionary, cfg *config.Config) *Server {
	return NewServerIO(dict, cfg, os.Stdin, os.Stdout)
}

// NewServerIO creates a server reading requests from r and writing
// responses to w.
func NewServerIO(dict *dictionary.Dictionary, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		dict: dict,
		cfg:  cfg,
		dec:  msgpack.NewDecoder(r),
		enc:  msgpack.NewEncoder(w),
		log:  logger.New("server"),
	}
}

// Start serves requests until the input is closed. A frame that cannot be
// decoded ends the session, since the stream can no longer be resynced.
func (s *Server) Start() error {
	s.log.Debug("Starting Server.", "words", s.dict.Len(), "max_results", s.cfg.Server.MaxResults)

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Input closed", "requests", s.requestCount)
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			s.sendError("", "malformed request", CodeInvalid)
			return err
		}
		s.requestCount++
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	s.log.Debug("Processing request", "id", req.ID, "op", req.Op)
	start := time.Now()

	var (
		words []string
		err   error
	)
	switch req.Op {
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok", Words: s.dict.Len()})
		return
	case "keyword":
		s.handleKeyword(req, start)
		return
	case "using":
		words = s.using(req)
	case "search":
		words, err = s.search(req)
	case "wordle":
		words, err = s.wordle(req)
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown op: %s", req.Op), CodeInvalid)
		return
	}
	if err != nil {
		s.fail(req.ID, err)
		return
	}

	count := len(words)
	if limit := s.limit(req.Limit); count > limit {
		words = words[:limit]
	}
	s.send(WordsResponse{
		ID:        req.ID,
		Words:     words,
		Count:     count,
		TimeTaken: time.Since(start).Microseconds(),
	})
}

// limit clamps a requested limit to the configured maximum.
func (s *Server) limit(requested int) int {
	ceiling := s.cfg.Server.MaxResults
	if requested <= 0 || (ceiling > 0 && requested > ceiling) {
		requested = ceiling
	}
	if requested <= 0 {
		return math.MaxInt
	}
	return requested
}

func (s *Server) using(req Request) []string {
	ms := match.Using(s.dict.Words(), match.NewCharset(req.Charset), req.Min, req.Must)
	return lo.Map(ms, func(m match.Match, _ int) string { return m.Word })
}

func (s *Server) search(req Request) ([]string, error) {
	re, err := match.CompileRegexp(req.Pattern)
	if err != nil {
		return nil, err
	}
	return match.Search(s.dict.Words(), re, !req.Contains), nil
}

func (s *Server) wordle(req Request) ([]string, error) {
	if req.Template == "" {
		return nil, &match.InputError{Input: req.Template, Reason: "missing template"}
	}
	for _, in := range []string{req.Template, req.Somewhere, req.Eliminated} {
		if !utils.IsValidInput(in) {
			return nil, &match.InputError{Input: in, Reason: "wordle clues must not contain spaces or control characters"}
		}
	}
	synth := match.Synthesizer{MaxSomewhere: s.cfg.Wordle.MaxSomewhere}
	pattern, err := synth.Synthesize(match.ParseTemplate(req.Template), req.Somewhere, req.Eliminated)
	if err != nil {
		return nil, err
	}
	return match.Search(s.dict.Words(), pattern, true), nil
}

func (s *Server) handleKeyword(req Request, start time.Time) {
	clues, err := match.ParseClues(req.Clues)
	if err != nil {
		s.fail(req.ID, err)
		return
	}

	solver := match.NewKeywordSolver(s.dict.Words(), s.dict)
	var sols []match.Solution
	if req.All {
		sols, err = solver.SolveAll(clues)
	} else {
		var sol *match.Solution
		if sol, err = solver.Solve(clues); sol != nil {
			sols = []match.Solution{*sol}
		}
	}
	if err != nil {
		s.fail(req.ID, err)
		return
	}

	count := len(sols)
	if limit := s.limit(req.Limit); count > limit {
		sols = sols[:limit]
	}
	s.send(KeywordResponse{
		ID:        req.ID,
		Solutions: lo.Map(sols, func(sol match.Solution, _ int) KeywordSolution { return toSolution(sol) }),
		Count:     count,
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func toSolution(sol match.Solution) KeywordSolution {
	return KeywordSolution{
		Keyword: sol.Keyword,
		Letters: lo.Map(sol.Letters, func(r match.Resolved, _ int) KeywordLetter {
			return KeywordLetter{Clue: r.Clue.Text, Letter: string(r.Letter), Source: r.Source}
		}),
	}
}

// fail maps a lookup error to its response code.
func (s *Server) fail(id string, err error) {
	switch {
	case errors.Is(err, match.ErrInvalidInput):
		s.sendError(id, err.Error(), CodeInvalid)
	case errors.Is(err, match.ErrUnsatisfiable):
		s.sendError(id, err.Error(), CodeUnsatisfiable)
	default:
		s.log.Errorf("Request %s failed: %v", id, err)
		s.sendError(id, "Internal server error", CodeInternal)
	}
}

func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
