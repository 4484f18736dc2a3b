package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aretw0/advent/internal/cli"
	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/report"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Engine defines the part of the advent engine the HTTP surface needs.
type Engine interface {
	Catalog() []domain.Descriptor
	Execute(ctx context.Context, sel domain.Selection) (iter.Seq[domain.ExecutionResult], error)
}

// Server serves the catalog and runs puzzles over HTTP.
type Server struct {
	Engine  Engine
	Version string
	Metrics http.Handler
	Logger  *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithMetrics mounts h (typically promhttp) on /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithVersion sets the version reported by /info.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.Version = v
	}
}

// WithLogger sets the request error logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// RunResponse is the body of GET /run.
type RunResponse struct {
	Results []domain.ExecutionResult `json:"results"`
	Passed  int                      `json:"passed"`
	Failed  int                      `json:"failed"`
}

// ErrorResponse is the body of every 4xx/5xx answer.
type ErrorResponse struct {
	Error    string               `json:"error"`
	Failures []FailureDescription `json:"failures,omitempty"`
}

// FailureDescription describes a puzzle that could not be instantiated.
type FailureDescription struct {
	Year  int    `json:"year"`
	Day   int    `json:"day"`
	Ref   string `json:"ref"`
	Cause string `json:"cause"`
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	s := &Server{Engine: engine, Version: "dev"}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/catalog", s.GetCatalog)
	r.Get("/run", s.Run)
	r.Get("/run/stream", s.RunStream)
	if s.Metrics != nil {
		r.Handle("/metrics", s.Metrics)
	}
	return r
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "advent-http",
		"version": s.Version,
	})
}

// GetCatalog handles GET /catalog?year=.
func (s *Server) GetCatalog(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	req.Day = nil

	catalog := s.Engine.Catalog()
	if err := req.Validate(catalog); err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}

	sel := req.Selection()
	selected := []domain.Descriptor{}
	for _, d := range catalog {
		if sel.Matches(d) {
			selected = append(selected, d)
		}
	}
	s.writeJSON(w, http.StatusOK, selected)
}

// Run handles GET /run?year=&day=&example= and answers once every part ran.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	seq, ok := s.execute(w, r)
	if !ok {
		return
	}

	resp := RunResponse{Results: []domain.ExecutionResult{}}
	var tally report.Tally
	for res := range seq {
		tally.Add(res)
		resp.Results = append(resp.Results, res)
	}
	if err := r.Context().Err(); err != nil {
		s.Logger.Warn("Run aborted by client", "err", err)
		return
	}

	resp.Passed, resp.Failed = tally.Passed, tally.Failed
	s.writeJSON(w, http.StatusOK, resp)
}

// RunStream handles GET /run/stream (SSE): one "result" event per part,
// then a "done" event carrying the tally.
func (s *Server) RunStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	seq, ok := s.execute(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	var tally report.Tally
	for res := range seq {
		tally.Add(res)
		if err := writeEvent(w, "result", res); err != nil {
			s.Logger.Warn("Stream write failed", "err", err)
			return
		}
		flusher.Flush()
	}
	if r.Context().Err() != nil {
		return
	}
	if err := writeEvent(w, "done", tally); err != nil {
		s.Logger.Warn("Stream write failed", "err", err)
		return
	}
	flusher.Flush()
}

// execute validates the query and starts the run. It writes the error
// response itself and reports false when nothing should run.
func (s *Server) execute(w http.ResponseWriter, r *http.Request) (iter.Seq[domain.ExecutionResult], bool) {
	req, err := parseRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	if err := req.Validate(s.Engine.Catalog()); err != nil {
		status := http.StatusNotFound
		if errors.Is(err, domain.ErrDayWithoutYear) {
			status = http.StatusBadRequest
		}
		s.writeError(w, status, err)
		return nil, false
	}

	seq, err := s.Engine.Execute(r.Context(), req.Selection())
	if err != nil {
		s.Logger.Error("Run failed before start", "err", err)
		s.writeError(w, http.StatusInternalServerError, err)
		return nil, false
	}
	return seq, true
}

func parseRequest(r *http.Request) (cli.Request, error) {
	var req cli.Request
	q := r.URL.Query()

	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("invalid year %q", v)
		}
		req.Year = &year
	}
	if v := q.Get("day"); v != "" {
		day, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("invalid day %q", v)
		}
		req.Day = &day
	}
	if v := q.Get("example"); v != "" {
		example, err := strconv.ParseBool(v)
		if err != nil {
			return req, fmt.Errorf("invalid example flag %q", v)
		}
		req.Example = example
	}
	return req, nil
}

func writeEvent(w io.Writer, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.Logger.Warn("Response encode error", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	resp := ErrorResponse{Error: err.Error()}

	var loadErr *domain.LoadError
	if errors.As(err, &loadErr) {
		for _, f := range loadErr.Failures {
			resp.Failures = append(resp.Failures, FailureDescription{
				Year:  f.Descriptor.Year,
				Day:   f.Descriptor.Day,
				Ref:   f.Descriptor.Ref,
				Cause: f.Err.Error(),
			})
		}
	}
	s.writeJSON(w, status, resp)
}
