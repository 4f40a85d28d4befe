package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/fsa"
	"github.com/aretw0/fsa/internal/logging"
	"github.com/aretw0/fsa/internal/presentation/graph"
	"github.com/aretw0/fsa/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultMaxBodySize bounds request bodies.
const DefaultMaxBodySize = 1 << 20

// Decider is the part of the interpreter the HTTP adapter serves.
type Decider interface {
	Evaluate(ctx context.Context, input string) (*domain.Decision, error)
	DecideAll(ctx context.Context, inputs []string) ([]domain.Decision, error)
	Table() *domain.Table
	InitialStates() domain.StateSet
	Fingerprint() string
}

var _ Decider = (*fsa.Interpreter)(nil)

// DecideRequest is the body of POST /decide. Exactly one of Input or Inputs is used;
// Inputs wins when both are present.
type DecideRequest struct {
	Input  *string  `json:"input,omitempty"`
	Inputs []string `json:"inputs,omitempty"`
}

// DecisionResponse is one decision as returned by POST /decide.
type DecisionResponse struct {
	ID       string `json:"id"`
	Input    string `json:"input"`
	Accepted bool   `json:"accepted"`
	Verdict  string `json:"verdict"`
	Steps    int    `json:"steps"`
	Cached   bool   `json:"cached,omitempty"`
}

// BatchResponse is returned by POST /decide for a list of inputs.
type BatchResponse struct {
	Decisions []DecisionResponse `json:"decisions"`
}

// AutomatonResponse describes the loaded automaton.
type AutomatonResponse struct {
	Initial     []string            `json:"initial"`
	Accepting   []string            `json:"accepting"`
	States      []string            `json:"states"`
	Transitions []domain.Transition `json:"transitions"`
	Fingerprint string              `json:"fingerprint"`
}

// Server exposes a Decider over HTTP.
type Server struct {
	Decider     Decider
	Logger      *slog.Logger
	Gatherer    prometheus.Gatherer
	MaxBodySize int64
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics exposes the gatherer on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithMaxBodySize bounds request bodies; larger bodies get 413.
func WithMaxBodySize(n int64) Option {
	return func(s *Server) {
		s.MaxBodySize = n
	}
}

// NewHandler creates a new HTTP handler for the decider.
func NewHandler(decider Decider, opts ...Option) http.Handler {
	s := &Server{
		Decider:     decider,
		Logger:      logging.NewNop(),
		MaxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/decide", s.Decide)
	r.Get("/automaton", s.GetAutomaton)
	r.Get("/graph", s.GetGraph)
	r.Get("/healthz", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Decide handles the POST /decide request.
func (s *Server) Decide(w http.ResponseWriter, r *http.Request) {
	var body DecideRequest
	r.Body = http.MaxBytesReader(w, r.Body, s.MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Decide: Invalid request body", "err", err)
		return
	}

	switch {
	case body.Inputs != nil:
		decisions, err := s.Decider.DecideAll(r.Context(), body.Inputs)
		if err != nil {
			s.writeDecideError(w, err)
			return
		}
		resp := BatchResponse{Decisions: make([]DecisionResponse, len(decisions))}
		for i := range decisions {
			resp.Decisions[i] = toResponse(&decisions[i])
		}
		s.writeJSON(w, resp)

	case body.Input != nil:
		d, err := s.Decider.Evaluate(r.Context(), *body.Input)
		if err != nil {
			s.writeDecideError(w, err)
			return
		}
		s.writeJSON(w, toResponse(d))

	default:
		http.Error(w, "Request must contain 'input' or 'inputs'", http.StatusBadRequest)
	}
}

func (s *Server) writeDecideError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInputTooLong) {
		http.Error(w, fmt.Sprintf("Input rejected: %v", err), http.StatusRequestEntityTooLarge)
		return
	}
	http.Error(w, fmt.Sprintf("Decide error: %v", err), http.StatusInternalServerError)
	s.Logger.Error("Decide failed", "err", err)
}

func toResponse(d *domain.Decision) DecisionResponse {
	return DecisionResponse{
		ID:       d.ID,
		Input:    d.Input,
		Accepted: d.Accepted,
		Verdict:  d.Verdict(),
		Steps:    d.Steps,
		Cached:   d.Cached,
	}
}

// GetAutomaton handles the GET /automaton request.
func (s *Server) GetAutomaton(w http.ResponseWriter, r *http.Request) {
	table := s.Decider.Table()
	s.writeJSON(w, AutomatonResponse{
		Initial:     s.Decider.InitialStates().Sorted(),
		Accepting:   table.AcceptingStates(),
		States:      table.States(),
		Transitions: table.Transitions(),
		Fingerprint: s.Decider.Fingerprint(),
	})
}

// GetGraph handles the GET /graph request with a Mermaid flowchart.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(graph.GenerateMermaid(s.Decider.Table(), s.Decider.InitialStates(), nil)))
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"app":         "fsa-http",
		"version":     strings.TrimSpace(fsa.Version),
		"fingerprint": s.Decider.Fingerprint(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}
