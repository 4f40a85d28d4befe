package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/fsa"
	"github.com/aretw0/fsa/internal/logging"
	"github.com/aretw0/fsa/internal/presentation/graph"
	"github.com/aretw0/fsa/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Resource URIs.
const (
	AutomatonURI = "fsa://automaton"
	GraphURI     = "fsa://graph"
)

// DecideResponse is the structured result of the decide tool.
type DecideResponse struct {
	Input    string `json:"input" jsonschema_description:"The tested input string"`
	Accepted bool   `json:"accepted" jsonschema_description:"Whether any loaded automaton accepts the input"`
	Verdict  string `json:"verdict" jsonschema_description:"Accepted or Not accepted"`
	Steps    int    `json:"steps" jsonschema_description:"Transition lookups performed by the search"`
}

// AutomatonResponse describes the loaded automaton.
type AutomatonResponse struct {
	Initial     []string            `json:"initial"`
	Accepting   []string            `json:"accepting"`
	Transitions []domain.Transition `json:"transitions"`
	Fingerprint string              `json:"fingerprint"`
}

// Decider is the part of the interpreter exposed over MCP.
type Decider interface {
	Evaluate(ctx context.Context, input string) (*domain.Decision, error)
	Table() *domain.Table
	InitialStates() domain.StateSet
	Fingerprint() string
}

var _ Decider = (*fsa.Interpreter)(nil)

// Server wraps a Decider and exposes it as an MCP Server.
type Server struct {
	decider   Decider
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(decider Decider, opts ...Option) *Server {
	s := &Server{
		decider:   decider,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("fsa-mcp", strings.TrimSpace(fsa.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves MCP over SSE on addr until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	baseURL := "http://localhost" + addr
	if !strings.HasPrefix(addr, ":") {
		baseURL = "http://" + addr
	}
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	// TOOL: decide
	decideTool := mcp.NewTool("decide",
		mcp.WithDescription("Decide whether the loaded automata accept an input string."),
		mcp.WithString("input", mcp.Required(), mcp.Description("The input string to test")),
		mcp.WithOutputSchema[DecideResponse](),
	)
	s.mcpServer.AddTool(decideTool, mcp.NewStructuredToolHandler(s.handleDecide))

	// TOOL: get_automaton
	s.mcpServer.AddTool(mcp.NewTool("get_automaton",
		mcp.WithDescription("Get the initial states, accepting states and transitions of the loaded automata."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.automaton())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: get_graph
	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get a Mermaid flowchart of the loaded automata."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(graph.GenerateMermaid(s.decider.Table(), s.decider.InitialStates(), nil)), nil
	})
}

func (s *Server) handleDecide(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (DecideResponse, error) {
	input, ok := args["input"].(string)
	if !ok {
		return DecideResponse{}, fmt.Errorf("%w: 'input' must be a string", domain.ErrInvalidInput)
	}

	d, err := s.decider.Evaluate(ctx, input)
	if err != nil {
		s.logger.Warn("MCP decide failed", "err", err, "size", len(input))
		return DecideResponse{}, fmt.Errorf("decide failed: %w", err)
	}

	return DecideResponse{
		Input:    d.Input,
		Accepted: d.Accepted,
		Verdict:  d.Verdict(),
		Steps:    d.Steps,
	}, nil
}

func (s *Server) automaton() AutomatonResponse {
	table := s.decider.Table()
	return AutomatonResponse{
		Initial:     s.decider.InitialStates().Sorted(),
		Accepting:   table.AcceptingStates(),
		Transitions: table.Transitions(),
		Fingerprint: s.decider.Fingerprint(),
	}
}

func (s *Server) registerResources() {
	// EXPOSE: fsa://automaton
	s.mcpServer.AddResource(mcp.NewResource(AutomatonURI, "Loaded Automaton",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.automaton())
		if err != nil {
			return nil, fmt.Errorf("failed to encode automaton: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      AutomatonURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})

	// EXPOSE: fsa://graph
	s.mcpServer.AddResource(mcp.NewResource(GraphURI, "Automaton Flowchart",
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      GraphURI,
				MIMEType: "text/plain",
				Text:     graph.GenerateMermaid(s.decider.Table(), s.decider.InitialStates(), nil),
			},
		}, nil
	})
}
