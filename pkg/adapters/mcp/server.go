package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/advent"
	"github.com/aretw0/advent/internal/cli"
	"github.com/aretw0/advent/pkg/domain"
	"github.com/aretw0/advent/pkg/report"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Engine defines the interface required by the MCP server to run puzzles.
type Engine interface {
	Catalog() []domain.Descriptor
	Execute(ctx context.Context, sel domain.Selection) (iter.Seq[domain.ExecutionResult], error)
}

// CatalogResponse is the structured output of list_puzzles.
type CatalogResponse struct {
	Puzzles []domain.Descriptor `json:"puzzles" jsonschema_description:"Registered puzzles in year/day order"`
}

// RunResponse is the structured output of run_puzzles.
type RunResponse struct {
	Results []domain.ExecutionResult `json:"results" jsonschema_description:"One entry per part, part one before part two"`
	Passed  int                      `json:"passed" jsonschema_description:"Number of successful parts"`
	Failed  int                      `json:"failed" jsonschema_description:"Number of failed parts"`
}

// Server wraps the advent Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("advent-mcp", strings.TrimSpace(advent.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer exposes the underlying server, e.g. for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		// Create a timeout context for the graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: list_puzzles
	listTool := mcp.NewTool("list_puzzles",
		mcp.WithDescription("List the registered puzzles, optionally for a single year."),
		mcp.WithNumber("year", mcp.Description("Only list puzzles of this year (optional)")),
		mcp.WithOutputSchema[CatalogResponse](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleListPuzzles))

	// TOOL: run_puzzles
	runTool := mcp.NewTool("run_puzzles",
		mcp.WithDescription("Run both parts of the selected puzzles. Without year and day every puzzle runs."),
		mcp.WithNumber("year", mcp.Description("Puzzle year (optional)")),
		mcp.WithNumber("day", mcp.Description("Puzzle day, requires year (optional)")),
		mcp.WithBoolean("example", mcp.Description("Run against the published example input instead of the real one")),
		mcp.WithOutputSchema[RunResponse](),
	)
	s.mcpServer.AddTool(runTool, mcp.NewStructuredToolHandler(s.handleRunPuzzles))
}

func (s *Server) handleListPuzzles(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (CatalogResponse, error) {
	req, err := requestFromArgs(args)
	if err != nil {
		return CatalogResponse{}, err
	}
	req.Day = nil

	catalog := s.engine.Catalog()
	if err := req.Validate(catalog); err != nil {
		return CatalogResponse{}, err
	}

	sel := req.Selection()
	resp := CatalogResponse{Puzzles: []domain.Descriptor{}}
	for _, d := range catalog {
		if sel.Matches(d) {
			resp.Puzzles = append(resp.Puzzles, d)
		}
	}
	return resp, nil
}

func (s *Server) handleRunPuzzles(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RunResponse, error) {
	req, err := requestFromArgs(args)
	if err != nil {
		return RunResponse{}, err
	}
	if err := req.Validate(s.engine.Catalog()); err != nil {
		return RunResponse{}, err
	}

	seq, err := s.engine.Execute(ctx, req.Selection())
	if err != nil {
		return RunResponse{}, fmt.Errorf("run failed: %w", err)
	}

	resp := RunResponse{Results: []domain.ExecutionResult{}}
	var tally report.Tally
	for res := range seq {
		tally.Add(res)
		resp.Results = append(resp.Results, res)
	}
	if err := ctx.Err(); err != nil {
		return RunResponse{}, err
	}

	resp.Passed, resp.Failed = tally.Passed, tally.Failed
	return resp, nil
}

// requestFromArgs reads year, day and example. JSON numbers arrive as float64.
func requestFromArgs(args map[string]interface{}) (cli.Request, error) {
	var req cli.Request

	for _, name := range []string{"year", "day"} {
		raw, ok := args[name]
		if !ok || raw == nil {
			continue
		}
		f, ok := raw.(float64)
		if !ok || f != float64(int(f)) {
			return req, fmt.Errorf("%s must be an integer", name)
		}
		v := int(f)
		if name == "year" {
			req.Year = &v
		} else {
			req.Day = &v
		}
	}

	if example, ok := args["example"].(bool); ok {
		req.Example = example
	}
	return req, nil
}

func (s *Server) registerResources() {
	// EXPOSE: advent://catalog
	s.mcpServer.AddResource(mcp.NewResource("advent://catalog", "Puzzle Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Catalog())
		if err != nil {
			return nil, fmt.Errorf("failed to encode catalog: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "advent://catalog",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
