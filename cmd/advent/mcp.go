package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/advent/internal/cli"
	"github.com/aretw0/advent/internal/logging"
	"github.com/aretw0/advent/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts advent as an MCP Server.
This allows AI agents to list and run puzzles as tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, debug := loadConfig(cmd)
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		// Logs go to stderr so they never corrupt JSON-RPC on stdout
		level, _ := logging.ParseLevel(cfg.LogLevel)
		if debug {
			level = slog.LevelDebug
		}
		slog.SetDefault(logging.New(level))
		log.SetOutput(os.Stderr)

		engine, cleanup, err := cli.NewEngine(cmd.Context(), cli.EngineOptions{Config: cfg, Debug: debug})
		defer cleanup()
		if err != nil {
			slog.Error("Error initializing advent", "err", err)
			os.Exit(1)
		}

		srv := mcp.NewServer(engine)

		switch transport {
		case "stdio":
			slog.Info("Starting advent MCP Server (Stdio)")
			if err := srv.ServeStdio(); err != nil {
				slog.Error("MCP Server execution failed", "err", err)
				cleanup()
				os.Exit(1)
			}
		case "sse":
			slog.Info("Starting advent MCP Server (SSE)", "port", port)

			// Create a context that cancels on interrupt signal
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil && err != http.ErrServerClosed {
				slog.Error("MCP Server execution failed", "err", err)
				cleanup()
				os.Exit(1)
			}
			slog.Info("MCP Server stopped gracefully")
		default:
			slog.Error("Unknown transport. Supported: stdio, sse", "transport", transport)
			cleanup()
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
	addInputFlags(mcpCmd)
}
