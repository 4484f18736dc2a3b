package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/advent"
	httpAdapter "github.com/aretw0/advent/internal/adapters/http"
	"github.com/aretw0/advent/internal/cli"
	"github.com/aretw0/advent/internal/logging"
	"github.com/aretw0/advent/internal/presentation/tui"
	"github.com/aretw0/advent/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the catalog and runs puzzles over HTTP:
  GET /health, /info, /catalog, /run, /run/stream (SSE) and /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, debug := loadConfig(cmd)
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
		}
		if noMetrics, _ := cmd.Flags().GetBool("no-metrics"); noMetrics {
			cfg.Server.Metrics = false
		}

		level, _ := logging.ParseLevel(cfg.LogLevel)
		logger := logging.New(level)

		opts := cli.EngineOptions{Config: cfg, Debug: debug}
		var handlerOpts []httpAdapter.Option
		if cfg.Server.Metrics {
			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			metrics, err := observability.NewMetrics(reg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error registering metrics: %v\n", err)
				os.Exit(1)
			}
			opts.Hooks = metrics.Hooks()
			handlerOpts = append(handlerOpts, httpAdapter.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
		}

		engine, cleanup, err := cli.NewEngine(cmd.Context(), opts)
		defer cleanup()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing advent: %v\n", err)
			os.Exit(1)
		}

		handlerOpts = append(handlerOpts, httpAdapter.WithVersion(advent.Version), httpAdapter.WithLogger(logger))
		srv := &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           httpAdapter.NewHandler(engine, handlerOpts...),
			ReadHeaderTimeout: 10 * time.Second,
		}

		if tui.IsTerminal(os.Stdout) {
			tui.PrintBanner(os.Stdout, advent.Version)
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting advent server", "addr", srv.Addr, "source", cfg.Inputs.Source, "metrics", cfg.Server.Metrics)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			logger.Error("Server error", "err", err)
			cleanup()
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("Start shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("Graceful shutdown did not complete", "timeout", 5*time.Second, "err", err)
				if err := srv.Close(); err != nil {
					logger.Error("Error killing server", "err", err)
				}
			}
			logger.Info("Advent server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "Address to listen on (overrides config, default :8080)")
	serveCmd.Flags().Bool("no-metrics", false, "Do not expose /metrics")
	addInputFlags(serveCmd)
}
