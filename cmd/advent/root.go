package main

import (
	"fmt"
	"os"

	"github.com/aretw0/advent/internal/config"
	"github.com/spf13/cobra"

	_ "github.com/aretw0/advent/puzzles/all"
)

var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Advent runs and checks puzzle solutions",
	Long: `Advent discovers the registered puzzle solutions, runs both parts of each
selected puzzle against its input and reports pass/fail per part.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// loadConfig reads the config file and applies the input flags shared by
// run, serve and mcp.
func loadConfig(cmd *cobra.Command) (config.Config, bool) {
	path, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if f := cmd.Flags().Lookup("source"); f != nil && f.Changed {
		cfg.Inputs.Source = f.Value.String()
	}
	if f := cmd.Flags().Lookup("inputs-dir"); f != nil && f.Changed {
		cfg.Inputs.Dir = f.Value.String()
		if !cmd.Flags().Changed("source") {
			cfg.Inputs.Source = config.SourceDir
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, debug
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("source", "", "Input source: embedded, dir or redis (overrides config)")
	cmd.Flags().String("inputs-dir", "", "Directory holding year<yyyy>/day<dd>/input.txt files (overrides config)")
}
