package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/advent/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run puzzle solutions",
	Long: `Runs both parts of the selected puzzles in year/day order.
Without --year every registered puzzle runs; --day requires --year.
Exits with status 1 when any part fails.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, debug := loadConfig(cmd)

		opts := cli.RunOptions{
			EngineOptions: cli.EngineOptions{Config: cfg, Debug: debug},
		}
		if cmd.Flags().Changed("year") {
			year, _ := cmd.Flags().GetInt("year")
			opts.Request.Year = &year
		}
		if cmd.Flags().Changed("day") {
			day, _ := cmd.Flags().GetInt("day")
			opts.Request.Day = &day
		}
		opts.Request.Example, _ = cmd.Flags().GetBool("example")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Timings, _ = cmd.Flags().GetBool("timings")
		opts.Summary, _ = cmd.Flags().GetBool("summary")
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			color := false
			opts.Color = &color
		}

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		if err := cli.Execute(sigCtx, opts); err != nil {
			if !errors.Is(err, cli.ErrPartsFailed) && sigCtx.Signal() == nil {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("year", "y", 0, "Run solutions for a specific year")
	runCmd.Flags().IntP("day", "d", 0, "Run solutions for the day (requires --year)")
	runCmd.Flags().Bool("example", false, "Run against the published example inputs")
	runCmd.Flags().Bool("json", false, "Write results as NDJSON")
	runCmd.Flags().Bool("timings", false, "Show how long each part took")
	runCmd.Flags().Bool("summary", false, "Print a passed/failed total at the end")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
	addInputFlags(runCmd)
}
