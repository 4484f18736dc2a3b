package main

import (
	"fmt"
	"os"

	"github.com/aretw0/advent/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered puzzles",
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.ListOptions{}
		if cmd.Flags().Changed("year") {
			year, _ := cmd.Flags().GetInt("year")
			opts.Year = &year
		}
		opts.JSON, _ = cmd.Flags().GetBool("json")

		if err := cli.List(opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntP("year", "y", 0, "Only list puzzles of this year")
	listCmd.Flags().Bool("json", false, "Write the catalog as JSON")
}
